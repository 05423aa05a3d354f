// Package store is the persistence adapter. The whole record set lives in
// memory and is serialized as a single JSON snapshot to a data file after
// every mutation.
package store

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/garsabers/storefront/app/models"
)

// SchemaVersion is embedded in every snapshot. A snapshot written by a
// different schema version is discarded on load and the seed defaults are
// used instead; there is no migration logic.
const SchemaVersion = 4

// Snapshot is the persisted payload: every tracked collection plus the
// schema version.
type Snapshot struct {
	SchemaVersion   int                    `json:"schema_version"`
	Orders          []models.Order         `json:"orders"`
	Invoices        []models.Invoice       `json:"invoices"`
	DownloadLinks   []models.DownloadLink  `json:"download_links"`
	Logs            []models.AccessLog     `json:"logs"`
	CompanySettings models.CompanySettings `json:"company_settings"`
	PayPalSettings  models.PayPalSettings  `json:"paypal_settings"`
}

// Store owns the in-memory record set and its on-disk snapshot. It is
// constructed once at process start and shared by reference; the mutex makes
// it safe for the concurrent HTTP handlers.
type Store struct {
	mu   sync.RWMutex
	path string
	data Snapshot
}

// New creates a store bound to the given snapshot file. The file is not
// touched until Load or Save is called.
func New(path string) *Store {
	return &Store{path: path, data: Defaults()}
}

// Load reads the snapshot file into memory. Absent files, unreadable files,
// corrupt JSON and schema mismatches all silently fall back to the seed
// defaults; corrupt persisted state is never surfaced as an error.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: cannot read %s, using defaults: %v", s.path, err)
		}
		s.data = Defaults()
		return
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Printf("store: corrupt snapshot %s, using defaults: %v", s.path, err)
		s.data = Defaults()
		return
	}
	if snap.SchemaVersion != SchemaVersion {
		log.Printf("store: snapshot %s has schema v%d, want v%d, using defaults", s.path, snap.SchemaVersion, SchemaVersion)
		s.data = Defaults()
		return
	}
	s.data = snap
}

// Save writes the current record set to the snapshot file (unique temp file
// + rename, so concurrent saves cannot interleave writes into one file). A
// failed save is logged and swallowed: it is not retried and does not roll
// back the in-memory mutation that preceded it.
func (s *Store) Save() {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		log.Printf("store: failed to serialize state: %v", err)
		return
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("store: failed to create %s: %v", dir, err)
			return
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		log.Printf("store: failed to save state: %v", err)
		return
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Printf("store: failed to save state: %v", err)
		return
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Printf("store: failed to save state: %v", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		log.Printf("store: failed to save state: %v", err)
		return
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		log.Printf("store: failed to save state: %v", err)
	}
}

// View runs fn with read access to the snapshot.
func (s *Store) View(fn func(d *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn with write access to the snapshot and persists afterwards.
func (s *Store) Update(fn func(d *Snapshot)) {
	s.mu.Lock()
	fn(&s.data)
	s.mu.Unlock()
	s.Save()
}

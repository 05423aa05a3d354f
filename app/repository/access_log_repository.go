package repository

import (
	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// accessLogRepository implements the AccessLogRepository interface
type accessLogRepository struct {
	st *store.Store
}

// NewAccessLogRepository creates a new access log repository instance
func NewAccessLogRepository(st *store.Store) AccessLogRepository {
	return &accessLogRepository{st: st}
}

// Append adds a log entry; the collection is append-only.
func (r *accessLogRepository) Append(logEntry *models.AccessLog) error {
	r.st.Update(func(d *store.Snapshot) {
		d.Logs = append(d.Logs, *logEntry)
	})
	return nil
}

// FirstByLinkID returns the first log recorded against the link.
func (r *accessLogRepository) FirstByLinkID(linkID string) (*models.AccessLog, error) {
	var found *models.AccessLog
	r.st.View(func(d *store.Snapshot) {
		for i := range d.Logs {
			if d.Logs[i].LinkID == linkID {
				l := d.Logs[i]
				found = &l
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// List returns all access log entries
func (r *accessLogRepository) List() ([]models.AccessLog, error) {
	var out []models.AccessLog
	r.st.View(func(d *store.Snapshot) {
		out = make([]models.AccessLog, len(d.Logs))
		copy(out, d.Logs)
	})
	return out, nil
}

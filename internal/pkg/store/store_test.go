package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garsabers/storefront/app/models"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	st := New(path)
	st.Update(func(d *Snapshot) {
		d.Orders = append(d.Orders, models.Order{
			ID:          "ord_rt",
			Status:      models.OrderStatusCompleted,
			ProductID:   "prod_1",
			ProductName: "Basic Shopify Store",
			Amount:      100,
			Currency:    "EUR",
			Tax:         20,
		})
	})

	reloaded := New(path)
	reloaded.Load()

	var got *models.Order
	reloaded.View(func(d *Snapshot) {
		assert.Equal(t, SchemaVersion, d.SchemaVersion)
		for i := range d.Orders {
			if d.Orders[i].ID == "ord_rt" {
				got = &d.Orders[i]
			}
		}
	})
	require.NotNil(t, got)
	assert.Equal(t, 100.0, got.Amount)
	assert.Equal(t, 20.0, got.Tax)
}

func TestStoreLoadMissingFileUsesDefaults(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing.json"))
	st.Load()

	st.View(func(d *Snapshot) {
		require.NotEmpty(t, d.Orders)
		assert.Equal(t, "ord_123", d.Orders[0].ID)
		assert.Equal(t, "Garsabers", d.CompanySettings.Name)
	})
}

func TestStoreLoadCorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := New(path)
	st.Load()

	st.View(func(d *Snapshot) {
		require.NotEmpty(t, d.Invoices)
		assert.Equal(t, "GS-2024-0001", d.Invoices[0].InvoiceNumber)
	})
}

func TestStoreLoadSchemaMismatchUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	stale := Defaults()
	stale.SchemaVersion = SchemaVersion - 1
	stale.Orders = nil
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	st := New(path)
	st.Load()

	st.View(func(d *Snapshot) {
		assert.Equal(t, SchemaVersion, d.SchemaVersion)
		require.NotEmpty(t, d.Orders)
	})
}

func TestStoreConcurrentSavesKeepSnapshotIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	st := New(path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			st.Update(func(d *Snapshot) {
				d.Orders = append(d.Orders, models.Order{
					ID:     fmt.Sprintf("ord_c%d", n),
					Status: models.OrderStatusPending,
				})
			})
		}(i)
	}
	wg.Wait()

	// Whichever save renamed last, the file must hold one complete snapshot.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.Greater(t, len(snap.Orders), 2)

	reloaded := New(path)
	reloaded.Load()
	reloaded.View(func(d *Snapshot) {
		assert.Greater(t, len(d.Orders), 2)
	})
}

func TestStoreSnapshotKeepsPayPalSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	st := New(path)
	st.Update(func(d *Snapshot) {
		d.PayPalSettings.ClientID = "client_abc"
		d.PayPalSettings.Secret = "shh_123"
	})

	reloaded := New(path)
	reloaded.Load()
	reloaded.View(func(d *Snapshot) {
		assert.Equal(t, "client_abc", d.PayPalSettings.ClientID)
		assert.Equal(t, "shh_123", d.PayPalSettings.Secret)
	})
}

func TestStoreSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "store.json")

	st := New(path)
	st.Save()

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestDefaultsAreConsistent(t *testing.T) {
	d := Defaults()

	assert.Equal(t, SchemaVersion, d.SchemaVersion)
	require.Len(t, d.Invoices, 1)
	inv := d.Invoices[0]
	assert.Equal(t, inv.Subtotal+inv.Tax, inv.Total)
	assert.Equal(t, "ord_123", inv.OrderID)

	require.Len(t, d.DownloadLinks, 1)
	assert.Equal(t, "ord_123", d.DownloadLinks[0].OrderID)
	require.Len(t, d.Logs, 1)
	assert.Equal(t, d.DownloadLinks[0].ID, d.Logs[0].LinkID)

	assert.True(t, d.PayPalSettings.IsSandbox())
}

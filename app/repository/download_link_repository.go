package repository

import (
	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// downloadLinkRepository implements the DownloadLinkRepository interface
type downloadLinkRepository struct {
	st *store.Store
}

// NewDownloadLinkRepository creates a new download link repository instance
func NewDownloadLinkRepository(st *store.Store) DownloadLinkRepository {
	return &downloadLinkRepository{st: st}
}

// Append adds an auto-created link at the end of the collection.
func (r *downloadLinkRepository) Append(link *models.DownloadLink) error {
	r.st.Update(func(d *store.Snapshot) {
		d.DownloadLinks = append(d.DownloadLinks, *link)
	})
	return nil
}

// CreateFront prepends an explicitly issued link.
func (r *downloadLinkRepository) CreateFront(link *models.DownloadLink) error {
	r.st.Update(func(d *store.Snapshot) {
		d.DownloadLinks = append([]models.DownloadLink{*link}, d.DownloadLinks...)
	})
	return nil
}

// FirstByOrderID returns the first link recorded for the order. The model
// does not guard against multiple links per order; audit trails use the
// first match.
func (r *downloadLinkRepository) FirstByOrderID(orderID string) (*models.DownloadLink, error) {
	var found *models.DownloadLink
	r.st.View(func(d *store.Snapshot) {
		for i := range d.DownloadLinks {
			if d.DownloadLinks[i].OrderID == orderID {
				l := d.DownloadLinks[i]
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

// List returns all download links
func (r *downloadLinkRepository) List() ([]models.DownloadLink, error) {
	var out []models.DownloadLink
	r.st.View(func(d *store.Snapshot) {
		out = make([]models.DownloadLink, len(d.DownloadLinks))
		copy(out, d.DownloadLinks)
	})
	return out, nil
}

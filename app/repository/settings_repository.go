package repository

import (
	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// settingsRepository implements the SettingsRepository interface
type settingsRepository struct {
	st *store.Store
}

// NewSettingsRepository creates a new settings repository instance
func NewSettingsRepository(st *store.Store) SettingsRepository {
	return &settingsRepository{st: st}
}

// GetCompany retrieves the company settings singleton
func (r *settingsRepository) GetCompany() (*models.CompanySettings, error) {
	var out models.CompanySettings
	r.st.View(func(d *store.Snapshot) {
		out = d.CompanySettings
	})
	return &out, nil
}

// SaveCompany replaces the company settings wholesale
func (r *settingsRepository) SaveCompany(settings *models.CompanySettings) error {
	r.st.Update(func(d *store.Snapshot) {
		d.CompanySettings = *settings
	})
	return nil
}

// GetPayPal retrieves the PayPal settings singleton
func (r *settingsRepository) GetPayPal() (*models.PayPalSettings, error) {
	var out models.PayPalSettings
	r.st.View(func(d *store.Snapshot) {
		out = d.PayPalSettings
	})
	return &out, nil
}

// SavePayPal replaces the PayPal settings wholesale
func (r *settingsRepository) SavePayPal(settings *models.PayPalSettings) error {
	r.st.Update(func(d *store.Snapshot) {
		d.PayPalSettings = *settings
	})
	return nil
}

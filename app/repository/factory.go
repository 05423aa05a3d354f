package repository

import (
	"sync"

	"github.com/garsabers/storefront/internal/pkg/store"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	st    *store.Store
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory over the given store
func NewFactory(st *store.Store) *Factory {
	return &Factory{
		st: st,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.st)
	})
	return f.repos
}

// GetOrderRepository returns the order repository instance
func (f *Factory) GetOrderRepository() OrderRepository {
	return f.GetRepositories().Order
}

// GetInvoiceRepository returns the invoice repository instance
func (f *Factory) GetInvoiceRepository() InvoiceRepository {
	return f.GetRepositories().Invoice
}

// GetDownloadLinkRepository returns the download link repository instance
func (f *Factory) GetDownloadLinkRepository() DownloadLinkRepository {
	return f.GetRepositories().DownloadLink
}

// GetAccessLogRepository returns the access log repository instance
func (f *Factory) GetAccessLogRepository() AccessLogRepository {
	return f.GetRepositories().AccessLog
}

// GetSettingsRepository returns the settings repository instance
func (f *Factory) GetSettingsRepository() SettingsRepository {
	return f.GetRepositories().Settings
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(st *store.Store) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(st)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

package repository

import (
	"errors"

	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("record not found")

// OrderRepository defines the interface for order persistence. Orders are
// never deleted, so no Delete exists.
type OrderRepository interface {
	// Create prepends the order so listings come back newest first.
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	// Update replaces the stored order with the same ID.
	Update(order *models.Order) error
	List() ([]models.Order, error)
	Count() (int64, error)
}

// InvoiceRepository defines the interface for invoice persistence. Invoices
// are replaced in place on edit and never deleted.
type InvoiceRepository interface {
	GetByID(id string) (*models.Invoice, error)
	GetByOrderID(orderID string) (*models.Invoice, error)
	// FindByNumberExceptID reports whether a different invoice already uses
	// the given invoice number.
	FindByNumberExceptID(number, exceptID string) (*models.Invoice, error)
	// Save replaces the invoice matching by ID, or appends it as new.
	Save(invoice *models.Invoice) error
	// CreateFront prepends a freshly generated invoice.
	CreateFront(invoice *models.Invoice) error
	List() ([]models.Invoice, error)
}

// DownloadLinkRepository defines the interface for download-link persistence.
type DownloadLinkRepository interface {
	// Append adds a link at the end (auto-created with an order).
	Append(link *models.DownloadLink) error
	// CreateFront prepends an explicitly issued link.
	CreateFront(link *models.DownloadLink) error
	// FirstByOrderID returns the first link recorded for the order.
	FirstByOrderID(orderID string) (*models.DownloadLink, error)
	List() ([]models.DownloadLink, error)
}

// AccessLogRepository defines the interface for the append-only access log.
type AccessLogRepository interface {
	Append(logEntry *models.AccessLog) error
	// FirstByLinkID returns the first log recorded against the link.
	FirstByLinkID(linkID string) (*models.AccessLog, error)
	List() ([]models.AccessLog, error)
}

// SettingsRepository defines the interface for the singleton configuration
// records. Both are replaced wholesale on save.
type SettingsRepository interface {
	GetCompany() (*models.CompanySettings, error)
	SaveCompany(settings *models.CompanySettings) error
	GetPayPal() (*models.PayPalSettings, error)
	SavePayPal(settings *models.PayPalSettings) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Order        OrderRepository
	Invoice      InvoiceRepository
	DownloadLink DownloadLinkRepository
	AccessLog    AccessLogRepository
	Settings     SettingsRepository
}

// NewRepositories creates a new instance of all repositories over the store
func NewRepositories(st *store.Store) *Repositories {
	return &Repositories{
		Order:        NewOrderRepository(st),
		Invoice:      NewInvoiceRepository(st),
		DownloadLink: NewDownloadLinkRepository(st),
		AccessLog:    NewAccessLogRepository(st),
		Settings:     NewSettingsRepository(st),
	}
}

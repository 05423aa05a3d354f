// Package backend implements the storefront's domain operations: orders and
// their derived download links and access logs, invoices with draft
// synthesis, dashboard stats, and the singleton settings. It is the only
// layer that mutates the record set; HTTP handlers stay thin.
package backend

import (
	"errors"
	"time"

	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/app/repository"
	"github.com/garsabers/storefront/internal/pkg/catalog"
)

// Lookup and validation failures surfaced to the API layer.
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
)

// VATRate is the fixed VAT simulation applied to every order at creation.
// Tax is computed from the catalog price once and never recomputed.
const VATRate = 0.20

// DefaultCurrency is the only currency the storefront bills in.
const DefaultCurrency = "EUR"

// Service bundles the domain operations over the repository set.
type Service struct {
	repos *repository.Repositories
}

// NewService creates a backend service over the given repositories.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

// CreateOrderInput carries the order-creation arguments. The payment
// collaborators (hosted checkout) supply name, email, address and country;
// the admin back office additionally backdates CreatedAt and AccessTime when
// entering historical orders.
type CreateOrderInput struct {
	ProductID     string
	Name          string
	Email         string
	PaymentMethod models.PaymentMethod
	Status        models.OrderStatus
	Address       string
	Country       string
	CreatedAt     *time.Time
	AccessTime    *time.Time
}

// Orders returns all orders, newest first.
func (s *Service) Orders() ([]models.Order, error) {
	return s.repos.Order.List()
}

// CreateOrder records a purchase. Amount and tax are snapshots of the catalog
// price at this moment. When the order lands as COMPLETED or DOWNLOADED, one
// download link and one access log are synthesized against it with the
// download count forced to 1: every completed order is modeled as already
// downloaded once, so the invoice audit trail is never empty.
func (s *Service) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	product, ok := catalog.FindByID(in.ProductID)
	if !ok {
		return nil, ErrProductNotFound
	}

	method := in.PaymentMethod
	if method == "" {
		method = models.PaymentMethodManual
	}
	status := in.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	orderDate := time.Now()
	if in.CreatedAt != nil {
		orderDate = *in.CreatedAt
	}

	order := &models.Order{
		ID:             newID("ord", 9),
		Status:         status,
		ProductID:      product.ID,
		ProductName:    product.Name,
		CustomerName:   in.Name,
		CustomerEmail:  in.Email,
		Amount:         product.Price,
		Currency:       DefaultCurrency,
		Tax:            product.Price * VATRate,
		CreatedAt:      orderDate,
		PaymentMethod:  method,
		TransactionID:  newTransactionID(method),
		BillingAddress: in.Address,
		BillingCountry: in.Country,
	}
	if err := s.repos.Order.Create(order); err != nil {
		return nil, err
	}

	if status == models.OrderStatusCompleted || status == models.OrderStatusDownloaded {
		// The link carries the requested access time (or the order date) so
		// the invoice date and the download date line up on the document.
		linkTime := orderDate
		if in.AccessTime != nil {
			linkTime = *in.AccessTime
		}

		link := &models.DownloadLink{
			ID:            newID("dl", 6),
			OrderID:       order.ID,
			ProductName:   order.ProductName,
			Key:           newAccessKey(),
			ExpiresAt:     linkTime.Add(models.DownloadLinkValidityDays * 24 * time.Hour),
			MaxDownloads:  models.DownloadLinkMaxDownloads,
			DownloadCount: 1,
			IsActive:      true,
			CreatedAt:     linkTime,
		}
		if err := s.repos.DownloadLink.Append(link); err != nil {
			return nil, err
		}

		entry := &models.AccessLog{
			ID:        newID("log", 6),
			LinkID:    link.ID,
			Resource:  product.Name + " PDF",
			Timestamp: linkTime,
			IP:        randomIP(),
			DeviceSig: randomDeviceSig(),
		}
		if err := s.repos.AccessLog.Append(entry); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// OrderUpdate carries the fields UpdateOrder may merge. Amount, tax, product
// and creation time are fixed at order time and deliberately absent here.
type OrderUpdate struct {
	Status         *models.OrderStatus   `json:"status"`
	CustomerName   *string               `json:"customer_name"`
	CustomerEmail  *string               `json:"customer_email"`
	PaymentMethod  *models.PaymentMethod `json:"payment_method"`
	TransactionID  *string               `json:"transaction_id"`
	BillingAddress *string               `json:"billing_address"`
	BillingCountry *string               `json:"billing_country"`
	Notes          *string               `json:"notes"`
}

// UpdateOrder merges the given fields into the order.
func (s *Service) UpdateOrder(orderID string, updates OrderUpdate) (*models.Order, error) {
	order, err := s.repos.Order.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if updates.Status != nil {
		order.Status = *updates.Status
	}
	if updates.CustomerName != nil {
		order.CustomerName = *updates.CustomerName
	}
	if updates.CustomerEmail != nil {
		order.CustomerEmail = *updates.CustomerEmail
	}
	if updates.PaymentMethod != nil {
		order.PaymentMethod = *updates.PaymentMethod
	}
	if updates.TransactionID != nil {
		order.TransactionID = *updates.TransactionID
	}
	if updates.BillingAddress != nil {
		order.BillingAddress = *updates.BillingAddress
	}
	if updates.BillingCountry != nil {
		order.BillingCountry = *updates.BillingCountry
	}
	if updates.Notes != nil {
		order.Notes = *updates.Notes
	}

	if err := s.repos.Order.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Stats computes the dashboard summary. Revenue counts COMPLETED orders only
// and excludes tax; active users and conversion rate are fixed demo values.
func (s *Service) Stats() (*models.AdminStats, error) {
	orders, err := s.repos.Order.List()
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, o := range orders {
		if o.Status == models.OrderStatusCompleted {
			revenue += o.Amount
		}
	}

	return &models.AdminStats{
		TotalRevenue:   revenue,
		TotalOrders:    len(orders),
		ActiveUsers:    142,
		ConversionRate: 3.4,
	}, nil
}

// DownloadLinks returns all download links.
func (s *Service) DownloadLinks() ([]models.DownloadLink, error) {
	return s.repos.DownloadLink.List()
}

// CreateDownloadLink issues a fresh link for an order with the standard
// 30-day / 5-download defaults and a zero download count.
func (s *Service) CreateDownloadLink(orderID string) (*models.DownloadLink, error) {
	order, err := s.repos.Order.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	now := time.Now()
	link := &models.DownloadLink{
		ID:            newID("dl", 6),
		OrderID:       order.ID,
		ProductName:   order.ProductName,
		Key:           newAccessKey(),
		ExpiresAt:     now.Add(models.DownloadLinkValidityDays * 24 * time.Hour),
		MaxDownloads:  models.DownloadLinkMaxDownloads,
		DownloadCount: 0,
		IsActive:      true,
		CreatedAt:     now,
	}
	if err := s.repos.DownloadLink.CreateFront(link); err != nil {
		return nil, err
	}
	return link, nil
}

// Logs returns all access log entries.
func (s *Service) Logs() ([]models.AccessLog, error) {
	return s.repos.AccessLog.List()
}

// CompanySettings returns the issuer configuration.
func (s *Service) CompanySettings() (*models.CompanySettings, error) {
	return s.repos.Settings.GetCompany()
}

// UpdateCompanySettings validates and replaces the issuer configuration.
func (s *Service) UpdateCompanySettings(settings *models.CompanySettings) (*models.CompanySettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Settings.SaveCompany(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// PayPalSettings returns the gateway configuration.
func (s *Service) PayPalSettings() (*models.PayPalSettings, error) {
	return s.repos.Settings.GetPayPal()
}

// UpdatePayPalSettings validates and replaces the gateway configuration.
func (s *Service) UpdatePayPalSettings(settings *models.PayPalSettings) (*models.PayPalSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := s.repos.Settings.SavePayPal(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

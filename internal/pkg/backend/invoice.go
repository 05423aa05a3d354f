package backend

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/app/repository"
	"github.com/garsabers/storefront/internal/pkg/catalog"
	"github.com/garsabers/storefront/internal/pkg/invoicepdf"
)

// auditPlaceholder fills audit trail fields that have no data yet.
const auditPlaceholder = "—"

// InvoiceDocument pairs an invoice with its per-request audit trail view.
// The trail is recomputed on every request and never stored.
type InvoiceDocument struct {
	models.Invoice
	AuditTrail models.InvoiceAuditTrail `json:"audit_trail"`
}

// Invoices returns all persisted invoices.
func (s *Service) Invoices() ([]models.Invoice, error) {
	return s.repos.Invoice.List()
}

// InvoiceByOrderID returns the persisted invoice for the order, or
// synthesizes an unpersisted draft from the order's snapshot fields. The
// draft's issue date is pinned to the order date so the two always match
// until an admin edits and saves the invoice.
func (s *Service) InvoiceByOrderID(orderID string) (*models.Invoice, error) {
	inv, err := s.repos.Invoice.GetByOrderID(orderID)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	order, err := s.repos.Order.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	company, err := s.repos.Settings.GetCompany()
	if err != nil {
		return nil, err
	}

	draft := &models.Invoice{
		ID:            fmt.Sprintf("inv_draft_%d", time.Now().UnixMilli()),
		OrderID:       order.ID,
		InvoiceNumber: newInvoiceNumber(company.InvoicePrefix),
		IssueDate:     order.CreatedAt,
		Subtotal:      order.Amount,
		Tax:           order.Tax,
		Total:         order.Amount + order.Tax,
		Currency:      order.Currency,
		Status:        models.InvoiceStatusPaid,
		BillTo: models.BillTo{
			Name:    order.CustomerName,
			Email:   order.CustomerEmail,
			Address: order.BillingAddress,
			Country: order.BillingCountry,
		},
		PdfURL: "#",
	}
	return draft, nil
}

// UpdateInvoice validates the invoice, rejects a number already used by a
// different invoice, and then replaces in place (matching id) or appends as
// new. Draft ids become persisted records here.
func (s *Service) UpdateInvoice(invoice *models.Invoice) (*models.Invoice, error) {
	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	_, err := s.repos.Invoice.FindByNumberExceptID(invoice.InvoiceNumber, invoice.ID)
	if err == nil {
		return nil, ErrDuplicateInvoiceNumber
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.repos.Invoice.Save(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GenerateInvoice explicitly creates and persists a paid invoice for an
// order, numbered from the company prefix.
func (s *Service) GenerateInvoice(orderID string) (*models.Invoice, error) {
	order, err := s.repos.Order.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	company, err := s.repos.Settings.GetCompany()
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:            newID("inv", 9),
		OrderID:       order.ID,
		InvoiceNumber: newInvoiceNumber(company.InvoicePrefix),
		IssueDate:     time.Now(),
		Subtotal:      order.Amount,
		Tax:           order.Tax,
		Total:         order.Amount + order.Tax,
		Currency:      order.Currency,
		Status:        models.InvoiceStatusPaid,
		BillTo: models.BillTo{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
		},
		PdfURL: "#",
	}
	if err := s.repos.Invoice.CreateFront(invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// InvoicePDFData returns the invoice enriched with its computed audit trail:
// the first download link for the invoice's order and the first access log
// against that link. Gaps render as the em-dash placeholder.
func (s *Service) InvoicePDFData(invoiceID string) (*InvoiceDocument, error) {
	invoice, err := s.repos.Invoice.GetByID(invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	paypal, err := s.repos.Settings.GetPayPal()
	if err != nil {
		return nil, err
	}

	trail := models.InvoiceAuditTrail{
		DeliveryStatus: models.DeliveryStatusPending,
		LinkID:         auditPlaceholder,
		SentTimestamp:  auditPlaceholder,
		AccessIP:       auditPlaceholder,
		AccessTime:     auditPlaceholder,
		DeviceSig:      auditPlaceholder,
		IsSandbox:      paypal.IsSandbox(),
	}

	link, err := s.repos.DownloadLink.FirstByOrderID(invoice.OrderID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if link != nil {
		trail.LinkID = link.ID
		trail.SentTimestamp = link.CreatedAt.Format(time.RFC3339)

		entry, err := s.repos.AccessLog.FirstByLinkID(link.ID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if entry != nil {
			trail.DeliveryStatus = models.DeliveryStatusDownloaded
			trail.AccessIP = entry.IP
			trail.AccessTime = entry.Timestamp.Format(time.RFC3339)
			trail.DeviceSig = entry.DeviceSig
		}
	}

	return &InvoiceDocument{Invoice: *invoice, AuditTrail: trail}, nil
}

// InvoicePDF renders the invoice document and returns the PDF bytes together
// with the download filename (Invoice_<number>.pdf).
func (s *Service) InvoicePDF(invoiceID string) ([]byte, string, error) {
	doc, err := s.InvoicePDFData(invoiceID)
	if err != nil {
		return nil, "", err
	}

	company, err := s.repos.Settings.GetCompany()
	if err != nil {
		return nil, "", err
	}

	// The line item description is the owning order's product name; fall
	// back to a generic service label when the order is gone.
	description := "Shopify Store Development Service"
	if order, err := s.repos.Order.GetByID(doc.OrderID); err == nil {
		description = order.ProductName
	}

	raw, err := invoicepdf.RenderInvoice(invoicepdf.InvoiceData{
		Invoice:     doc.Invoice,
		Audit:       doc.AuditTrail,
		Company:     *company,
		Description: description,
	})
	if err != nil {
		return nil, "", err
	}

	return raw, "Invoice_" + doc.InvoiceNumber + ".pdf", nil
}

// EbookPDF renders the cover-plus-contents document for a catalog product.
// Unknown ids fall back to the first catalog product.
func (s *Service) EbookPDF(productID string) ([]byte, string, error) {
	product, ok := catalog.FindByID(productID)
	if !ok {
		product = catalog.First()
	}

	company, err := s.repos.Settings.GetCompany()
	if err != nil {
		return nil, "", err
	}

	raw, err := invoicepdf.RenderEbook(product, *company)
	if err != nil {
		return nil, "", err
	}
	return raw, strings.ReplaceAll(product.Name, " ", "_") + ".pdf", nil
}

// newInvoiceNumber builds a human-facing number like GS-2026-4821. Drafts
// synthesized through different code paths can theoretically collide;
// uniqueness is only enforced when an invoice is written.
func newInvoiceNumber(prefix string) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().Year(), 1000+rand.Intn(9000))
}

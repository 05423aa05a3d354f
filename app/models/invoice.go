package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Invoice statuses are an open set; these are the values the admin UI offers.
const (
	InvoiceStatusDraft  = "DRAFT"
	InvoiceStatusIssued = "ISSUED"
	InvoiceStatusPaid   = "PAID"
	InvoiceStatusVoided = "VOIDED"
)

// BillTo is the invoiced party as printed on the document.
type BillTo struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
}

// Invoice is a billing document tied to an order. InvoiceNumber must be unique
// across all persisted invoices; uniqueness is checked on write, not on read.
// Persisted invoices are replaced in place on edit and never deleted.
type Invoice struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	InvoiceNumber string    `json:"invoice_number" validate:"required,min=3,max=50"`
	IssueDate     time.Time `json:"issue_date"`
	Subtotal      float64   `json:"subtotal" validate:"gte=0"`
	Tax           float64   `json:"tax" validate:"gte=0"`
	Total         float64   `json:"total" validate:"gte=0"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status" validate:"required"`
	BillTo        BillTo    `json:"bill_to"`
	WebsiteURL    string    `json:"website_url,omitempty"`
	Discount      float64   `json:"discount,omitempty"`
	PdfURL        string    `json:"pdf_url,omitempty"`
}

// Validate validates the invoice before it is written
func (i *Invoice) Validate() error {
	validate := validator.New()
	return validate.Struct(i)
}

// InvoiceAuditTrail is a derived view combining an invoice's download link and
// its first access log for the delivery-proof panel on the PDF. It is computed
// per request and never stored. Missing fields carry the em-dash placeholder.
type InvoiceAuditTrail struct {
	DeliveryStatus string `json:"delivery_status"`
	LinkID         string `json:"link_id"`
	SentTimestamp  string `json:"sent_timestamp"`
	AccessIP       string `json:"access_ip"`
	AccessTime     string `json:"access_time"`
	DeviceSig      string `json:"device_sig"`
	IsSandbox      bool   `json:"is_sandbox"`
}

// Delivery states shown in the audit trail.
const (
	DeliveryStatusDownloaded = "DOWNLOADED"
	DeliveryStatusPending    = "PENDING"
)

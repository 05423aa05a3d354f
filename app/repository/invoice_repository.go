package repository

import (
	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/store"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	st *store.Store
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(st *store.Store) InvoiceRepository {
	return &invoiceRepository{st: st}
}

// GetByID retrieves an invoice by its id
func (r *invoiceRepository) GetByID(id string) (*models.Invoice, error) {
	var found *models.Invoice
	r.st.View(func(d *store.Snapshot) {
		for i := range d.Invoices {
			if d.Invoices[i].ID == id {
				inv := d.Invoices[i]
				found = &inv
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// GetByOrderID retrieves the first invoice recorded for an order. The model
// does not enforce the order/invoice relation as a foreign key, so in theory
// several invoices can reference one order; the first match wins.
func (r *invoiceRepository) GetByOrderID(orderID string) (*models.Invoice, error) {
	var found *models.Invoice
	r.st.View(func(d *store.Snapshot) {
		for i := range d.Invoices {
			if d.Invoices[i].OrderID == orderID {
				inv := d.Invoices[i]
				found = &inv
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// FindByNumberExceptID returns an invoice holding the given number under a
// different id, if one exists.
func (r *invoiceRepository) FindByNumberExceptID(number, exceptID string) (*models.Invoice, error) {
	var found *models.Invoice
	r.st.View(func(d *store.Snapshot) {
		for i := range d.Invoices {
			if d.Invoices[i].InvoiceNumber == number && d.Invoices[i].ID != exceptID {
				inv := d.Invoices[i]
				found = &inv
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Save replaces the invoice matching by id, or appends it as a new record.
func (r *invoiceRepository) Save(invoice *models.Invoice) error {
	r.st.Update(func(d *store.Snapshot) {
		for i := range d.Invoices {
			if d.Invoices[i].ID == invoice.ID {
				d.Invoices[i] = *invoice
				return
			}
		}
		d.Invoices = append(d.Invoices, *invoice)
	})
	return nil
}

// CreateFront prepends a freshly generated invoice.
func (r *invoiceRepository) CreateFront(invoice *models.Invoice) error {
	r.st.Update(func(d *store.Snapshot) {
		d.Invoices = append([]models.Invoice{*invoice}, d.Invoices...)
	})
	return nil
}

// List returns all invoices in storage order
func (r *invoiceRepository) List() ([]models.Invoice, error) {
	var out []models.Invoice
	r.st.View(func(d *store.Snapshot) {
		out = make([]models.Invoice, len(d.Invoices))
		copy(out, d.Invoices)
	})
	return out, nil
}

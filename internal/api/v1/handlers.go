package apiv1

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/internal/pkg/backend"
	"github.com/garsabers/storefront/internal/pkg/catalog"
)

// APIServer implements the v1 JSON API over the backend service.
type APIServer struct {
	svc *backend.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(svc *backend.Service) *APIServer {
	return &APIServer{svc: svc}
}

// RegisterHandlers wires the v1 routes. Routes that belong to the admin back
// office go through the adminGuard middleware; the storefront-facing routes
// (catalog, checkout order creation, ebook download) stay open.
func RegisterHandlers(r fiber.Router, s *APIServer, adminGuard fiber.Handler) {
	r.Get("/products", s.GetProducts)
	r.Get("/products/:id/ebook", s.GetProductEbook)
	r.Post("/orders", s.CreateOrder)

	r.Get("/orders", adminGuard, s.ListOrders)
	r.Patch("/orders/:id", adminGuard, s.UpdateOrder)
	r.Get("/orders/:id/invoice", adminGuard, s.GetOrderInvoice)
	r.Post("/orders/:id/invoices", adminGuard, s.GenerateInvoice)
	r.Post("/orders/:id/links", adminGuard, s.CreateDownloadLink)

	r.Get("/invoices", adminGuard, s.ListInvoices)
	r.Put("/invoices", adminGuard, s.UpdateInvoice)
	r.Get("/invoices/:id/data", adminGuard, s.GetInvoiceData)
	r.Get("/invoices/:id/pdf", adminGuard, s.GetInvoicePDF)

	r.Get("/links", adminGuard, s.ListDownloadLinks)
	r.Get("/logs", adminGuard, s.ListLogs)
	r.Get("/stats", adminGuard, s.GetStats)

	r.Get("/settings/company", adminGuard, s.GetCompanySettings)
	r.Put("/settings/company", adminGuard, s.UpdateCompanySettings)
	r.Get("/settings/paypal", adminGuard, s.GetPayPalSettings)
	r.Put("/settings/paypal", adminGuard, s.UpdatePayPalSettings)
}

// GetProducts returns the static catalog for the landing pages.
func (s *APIServer) GetProducts(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(catalog.Products)
}

// GetProductEbook streams the product's cover/contents PDF.
func (s *APIServer) GetProductEbook(c *fiber.Ctx) error {
	raw, filename, err := s.svc.EbookPDF(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return sendPDF(c, raw, filename)
}

// ListOrders returns all orders, newest first.
func (s *APIServer) ListOrders(c *fiber.Ctx) error {
	orders, err := s.svc.Orders()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(orders)
}

type createOrderRequest struct {
	ProductID     string               `json:"product_id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Status        models.OrderStatus   `json:"status"`
	Address       string               `json:"address"`
	Country       string               `json:"country"`
	CreatedAt     *time.Time           `json:"created_at"`
	AccessTime    *time.Time           `json:"access_time"`
}

// CreateOrder records a purchase. The hosted checkout calls this after
// approval with the payer details; the admin back office calls it for
// manual or backdated orders.
func (s *APIServer) CreateOrder(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	order, err := s.svc.CreateOrder(backend.CreateOrderInput{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Address:       req.Address,
		Country:       req.Country,
		CreatedAt:     req.CreatedAt,
		AccessTime:    req.AccessTime,
	})
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// UpdateOrder merges the supplied fields into an order.
func (s *APIServer) UpdateOrder(c *fiber.Ctx) error {
	var updates backend.OrderUpdate
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	order, err := s.svc.UpdateOrder(c.Params("id"), updates)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(order)
}

// GetOrderInvoice returns the persisted invoice for an order, or a draft
// synthesized from the order (drafts are not persisted until saved).
func (s *APIServer) GetOrderInvoice(c *fiber.Ctx) error {
	invoice, err := s.svc.InvoiceByOrderID(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(invoice)
}

// GenerateInvoice explicitly creates a paid invoice for an order.
func (s *APIServer) GenerateInvoice(c *fiber.Ctx) error {
	invoice, err := s.svc.GenerateInvoice(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// CreateDownloadLink issues a fresh link for an order.
func (s *APIServer) CreateDownloadLink(c *fiber.Ctx) error {
	link, err := s.svc.CreateDownloadLink(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

// ListInvoices returns all persisted invoices.
func (s *APIServer) ListInvoices(c *fiber.Ctx) error {
	invoices, err := s.svc.Invoices()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(invoices)
}

// UpdateInvoice saves an invoice, enforcing invoice-number uniqueness.
func (s *APIServer) UpdateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	saved, err := s.svc.UpdateInvoice(&invoice)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(saved)
}

// GetInvoiceData returns the invoice enriched with its audit trail, the same
// data the PDF is rendered from.
func (s *APIServer) GetInvoiceData(c *fiber.Ctx) error {
	doc, err := s.svc.InvoicePDFData(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(doc)
}

// GetInvoicePDF streams the rendered invoice document.
func (s *APIServer) GetInvoicePDF(c *fiber.Ctx) error {
	raw, filename, err := s.svc.InvoicePDF(c.Params("id"))
	if err != nil {
		return s.renderError(c, err)
	}
	return sendPDF(c, raw, filename)
}

// ListDownloadLinks returns all download links.
func (s *APIServer) ListDownloadLinks(c *fiber.Ctx) error {
	links, err := s.svc.DownloadLinks()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(links)
}

// ListLogs returns the access log.
func (s *APIServer) ListLogs(c *fiber.Ctx) error {
	logs, err := s.svc.Logs()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(logs)
}

// GetStats returns the dashboard summary.
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	stats, err := s.svc.Stats()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(stats)
}

// GetCompanySettings returns the issuer configuration.
func (s *APIServer) GetCompanySettings(c *fiber.Ctx) error {
	settings, err := s.svc.CompanySettings()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(settings)
}

// UpdateCompanySettings replaces the issuer configuration.
func (s *APIServer) UpdateCompanySettings(c *fiber.Ctx) error {
	var settings models.CompanySettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	saved, err := s.svc.UpdateCompanySettings(&settings)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(saved)
}

// GetPayPalSettings returns the gateway configuration with the secret
// redacted.
func (s *APIServer) GetPayPalSettings(c *fiber.Ctx) error {
	settings, err := s.svc.PayPalSettings()
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(redactPayPal(settings))
}

// UpdatePayPalSettings replaces the gateway configuration. The secret is
// accepted and stored but never echoed back.
func (s *APIServer) UpdatePayPalSettings(c *fiber.Ctx) error {
	var settings models.PayPalSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": "invalid body"})
	}

	saved, err := s.svc.UpdatePayPalSettings(&settings)
	if err != nil {
		return s.renderError(c, err)
	}
	return c.JSON(redactPayPal(saved))
}

// redactPayPal strips the gateway secret for API responses. The stored record
// keeps it; only the wire copy is cleared.
func redactPayPal(settings *models.PayPalSettings) models.PayPalSettings {
	out := *settings
	out.Secret = ""
	return out
}

// renderError maps domain errors onto HTTP statuses: failed lookups to 404,
// the invoice-number conflict to 409, validation failures to 422.
func (s *APIServer) renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, backend.ErrProductNotFound),
		errors.Is(err, backend.ErrOrderNotFound),
		errors.Is(err, backend.ErrInvoiceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": err.Error()})
	case errors.Is(err, backend.ErrDuplicateInvoiceNumber):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": err.Error()})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "validation_failed", "message": err.Error()})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal", "message": "internal error"})
}

func sendPDF(c *fiber.Ctx, raw []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

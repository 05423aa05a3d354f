package models

import "github.com/go-playground/validator/v10"

// PayPal gateway modes.
const (
	PayPalModeSandbox = "sandbox"
	PayPalModeLive    = "live"
)

// CompanySettings is the singleton issuer configuration printed on invoices.
// Exactly one instance exists; it is replaced wholesale on save.
type CompanySettings struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	VATNumber     string `json:"vat_number" validate:"max=50"`
	Address       string `json:"address" validate:"max=500"`
	InvoicePrefix string `json:"invoice_prefix" validate:"required,min=1,max=10"`
	Website       string `json:"website" validate:"max=255"`
	FooterText    string `json:"footer_text" validate:"max=500"`
}

// Validate validates the settings
func (s *CompanySettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// PayPalSettings is the singleton payment-gateway configuration. Only the
// client-side call shape of the gateway is mimicked, so the credentials are
// never used to talk to PayPal; Mode still matters because the invoice audit
// trail flags sandbox transactions. Secret is stored and accepted on update
// but must never appear in API responses; handlers redact it on output.
type PayPalSettings struct {
	Enabled  bool   `json:"enabled"`
	Mode     string `json:"mode" validate:"required,oneof=sandbox live"`
	ClientID string `json:"client_id" validate:"max=255"`
	Secret   string `json:"secret,omitempty" validate:"max=255"`
}

// Validate validates the settings
func (s *PayPalSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// IsSandbox reports whether the gateway runs in sandbox mode.
func (s *PayPalSettings) IsSandbox() bool {
	return s.Mode == PayPalModeSandbox
}

package invoicepdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garsabers/storefront/app/models"
)

func testCompany() models.CompanySettings {
	return models.CompanySettings{
		Name:          "Garsabers",
		VATNumber:     "IE 1234567T",
		Address:       "Garsabers Inc.\nEcommerce Division",
		InvoicePrefix: "GS",
		Website:       "garsabers.com",
		FooterText:    "Done-For-You Shopify Stores.",
	}
}

func testInvoice() models.Invoice {
	return models.Invoice{
		ID:            "inv_test",
		OrderID:       "ord_test",
		InvoiceNumber: "GS-2026-1234",
		IssueDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Subtotal:      1000,
		Tax:           200,
		Total:         1200,
		Currency:      "EUR",
		Status:        models.InvoiceStatusPaid,
		BillTo: models.BillTo{
			Name:    "Marcus Aurelius",
			Email:   "marcus@rome.com",
			Address: "Palatine Hill 1\nRome",
			Country: "Italy",
		},
	}
}

func testAudit() models.InvoiceAuditTrail {
	return models.InvoiceAuditTrail{
		DeliveryStatus: models.DeliveryStatusDownloaded,
		LinkID:         "dl_1",
		SentTimestamp:  "2026-08-01T12:00:00Z",
		AccessIP:       "84.112.33.207",
		AccessTime:     "2026-08-01T12:05:00Z",
		DeviceSig:      "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15",
		IsSandbox:      true,
	}
}

func TestRenderInvoice(t *testing.T) {
	raw, err := RenderInvoice(InvoiceData{
		Invoice:     testInvoice(),
		Audit:       testAudit(),
		Company:     testCompany(),
		Description: "Premium Shopify Store",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRenderInvoiceWithDiscountAndWebsite(t *testing.T) {
	inv := testInvoice()
	inv.Discount = 150
	inv.WebsiteURL = "https://shop.example-client-with-a-rather-long-domain-name.com/storefront"

	raw, err := RenderInvoice(InvoiceData{
		Invoice:     inv,
		Audit:       testAudit(),
		Company:     testCompany(),
		Description: "Growth Shopify Store",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRenderInvoicePendingPlaceholders(t *testing.T) {
	audit := models.InvoiceAuditTrail{
		DeliveryStatus: models.DeliveryStatusPending,
		LinkID:         "—",
		SentTimestamp:  "—",
		AccessIP:       "—",
		AccessTime:     "—",
		DeviceSig:      "—",
	}

	raw, err := RenderInvoice(InvoiceData{
		Invoice:     testInvoice(),
		Audit:       audit,
		Company:     testCompany(),
		Description: "Premium Shopify Store",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
}

func TestRenderInvoiceLongBillingAddressWraps(t *testing.T) {
	inv := testInvoice()
	inv.BillTo.Address = "Apartment 42, The Extremely Long Building Name That Keeps Going, 1234 Boulevard of Unreasonably Verbose Street Names, District of Continued Lines"

	raw, err := RenderInvoice(InvoiceData{
		Invoice:     inv,
		Audit:       testAudit(),
		Company:     testCompany(),
		Description: "Premium Shopify Store",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)
}

func TestRenderEbook(t *testing.T) {
	product := models.Product{
		ID:          "prod_pf_playbook",
		Name:        "The Profitable Founder Playbook",
		Price:       250,
		Description: "The complete guide to building a profitable ecommerce business.",
		Chapters: []models.Chapter{
			{Title: "Foundations", Points: []string{"Mindset", "Market research", "Niche selection"}},
			{Title: "Store Setup", Points: []string{"Theme", "Products", "Payments"}},
		},
	}

	raw, err := RenderEbook(product, testCompany())
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRenderEbookManyChaptersPaginates(t *testing.T) {
	product := models.Product{
		ID:   "prod_big",
		Name: "The Exhaustive Playbook",
	}
	for i := 0; i < 40; i++ {
		product.Chapters = append(product.Chapters, models.Chapter{
			Title:  "Chapter",
			Points: []string{"First point", "Second point", "Third point"},
		})
	}

	small := models.Product{ID: "prod_small", Name: "Short", Chapters: product.Chapters[:2]}

	bigRaw, err := RenderEbook(product, testCompany())
	require.NoError(t, err)
	smallRaw, err := RenderEbook(small, testCompany())
	require.NoError(t, err)

	// more contents rows means more pages and a larger document
	assert.Greater(t, len(bigRaw), len(smallRaw))
}

func TestEuroFormatting(t *testing.T) {
	assert.Equal(t, "€1200.00", euro(1200))
	assert.Equal(t, "€0.50", euro(0.5))
}

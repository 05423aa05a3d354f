package store

import (
	"time"

	"github.com/garsabers/storefront/app/models"
)

// Defaults returns the seed record set used whenever no valid snapshot
// exists: a completed VIP order with its paid invoice, download link and
// access log, plus one pending manual order. The demo data keeps the admin
// dashboard non-empty on first start.
func Defaults() Snapshot {
	now := time.Now()

	return Snapshot{
		SchemaVersion: SchemaVersion,
		Orders: []models.Order{
			{
				ID:             "ord_123",
				Status:         models.OrderStatusCompleted,
				ProductID:      "prod_4",
				ProductName:    "Premium Shopify Store",
				CustomerName:   "Marcus Aurelius",
				CustomerEmail:  "marcus@rome.com",
				Amount:         1000,
				Currency:       "EUR",
				Tax:            200,
				CreatedAt:      now.Add(-48 * time.Hour),
				Notes:          "VIP Client",
				PaymentMethod:  models.PaymentMethodPayPal,
				TransactionID:  "PAY-882731",
				BillingAddress: "Palatine Hill 1\nRome, Empire",
				BillingCountry: "Italy",
			},
			{
				ID:            "ord_124",
				Status:        models.OrderStatusPending,
				ProductID:     "prod_2",
				ProductName:   "Starter Shopify Store",
				CustomerName:  "Lucius Verus",
				CustomerEmail: "lucius@rome.com",
				Amount:        250,
				Currency:      "EUR",
				Tax:           50,
				CreatedAt:     now.Add(-time.Hour),
				PaymentMethod: models.PaymentMethodManual,
			},
		},
		Invoices: []models.Invoice{
			{
				ID:            "inv_001",
				OrderID:       "ord_123",
				InvoiceNumber: "GS-2024-0001",
				IssueDate:     now,
				Subtotal:      1000,
				Tax:           200,
				Total:         1200,
				Currency:      "EUR",
				Status:        models.InvoiceStatusPaid,
				BillTo: models.BillTo{
					Name:    "Marcus Aurelius",
					Email:   "marcus@rome.com",
					Address: "Palatine Hill 1\nRome, Empire",
					Country: "Italy",
				},
				PdfURL: "#",
			},
		},
		DownloadLinks: []models.DownloadLink{
			{
				ID:            "dl_1",
				OrderID:       "ord_123",
				ProductName:   "Premium Shopify Store",
				Key:           "sec_829102",
				ExpiresAt:     now.Add(models.DownloadLinkValidityDays * 24 * time.Hour),
				MaxDownloads:  models.DownloadLinkMaxDownloads,
				DownloadCount: 1,
				IsActive:      true,
				CreatedAt:     now.Add(-47 * time.Hour),
			},
		},
		Logs: []models.AccessLog{
			{
				ID:        "log_1",
				LinkID:    "dl_1",
				Resource:  "Premium Shopify Store PDF",
				Timestamp: now,
				IP:        "84.112.33.207",
				DeviceSig: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/17C54 Safari/605.1.15",
			},
		},
		CompanySettings: models.CompanySettings{
			Name:          "Garsabers",
			VATNumber:     "IE 1234567T",
			Address:       "Garsabers Inc.\nEcommerce Division",
			InvoicePrefix: "GS",
			Website:       "garsabers.com",
			FooterText:    "Done-For-You Shopify Stores. Professional Development Services.",
		},
		PayPalSettings: models.PayPalSettings{
			Enabled: true,
			Mode:    models.PayPalModeSandbox,
		},
	}
}

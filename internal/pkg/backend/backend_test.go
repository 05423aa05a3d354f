package backend

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garsabers/storefront/app/models"
	"github.com/garsabers/storefront/app/repository"
	"github.com/garsabers/storefront/internal/pkg/catalog"
	"github.com/garsabers/storefront/internal/pkg/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "store.json"))
	return NewService(repository.NewRepositories(st))
}

func TestCreateOrderSnapshotsCatalogPrice(t *testing.T) {
	svc := newTestService(t)

	order, err := svc.CreateOrder(CreateOrderInput{
		ProductID: "prod_pf_playbook",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ord_"))
	assert.Equal(t, 250.0, order.Amount)
	assert.Equal(t, 50.0, order.Tax)
	assert.Equal(t, "EUR", order.Currency)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentMethodManual, order.PaymentMethod)
	assert.Empty(t, order.TransactionID)
}

func TestCreateOrderPricingAcrossCatalog(t *testing.T) {
	svc := newTestService(t)

	for _, product := range catalog.Products {
		order, err := svc.CreateOrder(CreateOrderInput{ProductID: product.ID})
		require.NoError(t, err, product.ID)
		assert.Equal(t, product.Price, order.Amount, product.ID)
		assert.Equal(t, product.Price*VATRate, order.Tax, product.ID)
		assert.Equal(t, product.Name, order.ProductName, product.ID)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateOrder(CreateOrderInput{ProductID: "prod_nope"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateOrderPrependsToListing(t *testing.T) {
	svc := newTestService(t)

	order, err := svc.CreateOrder(CreateOrderInput{ProductID: "prod_1", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	orders, err := svc.Orders()
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderTransactionIDShape(t *testing.T) {
	svc := newTestService(t)

	paypal, err := svc.CreateOrder(CreateOrderInput{
		ProductID:     "prod_1",
		PaymentMethod: models.PaymentMethodPayPal,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(paypal.TransactionID, "PAY-"))

	stripe, err := svc.CreateOrder(CreateOrderInput{
		ProductID:     "prod_1",
		PaymentMethod: models.PaymentMethodStripe,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stripe.TransactionID, "ch_"))
}

func TestCreateOrderCompletedSynthesizesLinkAndLog(t *testing.T) {
	svc := newTestService(t)

	orderDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	accessTime := orderDate.Add(2 * time.Hour)

	order, err := svc.CreateOrder(CreateOrderInput{
		ProductID:  "prod_pf_playbook",
		Name:       "Grace Hopper",
		Email:      "grace@example.com",
		Status:     models.OrderStatusCompleted,
		CreatedAt:  &orderDate,
		AccessTime: &accessTime,
	})
	require.NoError(t, err)
	assert.Equal(t, orderDate, order.CreatedAt)

	links, err := svc.DownloadLinks()
	require.NoError(t, err)

	var link *models.DownloadLink
	for i := range links {
		if links[i].OrderID == order.ID {
			link = &links[i]
		}
	}
	require.NotNil(t, link)
	assert.Equal(t, 1, link.DownloadCount)
	assert.Equal(t, models.DownloadLinkMaxDownloads, link.MaxDownloads)
	assert.Equal(t, accessTime, link.CreatedAt)
	assert.Equal(t, accessTime.Add(models.DownloadLinkValidityDays*24*time.Hour), link.ExpiresAt)
	assert.True(t, link.IsActive)

	logs, err := svc.Logs()
	require.NoError(t, err)

	var entry *models.AccessLog
	for i := range logs {
		if logs[i].LinkID == link.ID {
			entry = &logs[i]
		}
	}
	require.NotNil(t, entry)
	assert.Equal(t, order.ProductName+" PDF", entry.Resource)
	assert.Equal(t, accessTime, entry.Timestamp)
	assert.NotEmpty(t, entry.IP)
	assert.NotEmpty(t, entry.DeviceSig)
}

func TestCreateOrderPendingHasNoLink(t *testing.T) {
	svc := newTestService(t)

	before, err := svc.DownloadLinks()
	require.NoError(t, err)

	order, err := svc.CreateOrder(CreateOrderInput{
		ProductID: "prod_2",
		Status:    models.OrderStatusPending,
	})
	require.NoError(t, err)

	after, err := svc.DownloadLinks()
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	for _, l := range after {
		assert.NotEqual(t, order.ID, l.OrderID)
	}
}

func TestUpdateOrderMergesFields(t *testing.T) {
	svc := newTestService(t)

	status := models.OrderStatusRefunded
	notes := "refund requested by customer"
	order, err := svc.UpdateOrder("ord_123", OrderUpdate{
		Status: &status,
		Notes:  &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusRefunded, order.Status)
	assert.Equal(t, notes, order.Notes)

	// untouched fields survive
	assert.Equal(t, "Marcus Aurelius", order.CustomerName)
	assert.Equal(t, 1000.0, order.Amount)
}

func TestUpdateOrderUnknownID(t *testing.T) {
	svc := newTestService(t)

	status := models.OrderStatusFailed
	_, err := svc.UpdateOrder("ord_missing", OrderUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStatsCountCompletedRevenueOnly(t *testing.T) {
	svc := newTestService(t)

	// seed: ord_123 COMPLETED 1000, ord_124 PENDING 250
	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 142, stats.ActiveUsers)
	assert.Equal(t, 3.4, stats.ConversionRate)

	_, err = svc.CreateOrder(CreateOrderInput{
		ProductID: "prod_3",
		Status:    models.OrderStatusCompleted,
	})
	require.NoError(t, err)

	stats, err = svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1500.0, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalOrders)
}

func TestCreateDownloadLinkStartsAtZero(t *testing.T) {
	svc := newTestService(t)

	link, err := svc.CreateDownloadLink("ord_124")
	require.NoError(t, err)
	assert.Equal(t, "ord_124", link.OrderID)
	assert.Equal(t, 0, link.DownloadCount)
	assert.Equal(t, models.DownloadLinkMaxDownloads, link.MaxDownloads)
	assert.Len(t, link.Key, 12)

	links, err := svc.DownloadLinks()
	require.NoError(t, err)
	require.NotEmpty(t, links)
	assert.Equal(t, link.ID, links[0].ID)
}

func TestCreateDownloadLinkUnknownOrder(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateDownloadLink("ord_missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateCompanySettingsValidates(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdateCompanySettings(&models.CompanySettings{})
	require.Error(t, err)

	saved, err := svc.UpdateCompanySettings(&models.CompanySettings{
		Name:          "Garsabers",
		InvoicePrefix: "GS",
	})
	require.NoError(t, err)

	got, err := svc.CompanySettings()
	require.NoError(t, err)
	assert.Equal(t, saved.Name, got.Name)
}

func TestUpdatePayPalSettingsRejectsBadMode(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.UpdatePayPalSettings(&models.PayPalSettings{Mode: "staging"})
	require.Error(t, err)

	_, err = svc.UpdatePayPalSettings(&models.PayPalSettings{Enabled: true, Mode: models.PayPalModeLive, Secret: "shh_123"})
	require.NoError(t, err)

	got, err := svc.PayPalSettings()
	require.NoError(t, err)
	assert.False(t, got.IsSandbox())
	assert.Equal(t, "shh_123", got.Secret)
}

package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusFailed     OrderStatus = "FAILED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
	OrderStatusDownloaded OrderStatus = "DOWNLOADED"
)

// PaymentMethod identifies how an order was (or will be) paid.
type PaymentMethod string

const (
	PaymentMethodPayPal  PaymentMethod = "PAYPAL"
	PaymentMethodStripe  PaymentMethod = "STRIPE"
	PaymentMethodManual  PaymentMethod = "MANUAL"
	PaymentMethodInvoice PaymentMethod = "INVOICE"
)

// Order is a purchase record. ProductName, Amount and Tax are snapshots taken
// at creation time; later catalog changes never touch historical orders.
// Orders are never deleted.
type Order struct {
	ID             string        `json:"id"`
	Status         OrderStatus   `json:"status"`
	ProductID      string        `json:"product_id"`
	ProductName    string        `json:"product_name"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	Amount         float64       `json:"amount"`
	Currency       string        `json:"currency"`
	Tax            float64       `json:"tax"`
	CreatedAt      time.Time     `json:"created_at"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	TransactionID  string        `json:"transaction_id,omitempty"`
	BillingAddress string        `json:"billing_address,omitempty"`
	BillingCountry string        `json:"billing_country,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

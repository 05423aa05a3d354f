package models

// AdminStats is the derived dashboard summary. TotalRevenue sums the amounts
// (tax excluded) of COMPLETED orders. ActiveUsers and ConversionRate are fixed
// demo constants, not derived from any collection.
type AdminStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int     `json:"total_orders"`
	ActiveUsers    int     `json:"active_users"`
	ConversionRate float64 `json:"conversion_rate"`
}

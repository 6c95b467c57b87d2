package response_models

// DashboardReport backs the analytics page: headline counters plus the most
// recent sales.
type DashboardReport struct {
	TotalSales            int64          `json:"total_sales"`
	ApprovedSales         int64          `json:"approved_sales"`
	PendingSales          int64          `json:"pending_sales"`
	RefusedSales          int64          `json:"refused_sales"`
	RefundedSales         int64          `json:"refunded_sales"`
	ExpiredSales          int64          `json:"expired_sales"`
	ApprovedAmountInCents int64          `json:"approved_amount_in_cents"`
	RecentSales           []SaleResponse `json:"recent_sales"`
}

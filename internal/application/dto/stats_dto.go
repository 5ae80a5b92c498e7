package dto

import "github.com/shopspring/decimal"

// SellerStatsResponse aggregate figures for the seller dashboard.
type SellerStatsResponse struct {
	TotalSales      int             `json:"total_sales"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	TotalEarnings   decimal.Decimal `json:"total_earnings"`
	ProductsSold    int             `json:"products_sold"`
	TotalProducts   int             `json:"total_products"`
}

// PlatformStatsResponse marketplace-wide totals for GET /api/stats.
type PlatformStatsResponse struct {
	TotalSellers  int             `json:"totalSellers"`
	TotalProducts int             `json:"totalProducts"`
	TotalSales    int             `json:"totalSales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

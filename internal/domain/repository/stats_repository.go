package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SellerSalesStats aggregates a seller's settled sales.
type SellerSalesStats struct {
	TotalSales      int
	TotalRevenue    decimal.Decimal
	TotalCommission decimal.Decimal
	TotalEarnings   decimal.Decimal
	ProductsSold    int // distinct products with at least one sale
}

// PlatformStats aggregates marketplace-wide totals.
type PlatformStats struct {
	TotalSellers  int
	TotalProducts int
	TotalSales    int
	TotalRevenue  decimal.Decimal
}

// StatsRepository read-only aggregate queries for dashboards.
type StatsRepository interface {
	GetSellerSalesStats(ctx context.Context, sellerID string) (SellerSalesStats, error)
	CountProductsBySeller(ctx context.Context, sellerID string) (int, error)
	GetPlatformStats(ctx context.Context) (PlatformStats, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregate queries for the dashboards.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the stats adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// GetSellerSalesStats aggregates the seller's settled sales in one query.
// COALESCE keeps the zero-sales case at 0.00 instead of NULL.
func (r *StatsRepo) GetSellerSalesStats(ctx context.Context, sellerID string) (repository.SellerSalesStats, error) {
	var s repository.SellerSalesStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(sale_amount), 0),
			COALESCE(SUM(commission_amount), 0),
			COALESCE(SUM(seller_amount), 0),
			COUNT(DISTINCT product_id)
		FROM sales WHERE seller_id = $1`, sellerID).Scan(
		&s.TotalSales, &s.TotalRevenue, &s.TotalCommission, &s.TotalEarnings, &s.ProductsSold,
	)
	if err != nil {
		return s, fmt.Errorf("seller sales stats: %w", err)
	}
	return s, nil
}

// CountProductsBySeller counts the seller's listings.
func (r *StatsRepo) CountProductsBySeller(ctx context.Context, sellerID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE seller_id = $1`, sellerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count seller products: %w", err)
	}
	return n, nil
}

// GetPlatformStats aggregates marketplace-wide totals.
func (r *StatsRepo) GetPlatformStats(ctx context.Context) (repository.PlatformStats, error) {
	var s repository.PlatformStats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sellers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM sales),
			(SELECT COALESCE(SUM(sale_amount), 0) FROM sales)`).Scan(
		&s.TotalSellers, &s.TotalProducts, &s.TotalSales, &s.TotalRevenue,
	)
	if err != nil {
		return s, fmt.Errorf("platform stats: %w", err)
	}
	return s, nil
}

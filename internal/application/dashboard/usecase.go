// Package dashboard contains the aggregate read-only views: a seller's sales
// figures and the public marketplace totals.
package dashboard

import (
	"context"
	"fmt"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// DashboardUseCase builds stats responses.
//
// Data source: StatsRepository (read-only queries). It never touches the sales
// table directly; everything is delegated to the repository.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// GetSellerStats builds the SellerStatsResponse for the authenticated seller.
//
// Two calls in parallel:
//  1. GetSellerSalesStats → sales count, revenue, commission, earnings
//  2. CountProductsBySeller → total listings
func (uc *DashboardUseCase) GetSellerStats(ctx context.Context, sellerID string) (*dto.SellerStatsResponse, error) {
	type salesResult struct {
		stats repository.SellerSalesStats
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	salesCh := make(chan salesResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		s, err := uc.stats.GetSellerSalesStats(ctx, sellerID)
		salesCh <- salesResult{s, err}
	}()
	go func() {
		n, err := uc.stats.CountProductsBySeller(ctx, sellerID)
		countCh <- countResult{n, err}
	}()

	sales := <-salesCh
	count := <-countCh

	if sales.err != nil {
		return nil, fmt.Errorf("seller stats: sales aggregates: %w", sales.err)
	}
	if count.err != nil {
		return nil, fmt.Errorf("seller stats: product count: %w", count.err)
	}

	return &dto.SellerStatsResponse{
		TotalSales:      sales.stats.TotalSales,
		TotalRevenue:    sales.stats.TotalRevenue.Round(2),
		TotalCommission: sales.stats.TotalCommission.Round(2),
		TotalEarnings:   sales.stats.TotalEarnings.Round(2),
		ProductsSold:    sales.stats.ProductsSold,
		TotalProducts:   count.n,
	}, nil
}

// GetPlatformStats returns the public marketplace totals.
func (uc *DashboardUseCase) GetPlatformStats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	s, err := uc.stats.GetPlatformStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	return &dto.PlatformStatsResponse{
		TotalSellers:  s.TotalSellers,
		TotalProducts: s.TotalProducts,
		TotalSales:    s.TotalSales,
		TotalRevenue:  s.TotalRevenue.Round(2),
	}, nil
}

// Package sales contains the seller-facing read side of settled sales.
package sales

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/application/ports"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// SalesUseCase seller sales listing and receipt download.
type SalesUseCase struct {
	sales    repository.SaleRepository
	sellers  repository.SellerRepository
	receipts ports.ReceiptGenerator
}

// NewSalesUseCase builds the use case.
func NewSalesUseCase(sales repository.SaleRepository, sellers repository.SellerRepository, receipts ports.ReceiptGenerator) *SalesUseCase {
	return &SalesUseCase{sales: sales, sellers: sellers, receipts: receipts}
}

// ListBySeller returns the seller's settled sales, newest first.
func (uc *SalesUseCase) ListBySeller(ctx context.Context, sellerID string) (*dto.SellerSalesListResponse, error) {
	list, err := uc.sales.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SellerSaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSellerSale(s))
	}
	return &dto.SellerSalesListResponse{Sales: items}, nil
}

// Receipt renders the PDF receipt for one of the seller's own sales. A sale
// owned by another seller comes back as ErrNotFound.
func (uc *SalesUseCase) Receipt(ctx context.Context, sellerID, saleID string) ([]byte, error) {
	sale, err := uc.sales.GetByIDForSeller(ctx, saleID, sellerID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	seller, err := uc.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateSaleReceipt(ctx, sale, seller)
}

func toSellerSale(s *entity.Sale) dto.SellerSaleResponse {
	return dto.SellerSaleResponse{
		ID:               s.ID,
		ProductID:        s.ProductID,
		ProductName:      s.ProductName,
		ProductImage:     s.ProductImage,
		BuyerEmail:       s.BuyerEmail,
		SaleAmount:       s.SaleAmount,
		CommissionAmount: s.CommissionAmount,
		SellerAmount:     s.SellerAmount,
		SaleDate:         s.SaleDate,
	}
}

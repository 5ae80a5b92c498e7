package repository

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// SaleRepository defines the persistence port for Sale (DIP).
// Create must surface domain.ErrDuplicate on a payment-reference collision so
// the settlement engine can treat redelivery as already settled.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByPaymentReference(ctx context.Context, ref string) (*entity.Sale, error)
	// ListBySeller returns sales joined with product name and image, newest first.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Sale, error)
	GetByIDForSeller(ctx context.Context, id, sellerID string) (*entity.Sale, error)
}

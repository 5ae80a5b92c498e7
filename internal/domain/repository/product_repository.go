package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// ProductFilter narrows and orders a product search. Query must already be
// folded (see pkg/textutil); SortBy must come out of the catalog allow-list.
type ProductFilter struct {
	Query      string
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortDesc   bool
}

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Search returns products joined with seller name and category name.
	Search(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error)
}

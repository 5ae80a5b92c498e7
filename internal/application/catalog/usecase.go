// Package catalog implements category listing and product CRUD/search.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
	"github.com/web-dev-boy/Nexteria/pkg/textutil"
)

// Product constraints (mirrors the public API contract).
var (
	maxPrice       = decimal.NewFromFloat(99999.99)
	maxNameLen     = 200
	maxDescLen     = 1000
	allowedSortKey = map[string]bool{
		"name":       true,
		"price":      true,
		"created_at": true,
		"updated_at": true,
	}
)

// CatalogUseCase category and product operations.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCatalogUseCase builds the use case.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products}
}

// ListCategories returns all categories ordered by name.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return &dto.CategoryListResponse{Categories: items}, nil
}

// SearchProducts runs a filtered search. The sort key is allow-listed: any
// unrecognized key behaves exactly like created_at DESC, so user input never
// reaches query construction.
func (uc *CatalogUseCase) SearchProducts(ctx context.Context, in dto.SearchProductsRequest) (*dto.ProductListResponse, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// ListProducts returns the whole catalog, newest first.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.SearchProducts(ctx, dto.SearchProductsRequest{})
}

// CreateProduct validates bounds and persists a new listing for the seller.
// Price must be in (0, 99999.99].
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, sellerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)

	if len(name) == 0 || len(name) > maxNameLen {
		return nil, fmt.Errorf("%w: name must be 1-%d characters", domain.ErrInvalidInput, maxNameLen)
	}
	if len(description) == 0 || len(description) > maxDescLen {
		return nil, fmt.Errorf("%w: description must be 1-%d characters", domain.ErrInvalidInput, maxDescLen)
	}
	if !in.Price.IsPositive() || in.Price.GreaterThan(maxPrice) {
		return nil, fmt.Errorf("%w: price must be between 0.01 and %s", domain.ErrInvalidInput, maxPrice)
	}
	if in.CategoryID != nil {
		ok, err := uc.categories.Exists(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: unknown category", domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SellerID:    sellerID,
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: description,
		Price:       in.Price.Round(2),
		ImageURL:    in.ImageURL,
		SearchText:  textutil.Fold(name + " " + description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// ListBySeller returns the seller's own listings, newest first.
func (uc *CatalogUseCase) ListBySeller(ctx context.Context, sellerID string) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// buildFilter parses and validates the raw query parameters.
func buildFilter(in dto.SearchProductsRequest) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		Query: textutil.Fold(in.Query),
	}

	if in.CategoryID != "" {
		id, err := strconv.ParseInt(in.CategoryID, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("%w: category must be numeric", domain.ErrInvalidInput)
		}
		filter.CategoryID = &id
	}
	if in.MinPrice != "" {
		d, err := decimal.NewFromString(in.MinPrice)
		if err != nil {
			return filter, fmt.Errorf("%w: min_price must be a number", domain.ErrInvalidInput)
		}
		filter.MinPrice = &d
	}
	if in.MaxPrice != "" {
		d, err := decimal.NewFromString(in.MaxPrice)
		if err != nil {
			return filter, fmt.Errorf("%w: max_price must be a number", domain.ErrInvalidInput)
		}
		filter.MaxPrice = &d
	}

	if allowedSortKey[in.Sort] {
		filter.SortBy = in.Sort
		filter.SortDesc = !strings.EqualFold(in.Order, "ASC")
	} else {
		// Unrecognized sort keys fall back wholesale, direction included.
		filter.SortBy = "created_at"
		filter.SortDesc = true
	}
	return filter, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		SellerID:     p.SellerID,
		CategoryID:   p.CategoryID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		SellerName:   p.SellerName,
		CategoryName: p.CategoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Products: items}
}

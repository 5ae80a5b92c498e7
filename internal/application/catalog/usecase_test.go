package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	return r.categories, nil
}

func (r *fakeCategoryRepo) Exists(_ context.Context, id int64) (bool, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products   []*entity.Product
	lastFilter repository.ProductFilter
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Search(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.lastFilter = filter
	return r.products, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newTestUseCase() (*CatalogUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	categories := &fakeCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Books & Media"},
	}}
	products := &fakeProductRepo{}
	return NewCatalogUseCase(categories, products), products, categories
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ── Sort allow-listing ────────────────────────────────────────────────────────

func TestSearch_SortAllowList(t *testing.T) {
	uc, products, _ := newTestUseCase()
	ctx := context.Background()

	// Recognized key keeps the requested direction.
	_, err := uc.SearchProducts(ctx, dto.SearchProductsRequest{Sort: "price", Order: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "price", products.lastFilter.SortBy)
	assert.False(t, products.lastFilter.SortDesc)

	// Unrecognized key behaves exactly like created_at DESC, order included.
	_, err = uc.SearchProducts(ctx, dto.SearchProductsRequest{Sort: "password_hash; DROP TABLE products", Order: "ASC"})
	require.NoError(t, err)
	assert.Equal(t, "created_at", products.lastFilter.SortBy)
	assert.True(t, products.lastFilter.SortDesc)

	// Empty sort is the same fallback.
	_, err = uc.SearchProducts(ctx, dto.SearchProductsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "created_at", products.lastFilter.SortBy)
	assert.True(t, products.lastFilter.SortDesc)
}

func TestSearch_QueryIsFolded(t *testing.T) {
	uc, products, _ := newTestUseCase()

	_, err := uc.SearchProducts(context.Background(), dto.SearchProductsRequest{Query: "  Café  SEÑOR "})
	require.NoError(t, err)
	assert.Equal(t, "cafe senor", products.lastFilter.Query)
}

func TestSearch_InvalidFilters(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.SearchProducts(ctx, dto.SearchProductsRequest{CategoryID: "electronics"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SearchProducts(ctx, dto.SearchProductsRequest{MinPrice: "cheap"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SearchProducts(ctx, dto.SearchProductsRequest{MaxPrice: "1,000"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_PriceRangeParsed(t *testing.T) {
	uc, products, _ := newTestUseCase()

	_, err := uc.SearchProducts(context.Background(), dto.SearchProductsRequest{MinPrice: "5", MaxPrice: "20.50"})
	require.NoError(t, err)
	require.NotNil(t, products.lastFilter.MinPrice)
	require.NotNil(t, products.lastFilter.MaxPrice)
	assert.True(t, products.lastFilter.MinPrice.Equal(dec("5")))
	assert.True(t, products.lastFilter.MaxPrice.Equal(dec("20.50")))
}

// ── CreateProduct ─────────────────────────────────────────────────────────────

func TestCreateProduct_Valid(t *testing.T) {
	uc, products, _ := newTestUseCase()

	out, err := uc.CreateProduct(context.Background(), "seller-1", dto.CreateProductRequest{
		Name:        "Widget",
		Description: "A very útil widget",
		Price:       dec("10.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "seller-1", out.SellerID)
	assert.True(t, out.Price.Equal(dec("10.00")))

	require.Len(t, products.products, 1)
	assert.Equal(t, "widget a very util widget", products.products[0].SearchText,
		"search text is folded name + description")
}

func TestCreateProduct_PriceBounds(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()
	base := dto.CreateProductRequest{Name: "Widget", Description: "desc"}

	for _, price := range []string{"0", "-1", "100000.00"} {
		in := base
		in.Price = dec(price)
		_, err := uc.CreateProduct(ctx, "seller-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "price %s must be rejected", price)
	}

	in := base
	in.Price = dec("99999.99")
	_, err := uc.CreateProduct(ctx, "seller-1", in)
	assert.NoError(t, err, "upper bound is inclusive")
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	uc, _, _ := newTestUseCase()
	unknown := int64(99)

	_, err := uc.CreateProduct(context.Background(), "seller-1", dto.CreateProductRequest{
		Name: "Widget", Description: "desc", Price: dec("1.00"), CategoryID: &unknown,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProduct_LengthBounds(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	longName := make([]byte, 201)
	for i := range longName {
		longName[i] = 'a'
	}
	_, err := uc.CreateProduct(ctx, "seller-1", dto.CreateProductRequest{
		Name: string(longName), Description: "desc", Price: dec("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateProduct(ctx, "seller-1", dto.CreateProductRequest{
		Name: "Widget", Description: "   ", Price: dec("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "whitespace-only description is empty")
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for POST /api/products (multipart; the image file
// arrives separately and is stored before the use case runs).
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" form:"description" validate:"required,min=1,max=1000"`
	Price       decimal.Decimal `json:"price" form:"price" validate:"required"`
	CategoryID  *int64          `json:"category_id" form:"category_id" validate:"omitempty"`
	ImageURL    string          `json:"-" form:"-"`
}

// SearchProductsRequest query parameters for GET /api/products/search.
// Unrecognized sort keys fall back to created_at DESC (allow-listed in the
// catalog use case).
type SearchProductsRequest struct {
	Query      string `query:"q"`
	CategoryID string `query:"category"`
	MinPrice   string `query:"min_price"`
	MaxPrice   string `query:"max_price"`
	Sort       string `query:"sort"`
	Order      string `query:"order"`
}

// ProductResponse one product, with joined seller and category names when the
// query provides them.
type ProductResponse struct {
	ID           string          `json:"id"`
	SellerID     string          `json:"seller_id"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
	SellerName   string          `json:"seller_name,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse wrapper for product listings.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a listing owned by a seller.
// SearchText is a folded copy of Name + Description kept for free-text search.
type Product struct {
	ID          string
	SellerID    string
	CategoryID  *int64 // nil if uncategorized
	Name        string
	Description string
	Price       decimal.Decimal // sale price, > 0
	ImageURL    string          // public path under the uploads dir, empty if none
	SearchText  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields, populated by list/search queries only.
	SellerName   string
	CategoryName string
}

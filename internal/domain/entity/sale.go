package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the durable record of one settled payment.
// Immutable after insert; CommissionAmount + SellerAmount == SaleAmount always.
// PaymentReference is unique, which is what makes settlement idempotent under
// webhook redelivery.
type Sale struct {
	ID                string
	ProductID         string
	SellerID          string
	BuyerEmail        string
	SaleAmount        decimal.Decimal
	CommissionAmount  decimal.Decimal
	SellerAmount      decimal.Decimal
	PaymentReference  string // external payment id (Stripe PaymentIntent)
	CheckoutSessionID string // set when the sale came through Checkout
	SaleDate          time.Time

	// Joined fields for seller-facing listings.
	ProductName  string
	ProductImage string
}

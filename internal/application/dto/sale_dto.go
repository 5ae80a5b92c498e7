package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettleRequest input for POST /api/sales: an external payment confirmation
// naming a product and a buyer.
type SettleRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required"`
	ProductID        string `json:"product_id" validate:"required"`
	BuyerEmail       string `json:"buyer_email" validate:"required,email"`
}

// SaleResponse the commission split returned to the caller.
type SaleResponse struct {
	ID               string          `json:"id"`
	SaleAmount       decimal.Decimal `json:"sale_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	SellerAmount     decimal.Decimal `json:"seller_amount"`
}

// SellerSaleResponse one settled sale in the seller dashboard.
type SellerSaleResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	ProductImage     string          `json:"image_url,omitempty"`
	BuyerEmail       string          `json:"buyer_email"`
	SaleAmount       decimal.Decimal `json:"sale_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	SellerAmount     decimal.Decimal `json:"seller_amount"`
	SaleDate         time.Time       `json:"sale_date"`
}

// SellerSalesListResponse wrapper for GET /api/seller/sales.
type SellerSalesListResponse struct {
	Sales []SellerSaleResponse `json:"sales"`
}

// PaymentIntentRequest input for POST /api/create-payment-intent.
type PaymentIntentRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
}

// PaymentIntentProduct the product summary echoed alongside the client secret.
type PaymentIntentProduct struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PaymentIntentResponse drives the buyer's inline card confirmation. The
// intent id comes back later as the payment reference on POST /api/sales.
type PaymentIntentResponse struct {
	ClientSecret string               `json:"clientSecret"`
	Product      PaymentIntentProduct `json:"product"`
}

// CheckoutRequest input for POST /api/create-checkout-session.
type CheckoutRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	BuyerEmail string `json:"buyer_email" validate:"required,email"`
}

// CheckoutResponse the hosted payment page handle.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

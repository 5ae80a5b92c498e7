package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/application/settlement"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/payment"
)

// CheckoutHandler buyer-side payment endpoints: direct settlement and hosted
// Checkout session creation.
type CheckoutHandler struct {
	settlementUC *settlement.SettlementUseCase
	products     repository.ProductRepository
	gateway      *payment.StripeGateway
}

// NewCheckoutHandler builds the checkout handler.
func NewCheckoutHandler(settlementUC *settlement.SettlementUseCase, products repository.ProductRepository, gateway *payment.StripeGateway) *CheckoutHandler {
	return &CheckoutHandler{settlementUC: settlementUC, products: products, gateway: gateway}
}

// Settle godoc
// @Summary      Settle a confirmed payment into a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettleRequest  true  "payment_reference, product_id, buyer_email"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *CheckoutHandler) Settle(c *fiber.Ctx) error {
	var in dto.SettleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.PaymentReference == "" || in.ProductID == "" || in.BuyerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "payment_reference, product_id and buyer_email are required"})
	}
	out, err := h.settlementUC.Settle(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	RecordSettledSale()
	return c.JSON(out)
}

// CreatePaymentIntent godoc
// @Summary      Mint a PaymentIntent for an inline card payment
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentIntentRequest  true  "product_id, buyer_email"
// @Success      200   {object}  dto.PaymentIntentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/create-payment-intent [post]
func (h *CheckoutHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var in dto.PaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.ProductID == "" || in.BuyerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id and buyer_email are required"})
	}

	product, err := h.products.GetByID(c.UserContext(), in.ProductID)
	if err != nil {
		return fail(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}

	clientSecret, err := h.gateway.CreatePaymentIntent(c.UserContext(), product, in.BuyerEmail)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PaymentIntentResponse{
		ClientSecret: clientSecret,
		Product:      dto.PaymentIntentProduct{ID: product.ID, Name: product.Name, Price: product.Price},
	})
}

// CreateCheckoutSession godoc
// @Summary      Open a hosted payment page for one product
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "product_id, buyer_email"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/create-checkout-session [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.ProductID == "" || in.BuyerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id and buyer_email are required"})
	}

	product, err := h.products.GetByID(c.UserContext(), in.ProductID)
	if err != nil {
		return fail(c, err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}

	sessionID, url, err := h.gateway.CreateCheckoutSession(c.UserContext(), product, in.BuyerEmail)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CheckoutResponse{SessionID: sessionID, URL: url})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/application/settlement"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/payment"
)

// WebhookHandler receives payment gateway events. Signature verification is
// the trust boundary: a verified completed checkout settles without a second
// oracle round-trip.
type WebhookHandler struct {
	settlementUC *settlement.SettlementUseCase
	gateway      *payment.StripeGateway
}

// NewWebhookHandler builds the webhook handler.
func NewWebhookHandler(settlementUC *settlement.SettlementUseCase, gateway *payment.StripeGateway) *WebhookHandler {
	return &WebhookHandler{settlementUC: settlementUC, gateway: gateway}
}

// Handle godoc
// @Summary      Payment gateway webhook
// @Tags         sales
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/webhook [post]
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	checkout, err := h.gateway.VerifyWebhook(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Warn().Err(err).Msg("webhook rejected")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "webhook verification failed"})
	}
	if checkout == nil {
		// Verified but not a completed checkout; acknowledge and move on.
		return c.JSON(fiber.Map{"received": true})
	}

	in := dto.SettleRequest{
		PaymentReference: checkout.PaymentReference,
		ProductID:        checkout.ProductID,
		BuyerEmail:       checkout.BuyerEmail,
	}
	if _, err := h.settlementUC.SettleConfirmed(c.UserContext(), in, checkout.SessionID); err != nil {
		// A failed settlement must not be acknowledged: the gateway will
		// redeliver and the unique payment reference keeps the retry safe.
		return fail(c, err)
	}
	RecordSettledSale()
	return c.JSON(fiber.Map{"received": true})
}

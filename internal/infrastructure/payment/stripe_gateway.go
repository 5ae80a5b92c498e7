// Package payment adapts the Stripe API to the marketplace's payment ports.
package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/web-dev-boy/Nexteria/internal/application/settlement"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/pkg/config"
)

var _ settlement.PaymentOracle = (*StripeGateway)(nil)

// StripeGateway wraps the Stripe client. It acts as the settlement engine's
// payment oracle and creates hosted Checkout sessions for buyers.
type StripeGateway struct {
	sc            *client.API
	webhookSecret string
	siteURL       string
}

// NewStripeGateway builds the gateway from the Stripe configuration.
func NewStripeGateway(cfg config.StripeConfig, siteURL string) *StripeGateway {
	sc := client.New(cfg.SecretKey, nil)
	return &StripeGateway{sc: sc, webhookSecret: cfg.WebhookSecret, siteURL: siteURL}
}

// Confirm looks a PaymentIntent up by id and reports whether the charge
// succeeded. Only "succeeded" counts; processing and requires_* do not.
func (g *StripeGateway) Confirm(ctx context.Context, reference string) (*settlement.PaymentConfirmation, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.sc.PaymentIntents.Get(reference, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}
	return &settlement.PaymentConfirmation{
		Reference: pi.ID,
		Succeeded: pi.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

// CreatePaymentIntent mints a PaymentIntent for one product, priced from the
// catalog row. The client secret drives the buyer's inline card confirmation;
// the intent id then arrives at POST /api/sales as the payment reference.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, product *entity.Product, buyerEmail string) (clientSecret string, err error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(product.Price.Shift(2).Round(0).IntPart()),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("product_id", product.ID)
	params.AddMetadata("seller_id", product.SellerID)
	params.AddMetadata("buyer_email", buyerEmail)

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// CreateCheckoutSession opens a hosted payment page for one product. The
// product id rides in the session metadata so the webhook can settle later.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, product *entity.Product, buyerEmail string) (sessionID, url string, err error) {
	unitAmount := product.Price.Shift(2).Round(0).IntPart()

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(buyerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(string(stripe.CurrencyUSD)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(product.Name),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(g.siteURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.siteURL + "/cancel"),
	}
	params.Context = ctx
	params.AddMetadata("product_id", product.ID)
	params.AddMetadata("seller_id", product.SellerID)

	sess, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, sess.URL, nil
}

// CompletedCheckout is the settlement-relevant slice of a finished session.
type CompletedCheckout struct {
	SessionID        string
	PaymentReference string
	ProductID        string
	BuyerEmail       string
}

// VerifyWebhook checks the signature on a raw webhook payload and, when the
// event is a completed checkout, extracts the settlement input. A verified
// event of any other type returns (nil, nil).
func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*CompletedCheckout, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}
	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	// A completed session always carries its PaymentIntent; a payload without
	// one cannot be settled and must not be acked.
	if sess.PaymentIntent == nil || sess.PaymentIntent.ID == "" {
		return nil, fmt.Errorf("completed checkout session %s carries no payment intent", sess.ID)
	}

	out := &CompletedCheckout{
		SessionID:        sess.ID,
		PaymentReference: sess.PaymentIntent.ID,
		ProductID:        sess.Metadata["product_id"],
	}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		out.BuyerEmail = sess.CustomerDetails.Email
	} else {
		out.BuyerEmail = sess.CustomerEmail
	}
	return out, nil
}

// Package settlement converts a confirmed external payment into a durable sale
// record with the platform commission split.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/application/ports"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/commission"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// Bounds on outbound calls. The oracle check is fatal on timeout; the email is
// advisory and its timeout only stops us waiting.
const (
	oracleTimeout = 10 * time.Second
	emailTimeout  = 10 * time.Second
)

// SettlementUseCase the settlement engine (spec'd flow: lookup → confirm →
// split → persist once → advisory notify).
type SettlementUseCase struct {
	tx       TxRunner
	products repository.ProductRepository
	sellers  repository.SellerRepository
	sales    repository.SaleRepository
	inbox    repository.NotificationRepository
	oracle   PaymentOracle
	mailer   ports.Mailer
}

// NewSettlementUseCase builds the engine. mailer may be nil (email disabled).
func NewSettlementUseCase(
	tx TxRunner,
	products repository.ProductRepository,
	sellers repository.SellerRepository,
	sales repository.SaleRepository,
	inbox repository.NotificationRepository,
	oracle PaymentOracle,
	mailer ports.Mailer,
) *SettlementUseCase {
	return &SettlementUseCase{tx: tx, products: products, sellers: sellers, sales: sales, inbox: inbox, oracle: oracle, mailer: mailer}
}

// Settle checks the payment reference against the oracle and settles.
// Used by POST /api/sales where the caller supplies only the reference.
func (uc *SettlementUseCase) Settle(ctx context.Context, in dto.SettleRequest) (*dto.SaleResponse, error) {
	return uc.settle(ctx, in, "", false)
}

// SettleConfirmed settles a payment whose confirmation was already established
// by webhook signature verification; the oracle is not consulted again.
func (uc *SettlementUseCase) SettleConfirmed(ctx context.Context, in dto.SettleRequest, checkoutSessionID string) (*dto.SaleResponse, error) {
	return uc.settle(ctx, in, checkoutSessionID, true)
}

func (uc *SettlementUseCase) settle(ctx context.Context, in dto.SettleRequest, checkoutSessionID string, confirmed bool) (*dto.SaleResponse, error) {
	// An empty reference would make unrelated settlements collide on the unique
	// index and look like replays of each other.
	if in.PaymentReference == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrInvalidInput)
	}

	// Step 1: product must exist before anything else happens.
	if product, err := uc.products.GetByID(ctx, in.ProductID); err != nil {
		return nil, err
	} else if product == nil {
		return nil, domain.ErrNotFound
	}

	// Step 2: confirm the payment before touching storage.
	if !confirmed {
		octx, cancel := context.WithTimeout(ctx, oracleTimeout)
		defer cancel()
		conf, err := uc.oracle.Confirm(octx, in.PaymentReference)
		if err != nil {
			return nil, fmt.Errorf("payment oracle: %w", err)
		}
		if !conf.Succeeded {
			return nil, domain.ErrPaymentNotConfirmed
		}
	}

	// Steps 3 and 4 inside one transaction: the price is re-read from the
	// catalog row so a tampered payload cannot move money, and the sale insert
	// rides the same tx. The UNIQUE payment reference makes redelivery safe.
	var sale *entity.Sale
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		product, err := products.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		saleAmount := product.Price
		commissionAmount, sellerAmount := commission.Split(saleAmount)

		sale = &entity.Sale{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			SellerID:          product.SellerID,
			BuyerEmail:        in.BuyerEmail,
			SaleAmount:        saleAmount,
			CommissionAmount:  commissionAmount,
			SellerAmount:      sellerAmount,
			PaymentReference:  in.PaymentReference,
			CheckoutSessionID: checkoutSessionID,
			SaleDate:          time.Now(),
			ProductName:       product.Name,
		}
		return sales.Create(ctx, sale)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		// Redelivered confirmation: the sale already exists. Return the
		// original figures, no new side effects.
		existing, getErr := uc.sales.GetByPaymentReference(ctx, in.PaymentReference)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			return nil, err
		}
		log.Info().Str("payment_reference", in.PaymentReference).Msg("settlement replay, returning existing sale")
		return toSaleResponse(existing), nil
	}
	if err != nil {
		return nil, err
	}

	// Step 5: the sale is already real money; notification and email are
	// advisory only and must never undo it.
	uc.notifySeller(ctx, sale)

	return toSaleResponse(sale), nil
}

// notifySeller writes the inbox row and sends the sale email, best-effort.
func (uc *SettlementUseCase) notifySeller(ctx context.Context, sale *entity.Sale) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		SellerID:  sale.SellerID,
		Type:      entity.NotificationTypeSale,
		Title:     "Product Sold!",
		Message:   fmt.Sprintf("Your product %q was sold to %s for $%s", sale.ProductName, sale.BuyerEmail, sale.SaleAmount.StringFixed(2)),
		CreatedAt: time.Now(),
	}
	if err := uc.inbox.Create(ctx, n); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("sale notification row failed")
	}

	if uc.mailer == nil {
		return
	}
	seller, err := uc.sellers.GetByID(ctx, sale.SellerID)
	if err != nil || seller == nil {
		log.Error().Err(err).Str("seller_id", sale.SellerID).Msg("seller lookup for sale email failed")
		return
	}
	mctx, cancel := context.WithTimeout(ctx, emailTimeout)
	defer cancel()
	if err := uc.mailer.SendSaleNotification(mctx, seller.Email, sale.ProductName, sale.BuyerEmail,
		sale.SaleAmount, sale.SellerAmount, sale.CommissionAmount); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("sale email failed")
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:               s.ID,
		SaleAmount:       s.SaleAmount,
		CommissionAmount: s.CommissionAmount,
		SellerAmount:     s.SellerAmount,
	}
}

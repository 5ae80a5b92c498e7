package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements the SaleRepository port over PostgreSQL.
// It accepts a Querier so it can run on the pool or inside a transaction.
type SaleRepo struct {
	db Querier
}

// NewSaleRepository builds the persistence adapter for sales.
func NewSaleRepository(db Querier) *SaleRepo {
	return &SaleRepo{db: db}
}

const saleJoin = `
	SELECT sa.id, sa.product_id, sa.seller_id, sa.buyer_email,
		sa.sale_amount, sa.commission_amount, sa.seller_amount,
		sa.payment_reference, sa.checkout_session_id, sa.sale_date,
		p.name AS product_name, p.image_url AS product_image
	FROM sales sa
	JOIN products p ON p.id = sa.product_id`

// Create persists a sale. A payment-reference collision surfaces as
// domain.ErrDuplicate so settlement can treat redelivery as already settled.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, seller_id, buyer_email,
			sale_amount, commission_amount, seller_amount,
			payment_reference, checkout_session_id, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.ProductID, s.SellerID, s.BuyerEmail,
		s.SaleAmount, s.CommissionAmount, s.SellerAmount,
		s.PaymentReference, s.CheckoutSessionID, s.SaleDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByPaymentReference returns the sale or (nil, nil) when missing.
func (r *SaleRepo) GetByPaymentReference(ctx context.Context, ref string) (*entity.Sale, error) {
	row := r.db.QueryRow(ctx, saleJoin+` WHERE sa.payment_reference = $1`, ref)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by payment reference: %w", err)
	}
	return s, nil
}

// ListBySeller returns the seller's sales joined with product data, newest first.
func (r *SaleRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Sale, error) {
	rows, err := r.db.Query(ctx,
		saleJoin+` WHERE sa.seller_id = $1 ORDER BY sa.sale_date DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByIDForSeller returns the sale only when it belongs to sellerID,
// (nil, nil) otherwise.
func (r *SaleRepo) GetByIDForSeller(ctx context.Context, id, sellerID string) (*entity.Sale, error) {
	row := r.db.QueryRow(ctx, saleJoin+` WHERE sa.id = $1 AND sa.seller_id = $2`, id, sellerID)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale for seller: %w", err)
	}
	return s, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ProductID, &s.SellerID, &s.BuyerEmail,
		&s.SaleAmount, &s.CommissionAmount, &s.SellerAmount,
		&s.PaymentReference, &s.CheckoutSessionID, &s.SaleDate,
		&s.ProductName, &s.ProductImage,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implements the SellerRepository port over PostgreSQL.
type SellerRepo struct {
	pool *pgxpool.Pool
}

// NewSellerRepository builds the persistence adapter for sellers.
func NewSellerRepository(pool *pgxpool.Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

const sellerColumns = `id, name, email, password_hash, stripe_account_id,
	failed_logins, locked_until, last_login, created_at, updated_at`

// Create persists a new seller. A duplicate email surfaces as
// domain.ErrEmailAlreadyExists.
func (r *SellerRepo) Create(ctx context.Context, s *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, name, email, password_hash, stripe_account_id,
			failed_logins, locked_until, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.PasswordHash, s.StripeAccountID,
		s.FailedLogins, s.LockedUntil, s.LastLogin, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID returns the seller or (nil, nil) when missing.
func (r *SellerRepo) GetByID(ctx context.Context, id string) (*entity.Seller, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, id), "get seller by id")
}

// GetByEmail returns the seller or (nil, nil) when missing. The email is
// expected to be normalized lowercase by the caller.
func (r *SellerRepo) GetByEmail(ctx context.Context, email string) (*entity.Seller, error) {
	return r.scanOne(r.pool.QueryRow(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE email = $1`, email), "get seller by email")
}

// UpdateLoginState persists the lockout counter, lock timestamp and last login.
func (r *SellerRepo) UpdateLoginState(ctx context.Context, s *entity.Seller) error {
	query := `
		UPDATE sellers SET failed_logins = $2, locked_until = $3, last_login = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, s.ID, s.FailedLogins, s.LockedUntil, s.LastLogin, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update seller login state: %w", err)
	}
	return nil
}

func (r *SellerRepo) scanOne(row pgx.Row, op string) (*entity.Seller, error) {
	var s entity.Seller
	err := row.Scan(
		&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.StripeAccountID,
		&s.FailedLogins, &s.LockedUntil, &s.LastLogin, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

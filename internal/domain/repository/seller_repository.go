package repository

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// SellerRepository defines the persistence port for Seller (DIP).
type SellerRepository interface {
	Create(ctx context.Context, seller *entity.Seller) error
	GetByID(ctx context.Context, id string) (*entity.Seller, error)
	GetByEmail(ctx context.Context, email string) (*entity.Seller, error)
	// UpdateLoginState persists the lockout counter, lock timestamp and last login.
	UpdateLoginState(ctx context.Context, seller *entity.Seller) error
}

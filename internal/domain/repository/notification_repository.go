package repository

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// NotificationRepository defines the persistence port for Notification (DIP).
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListBySeller returns the seller's inbox ordered by created_at descending.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Notification, error)
	// MarkRead flips the read flag on a notification owned by sellerID and
	// returns the number of rows matched (0 when missing or not owned).
	MarkRead(ctx context.Context, sellerID, id string) (int64, error)
}

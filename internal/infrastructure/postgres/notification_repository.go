package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implements the NotificationRepository port over PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository builds the persistence adapter for notifications.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create persists an inbox entry.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, seller_id, type, title, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		n.ID, n.SellerID, n.Type, n.Title, n.Message, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListBySeller returns the seller's inbox, newest first.
func (r *NotificationRepo) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, seller_id, type, title, message, read, created_at
		FROM notifications WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.SellerID, &n.Type, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead flips the read flag on the seller's own notification and returns
// the number of rows matched. The ownership check lives in the WHERE clause.
func (r *NotificationRepo) MarkRead(ctx context.Context, sellerID, id string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND seller_id = $2`, id, sellerID)
	if err != nil {
		return 0, fmt.Errorf("mark notification read: %w", err)
	}
	return tag.RowsAffected(), nil
}

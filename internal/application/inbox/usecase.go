// Package inbox exposes the seller notification inbox.
package inbox

import (
	"context"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// InboxUseCase read and acknowledge operations over a seller's notifications.
type InboxUseCase struct {
	notifications repository.NotificationRepository
}

// NewInboxUseCase builds the use case.
func NewInboxUseCase(notifications repository.NotificationRepository) *InboxUseCase {
	return &InboxUseCase{notifications: notifications}
}

// List returns the seller's notifications, newest first.
func (uc *InboxUseCase) List(ctx context.Context, sellerID string) (*dto.NotificationListResponse, error) {
	list, err := uc.notifications.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Notifications: items}, nil
}

// MarkRead flags one notification as read. The update is scoped to the
// seller's own rows, so a foreign id and a missing id are indistinguishable:
// both come back as ErrNotFound. Re-reading an already-read notification is a
// no-op success.
func (uc *InboxUseCase) MarkRead(ctx context.Context, sellerID, notificationID string) error {
	matched, err := uc.notifications.MarkRead(ctx, sellerID, notificationID)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}

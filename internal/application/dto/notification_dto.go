package dto

import "time"

// NotificationResponse one inbox entry.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationListResponse wrapper for GET /api/seller/notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

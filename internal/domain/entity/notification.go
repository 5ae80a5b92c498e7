package entity

import "time"

// Notification types.
const (
	NotificationTypeSale    = "sale"
	NotificationTypeWelcome = "welcome"
)

// Notification is one entry in a seller's inbox. Read is monotonic false→true.
type Notification struct {
	ID        string
	SellerID  string
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

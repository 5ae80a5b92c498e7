package entity

import "time"

// Category represents a product category. A fixed default set is seeded at
// startup; additional rows may be added administratively.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

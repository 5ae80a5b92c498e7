package entity

import "time"

// Lockout policy applied on repeated login failures.
const (
	MaxFailedLogins = 5
	LockoutDuration = 30 * time.Minute
)

// Seller represents a registered seller account.
// FailedLogins and LockedUntil implement the login lockout counter; both are
// mutated only by the auth use case.
type Seller struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string // bcrypt hash, never plaintext past registration
	StripeAccountID string // empty until the seller connects a payout account
	FailedLogins    int
	LockedUntil     *time.Time
	LastLogin       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LockedAt reports whether the account is locked at the given instant.
func (s *Seller) LockedAt(now time.Time) bool {
	return s.LockedUntil != nil && s.LockedUntil.After(now)
}

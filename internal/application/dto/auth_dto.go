package dto

// RegisterRequest registration input. Password is validated against the policy
// (min 8 chars, upper + lower + digit) in the auth use case.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SellerResponse seller output (never includes the password hash).
type SellerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse token plus the authenticated seller.
type AuthResponse struct {
	Token string         `json:"token"`
	User  SellerResponse `json:"user"`
}

// Principal is the identity extracted from a verified token.
type Principal struct {
	SellerID string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

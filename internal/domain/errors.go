package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound            = errors.New("resource not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountLocked       = errors.New("account locked")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDuplicate           = errors.New("duplicate resource")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrPaymentNotConfirmed = errors.New("payment not confirmed")
)

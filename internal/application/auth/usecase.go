// Package auth implements registration, login with lockout, and token verification.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/application/ports"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
	"github.com/web-dev-boy/Nexteria/pkg/jwt"
)

const bcryptCost = 12

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration, login and verification.
type AuthUseCase struct {
	sellers repository.SellerRepository
	inbox   repository.NotificationRepository
	mailer  ports.Mailer
	jwtCfg  JWTConfig
	now     func() time.Time
}

// NewAuthUseCase builds the use case. mailer may be nil (email disabled).
func NewAuthUseCase(sellers repository.SellerRepository, inbox repository.NotificationRepository, mailer ports.Mailer, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{
		sellers: sellers,
		inbox:   inbox,
		mailer:  mailer,
		jwtCfg:  jwtCfg,
		now:     time.Now,
	}
}

// Register validates input, hashes the password and persists the seller.
// The welcome notification and email are advisory: their failure never fails
// the registration. Returns a 24h token alongside the new seller.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if len(name) < 2 || len(name) > 100 {
		return nil, fmt.Errorf("%w: name must be 2-100 characters", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	existing, err := uc.sellers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	seller := &entity.Seller{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}

	uc.welcome(ctx, seller)

	token, err := jwt.Generate(uc.jwtCfg.Secret, seller.ID, seller.Email, seller.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toSellerResponse(seller)}, nil
}

// Login checks the lockout window before the password. Five consecutive
// failures lock the account for 30 minutes; a success resets the counter and
// stamps last_login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(in.Email)
	seller, err := uc.sellers.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := uc.now()
	if seller.LockedAt(now) {
		// Locked: reject without touching the password or the counter.
		return nil, domain.ErrAccountLocked
	}
	if seller.LockedUntil != nil {
		// Lock expired: clear it before counting this attempt.
		seller.LockedUntil = nil
		seller.FailedLogins = 0
		if err := uc.sellers.UpdateLoginState(ctx, seller); err != nil {
			return nil, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(in.Password)); err != nil {
		seller.FailedLogins++
		locked := false
		if seller.FailedLogins >= entity.MaxFailedLogins {
			until := now.Add(entity.LockoutDuration)
			seller.LockedUntil = &until
			locked = true
		}
		if err := uc.sellers.UpdateLoginState(ctx, seller); err != nil {
			return nil, err
		}
		if locked {
			return nil, domain.ErrAccountLocked
		}
		return nil, domain.ErrInvalidCredentials
	}

	seller.FailedLogins = 0
	seller.LockedUntil = nil
	seller.LastLogin = &now
	if err := uc.sellers.UpdateLoginState(ctx, seller); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, seller.ID, seller.Email, seller.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toSellerResponse(seller)}, nil
}

// Verify is a stateless signature/expiry check; no DB read.
func (uc *AuthUseCase) Verify(tokenString string) (*dto.Principal, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.Principal{SellerID: claims.SellerID, Email: claims.Email, Name: claims.Name}, nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// upper, lower and digit.
func ValidatePassword(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return fmt.Errorf("%w: password must contain upper, lower and digit", domain.ErrInvalidInput)
	}
	return nil
}

// welcome emits the inbox row and email for a fresh registration, best-effort.
func (uc *AuthUseCase) welcome(ctx context.Context, seller *entity.Seller) {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		SellerID:  seller.ID,
		Type:      entity.NotificationTypeWelcome,
		Title:     "Welcome to Nexteria!",
		Message:   fmt.Sprintf("Hello %s! Add your first product to start selling.", seller.Name),
		CreatedAt: uc.now(),
	}
	if err := uc.inbox.Create(ctx, n); err != nil {
		log.Warn().Err(err).Str("seller_id", seller.ID).Msg("welcome notification failed")
	}
	if uc.mailer != nil {
		if err := uc.mailer.SendWelcome(ctx, seller.Email, seller.Name); err != nil {
			log.Warn().Err(err).Str("seller_id", seller.ID).Msg("welcome email failed")
		}
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toSellerResponse(s *entity.Seller) dto.SellerResponse {
	return dto.SellerResponse{ID: s.ID, Name: s.Name, Email: s.Email}
}

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
)

// ── In-memory fakes ───────────────────────────────────────────────────────────

type fakeSellerRepo struct {
	byEmail map[string]*entity.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{byEmail: map[string]*entity.Seller{}}
}

func (r *fakeSellerRepo) Create(_ context.Context, s *entity.Seller) error {
	if _, ok := r.byEmail[s.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *s
	r.byEmail[s.Email] = &cp
	return nil
}

func (r *fakeSellerRepo) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	for _, s := range r.byEmail {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerRepo) GetByEmail(_ context.Context, email string) (*entity.Seller, error) {
	s, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSellerRepo) UpdateLoginState(_ context.Context, s *entity.Seller) error {
	stored, ok := r.byEmail[s.Email]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FailedLogins = s.FailedLogins
	stored.LockedUntil = s.LockedUntil
	stored.LastLogin = s.LastLogin
	return nil
}

type fakeInbox struct {
	created []*entity.Notification
}

func (r *fakeInbox) Create(_ context.Context, n *entity.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeInbox) ListBySeller(_ context.Context, _ string) ([]*entity.Notification, error) {
	return r.created, nil
}

func (r *fakeInbox) MarkRead(_ context.Context, _, _ string) (int64, error) { return 0, nil }

// ── Helpers ───────────────────────────────────────────────────────────────────

const (
	testPassword = "Abcdef12"
	testEmail    = "alice@example.com"
)

func newTestUseCase(t *testing.T) (*AuthUseCase, *fakeSellerRepo, *fakeInbox, *time.Time) {
	t.Helper()
	sellers := newFakeSellerRepo()
	inbox := &fakeInbox{}
	uc := NewAuthUseCase(sellers, inbox, nil, JWTConfig{
		Secret:     "unit-test-secret",
		ExpMinutes: 24 * 60,
		Issuer:     "nexteria-test",
	})
	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }
	return uc, sellers, inbox, &clock
}

func registerAlice(t *testing.T, uc *AuthUseCase) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Alice",
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	return out
}

// ── Register ──────────────────────────────────────────────────────────────────

func TestRegister_IssuesTokenAndWelcomeNotification(t *testing.T) {
	uc, _, inbox, _ := newTestUseCase(t)
	out := registerAlice(t, uc)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Alice", out.User.Name)
	assert.Equal(t, testEmail, out.User.Email)

	require.Len(t, inbox.created, 1, "registration must leave a welcome notification")
	assert.Equal(t, entity.NotificationTypeWelcome, inbox.created[0].Type)
	assert.False(t, inbox.created[0].Read)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	registerAlice(t, uc)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Alice Again", Email: "ALICE@example.com", Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"emails compare case-insensitively")
}

func TestRegister_PasswordPolicy(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	bad := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, pw := range bad {
		_, err := uc.Register(context.Background(), dto.RegisterRequest{
			Name: "Bob", Email: "bob@example.com", Password: pw,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "password %q must be rejected", pw)
	}
}

func TestRegister_VerifyRoundTrip(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	out := registerAlice(t, uc)

	p, err := uc.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, p.SellerID)
	assert.Equal(t, testEmail, p.Email)
}

func TestVerify_GarbageToken(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	_, err := uc.Verify("not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ── Login lockout state machine ───────────────────────────────────────────────

func failLogin(t *testing.T, uc *AuthUseCase, times int) error {
	t.Helper()
	var err error
	for i := 0; i < times; i++ {
		_, err = uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: "Wrong999"})
	}
	return err
}

func TestLogin_Success(t *testing.T) {
	uc, sellers, _, _ := newTestUseCase(t)
	registerAlice(t, uc)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	stored := sellers.byEmail[testEmail]
	assert.NotNil(t, stored.LastLogin, "successful login stamps last_login")
	assert.Zero(t, stored.FailedLogins)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, sellers, _, _ := newTestUseCase(t)
	registerAlice(t, uc)

	err := failLogin(t, uc, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, sellers.byEmail[testEmail].FailedLogins)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_FifthFailureLocks(t *testing.T) {
	uc, sellers, _, _ := newTestUseCase(t)
	registerAlice(t, uc)

	err := failLogin(t, uc, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "first four failures are plain rejections")

	err = failLogin(t, uc, 1)
	assert.ErrorIs(t, err, domain.ErrAccountLocked, "fifth failure locks the account")
	require.NotNil(t, sellers.byEmail[testEmail].LockedUntil)
}

func TestLogin_CorrectPasswordRejectedWhileLocked(t *testing.T) {
	uc, _, _, clock := newTestUseCase(t)
	registerAlice(t, uc)
	failLogin(t, uc, 5)

	// 29 minutes later, still inside the window: even the right password fails.
	*clock = clock.Add(29 * time.Minute)
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogin_LockExpiresAndCounterResets(t *testing.T) {
	uc, sellers, _, clock := newTestUseCase(t)
	registerAlice(t, uc)
	failLogin(t, uc, 5)

	*clock = clock.Add(31 * time.Minute)
	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err, "after the lockout window the correct password succeeds")
	assert.NotEmpty(t, out.Token)

	stored := sellers.byEmail[testEmail]
	assert.Zero(t, stored.FailedLogins, "counter resets to zero after the lock expires")
	assert.Nil(t, stored.LockedUntil)
}

func TestLogin_CounterKeepsCountingAfterExpiredLock(t *testing.T) {
	uc, sellers, _, clock := newTestUseCase(t)
	registerAlice(t, uc)
	failLogin(t, uc, 5)

	// Lock expired; a new wrong attempt starts the count from one again.
	*clock = clock.Add(31 * time.Minute)
	err := failLogin(t, uc, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Equal(t, 1, sellers.byEmail[testEmail].FailedLogins)
}

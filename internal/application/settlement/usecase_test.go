package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-dev-boy/Nexteria/internal/application/dto"
	"github.com/web-dev-boy/Nexteria/internal/domain"
	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *fakeProductRepo) Search(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}

type fakeSellerRepo struct {
	byID map[string]*entity.Seller
}

func (r *fakeSellerRepo) Create(_ context.Context, _ *entity.Seller) error { return nil }
func (r *fakeSellerRepo) GetByID(_ context.Context, id string) (*entity.Seller, error) {
	return r.byID[id], nil
}
func (r *fakeSellerRepo) GetByEmail(_ context.Context, _ string) (*entity.Seller, error) {
	return nil, nil
}
func (r *fakeSellerRepo) UpdateLoginState(_ context.Context, _ *entity.Seller) error { return nil }

type fakeSaleRepo struct {
	byRef map[string]*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	if _, ok := r.byRef[s.PaymentReference]; ok {
		return domain.ErrDuplicate
	}
	cp := *s
	r.byRef[s.PaymentReference] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByPaymentReference(_ context.Context, ref string) (*entity.Sale, error) {
	return r.byRef[ref], nil
}

func (r *fakeSaleRepo) ListBySeller(_ context.Context, _ string) ([]*entity.Sale, error) {
	return nil, nil
}

func (r *fakeSaleRepo) GetByIDForSeller(_ context.Context, _, _ string) (*entity.Sale, error) {
	return nil, nil
}

type fakeInbox struct {
	created []*entity.Notification
	fail    error
}

func (r *fakeInbox) Create(_ context.Context, n *entity.Notification) error {
	if r.fail != nil {
		return r.fail
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeInbox) ListBySeller(_ context.Context, _ string) ([]*entity.Notification, error) {
	return r.created, nil
}

func (r *fakeInbox) MarkRead(_ context.Context, _, _ string) (int64, error) { return 0, nil }

type fakeOracle struct {
	succeeded map[string]bool
	err       error
	calls     int
}

func (o *fakeOracle) Confirm(_ context.Context, ref string) (*PaymentConfirmation, error) {
	o.calls++
	if o.err != nil {
		return nil, o.err
	}
	return &PaymentConfirmation{Reference: ref, Succeeded: o.succeeded[ref]}, nil
}

type fakeMailer struct {
	saleEmails int
	fail       error
}

func (m *fakeMailer) SendWelcome(_ context.Context, _, _ string) error { return nil }

func (m *fakeMailer) SendSaleNotification(_ context.Context, _, _, _ string, _, _, _ decimal.Decimal) error {
	if m.fail != nil {
		return m.fail
	}
	m.saleEmails++
	return nil
}

// fakeTxRunner runs the callback straight against the fakes; rollback is not
// modeled because the callback's only write is the final sale insert.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	return fn(t.products, t.sales)
}

// ── Fixture ───────────────────────────────────────────────────────────────────

type fixture struct {
	uc     *SettlementUseCase
	sales  *fakeSaleRepo
	inbox  *fakeInbox
	oracle *fakeOracle
	mailer *fakeMailer
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newFixture() *fixture {
	products := &fakeProductRepo{byID: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", SellerID: "seller-1", Name: "Widget", Price: dec("10.00")},
		"prod-2": {ID: "prod-2", SellerID: "seller-1", Name: "Gadget", Price: dec("50.00")},
	}}
	sellers := &fakeSellerRepo{byID: map[string]*entity.Seller{
		"seller-1": {ID: "seller-1", Name: "Alice", Email: "alice@example.com"},
	}}
	sales := &fakeSaleRepo{byRef: map[string]*entity.Sale{}}
	inbox := &fakeInbox{}
	oracle := &fakeOracle{succeeded: map[string]bool{"pi_ok": true, "pi_pending": false}}
	mailer := &fakeMailer{}
	tx := &fakeTxRunner{products: products, sales: sales}
	return &fixture{
		uc:     NewSettlementUseCase(tx, products, sellers, sales, inbox, oracle, mailer),
		sales:  sales,
		inbox:  inbox,
		oracle: oracle,
		mailer: mailer,
	}
}

func settleReq(ref string) dto.SettleRequest {
	return dto.SettleRequest{PaymentReference: ref, ProductID: "prod-1", BuyerEmail: "buyer@example.com"}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestSettle_Success(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Settle(context.Background(), settleReq("pi_ok"))
	require.NoError(t, err)

	assert.True(t, out.SaleAmount.Equal(dec("10.00")))
	assert.True(t, out.CommissionAmount.Equal(dec("1.00")))
	assert.True(t, out.SellerAmount.Equal(dec("9.00")))
	assert.True(t, out.CommissionAmount.Add(out.SellerAmount).Equal(out.SaleAmount))

	sale := f.sales.byRef["pi_ok"]
	require.NotNil(t, sale, "a Sale row is persisted")
	assert.Equal(t, "seller-1", sale.SellerID)
	assert.Equal(t, "buyer@example.com", sale.BuyerEmail)

	require.Len(t, f.inbox.created, 1, "seller gets an inbox notification")
	assert.Equal(t, entity.NotificationTypeSale, f.inbox.created[0].Type)
	assert.Equal(t, 1, f.mailer.saleEmails, "seller gets an email")
}

func TestSettle_ProductNotFound(t *testing.T) {
	f := newFixture()

	in := settleReq("pi_ok")
	in.ProductID = "prod-missing"
	_, err := f.uc.Settle(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, f.sales.byRef, "no sale on missing product")
	assert.Empty(t, f.inbox.created, "no notification on missing product")
	assert.Zero(t, f.oracle.calls, "the oracle is not consulted for a missing product")
}

func TestSettle_PaymentNotConfirmed(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Settle(context.Background(), settleReq("pi_pending"))
	assert.ErrorIs(t, err, domain.ErrPaymentNotConfirmed)

	assert.Empty(t, f.sales.byRef, "no sale without confirmation")
	assert.Empty(t, f.inbox.created)
	assert.Zero(t, f.mailer.saleEmails)
}

func TestSettle_OracleFailure(t *testing.T) {
	f := newFixture()
	f.oracle.err = errors.New("gateway down")

	_, err := f.uc.Settle(context.Background(), settleReq("pi_ok"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPaymentNotConfirmed,
		"an oracle outage is an internal failure, not a refusal")
	assert.Empty(t, f.sales.byRef)
}

func TestSettle_RedeliveryIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.Settle(ctx, settleReq("pi_ok"))
	require.NoError(t, err)

	second, err := f.uc.Settle(ctx, settleReq("pi_ok"))
	require.NoError(t, err, "redelivery settles cleanly")

	assert.Equal(t, first.ID, second.ID, "the original sale is returned")
	assert.True(t, first.SaleAmount.Equal(second.SaleAmount))
	assert.Len(t, f.sales.byRef, 1, "exactly one Sale per payment reference")
	assert.Len(t, f.inbox.created, 1, "no duplicate notification on replay")
	assert.Equal(t, 1, f.mailer.saleEmails, "no duplicate email on replay")
}

func TestSettle_NotificationFailureDoesNotUndoSale(t *testing.T) {
	f := newFixture()
	f.inbox.fail = errors.New("inbox write failed")
	f.mailer.fail = errors.New("smtp down")

	out, err := f.uc.Settle(context.Background(), settleReq("pi_ok"))
	require.NoError(t, err, "step-5 failures are swallowed")
	assert.True(t, out.SellerAmount.Equal(dec("9.00")))
	assert.NotNil(t, f.sales.byRef["pi_ok"], "the sale stays committed")
}

// Two unrelated confirmations without a reference must both be rejected; the
// second must never be mistaken for a replay of the first.
func TestSettle_EmptyPaymentReferenceRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.SettleConfirmed(ctx, settleReq(""), "cs_1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	other := settleReq("")
	other.ProductID = "prod-2"
	_, err = f.uc.SettleConfirmed(ctx, other, "cs_2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"a second empty reference is rejected, not returned as an existing sale")

	_, err = f.uc.Settle(ctx, settleReq(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, f.sales.byRef, "nothing is persisted without a payment reference")
	assert.Empty(t, f.inbox.created)
	assert.Zero(t, f.oracle.calls, "the oracle is never consulted without a reference")
}

func TestSettleConfirmed_SkipsOracle(t *testing.T) {
	f := newFixture()

	out, err := f.uc.SettleConfirmed(context.Background(), settleReq("pi_webhook"), "cs_123")
	require.NoError(t, err)
	assert.Zero(t, f.oracle.calls, "signature-verified events bypass the status check")
	assert.True(t, out.CommissionAmount.Equal(dec("1.00")))
	assert.Equal(t, "cs_123", f.sales.byRef["pi_webhook"].CheckoutSessionID)
}

// TestSettle_PriceFromCatalog pins that the split always derives from the
// product row, regardless of anything the payment payload might claim.
func TestSettle_PriceFromCatalog(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Settle(context.Background(), settleReq("pi_ok"))
	require.NoError(t, err)
	assert.True(t, out.SaleAmount.Equal(dec("10.00")), "sale amount equals the catalog price")
}

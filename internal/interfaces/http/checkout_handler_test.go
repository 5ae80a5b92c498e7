package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web-dev-boy/Nexteria/internal/domain/entity"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
	apphttp "github.com/web-dev-boy/Nexteria/internal/interfaces/http"
)

type stubProductRepo struct {
	byID map[string]*entity.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *stubProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.byID[id], nil
}

func (r *stubProductRepo) Search(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *stubProductRepo) ListBySeller(_ context.Context, _ string) ([]*entity.Product, error) {
	return nil, nil
}

// The gateway stays nil: these cases must finish before any Stripe call.
func buildCheckoutApp() *fiber.App {
	products := &stubProductRepo{byID: map[string]*entity.Product{}}
	h := apphttp.NewCheckoutHandler(nil, products, nil)

	app := fiber.New()
	app.Post("/api/create-payment-intent", h.CreatePaymentIntent)
	app.Post("/api/create-checkout-session", h.CreateCheckoutSession)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreatePaymentIntent_MissingFields(t *testing.T) {
	app := buildCheckoutApp()

	resp := postJSON(t, app, "/api/create-payment-intent", `{"product_id":"prod-1"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreatePaymentIntent_ProductNotFound(t *testing.T) {
	app := buildCheckoutApp()

	resp := postJSON(t, app, "/api/create-payment-intent",
		`{"product_id":"prod-missing","buyer_email":"buyer@example.com"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCheckoutSession_MissingFields(t *testing.T) {
	app := buildCheckoutApp()

	resp := postJSON(t, app, "/api/create-checkout-session", `{"buyer_email":"buyer@example.com"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCheckoutSession_ProductNotFound(t *testing.T) {
	app := buildCheckoutApp()

	resp := postJSON(t, app, "/api/create-checkout-session",
		`{"product_id":"prod-missing","buyer_email":"buyer@example.com"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

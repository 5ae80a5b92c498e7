package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/web-dev-boy/Nexteria/internal/interfaces/http"
	pkgjwt "github.com/web-dev-boy/Nexteria/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSellerID  = "00000000-0000-0000-0000-000000000001"
	testEmail     = "alice@example.com"
	testName      = "Alice"
	testIssuer    = "nexteria-test"
	testExpMin    = 60
)

func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"seller_id": apphttp.GetSellerID(c),
			"email":     apphttp.GetSellerEmail(c),
			"name":      apphttp.GetSellerName(c),
		})
	})
	return app
}

func testToken(t *testing.T, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSellerID, testEmail, testName, testIssuer, expMinutes)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtractsClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+testToken(t, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSellerID, body["seller_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, testName, body["name"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer "+testToken(t, -1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWT_GenerateAndParse(t *testing.T) {
	tok := testToken(t, testExpMin)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSellerID, claims.SellerID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testName, claims.Name)
}

func TestJWT_WrongSecret(t *testing.T) {
	tok := testToken(t, testExpMin)

	_, err := pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err)
}

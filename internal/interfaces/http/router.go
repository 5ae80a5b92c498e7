// Package http wires the Fiber routes and middleware for the marketplace API.
package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/web-dev-boy/Nexteria/internal/application/auth"
	"github.com/web-dev-boy/Nexteria/internal/application/catalog"
	"github.com/web-dev-boy/Nexteria/internal/application/dashboard"
	"github.com/web-dev-boy/Nexteria/internal/application/inbox"
	"github.com/web-dev-boy/Nexteria/internal/application/sales"
	"github.com/web-dev-boy/Nexteria/internal/application/settlement"
	"github.com/web-dev-boy/Nexteria/internal/domain/repository"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/payment"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/storage"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CatalogUC    *catalog.CatalogUseCase
	SalesUC      *sales.SalesUseCase
	InboxUC      *inbox.InboxUseCase
	DashboardUC  *dashboard.DashboardUseCase
	SettlementUC *settlement.SettlementUseCase
	Products     repository.ProductRepository
	Images       *storage.LocalImageStore
	Gateway      *payment.StripeGateway
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public, tightly rate limited). Successful logins do not count
	// against the limit.
	authLimiter := limiter.New(limiter.Config{
		Max:                    5,
		Expiration:             15 * time.Minute,
		SkipSuccessfulRequests: true,
	})
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authLimiter, authHandler.Register)
	authGroup.Post("/login", authLimiter, authHandler.Login)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret), authHandler.Verify)

	// Public catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.DashboardUC)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/search", catalogHandler.SearchProducts)
	api.Get("/stats", catalogHandler.PlatformStats)

	// Buyer-side payments (public: buyers have no account)
	checkoutHandler := NewCheckoutHandler(deps.SettlementUC, deps.Products, deps.Gateway)
	api.Post("/sales", checkoutHandler.Settle)
	api.Post("/create-payment-intent", checkoutHandler.CreatePaymentIntent)
	api.Post("/create-checkout-session", checkoutHandler.CreateCheckoutSession)

	webhookHandler := NewWebhookHandler(deps.SettlementUC, deps.Gateway)
	api.Post("/webhook", webhookHandler.Handle)

	// Seller routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.CatalogUC, deps.Images)
	protected.Post("/products", productHandler.Create)

	sellerHandler := NewSellerHandler(deps.SalesUC, deps.InboxUC, deps.DashboardUC)
	seller := protected.Group("/seller")
	seller.Get("/products", productHandler.Mine)
	seller.Get("/sales", sellerHandler.Sales)
	seller.Get("/sales/:id/receipt", sellerHandler.Receipt)
	seller.Get("/stats", sellerHandler.Stats)
	seller.Get("/notifications", sellerHandler.Notifications)
	seller.Put("/notifications/:id/read", sellerHandler.MarkNotificationRead)
}

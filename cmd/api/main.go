package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/web-dev-boy/Nexteria/internal/application/auth"
	"github.com/web-dev-boy/Nexteria/internal/application/catalog"
	"github.com/web-dev-boy/Nexteria/internal/application/dashboard"
	"github.com/web-dev-boy/Nexteria/internal/application/inbox"
	"github.com/web-dev-boy/Nexteria/internal/application/ports"
	"github.com/web-dev-boy/Nexteria/internal/application/sales"
	"github.com/web-dev-boy/Nexteria/internal/application/settlement"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/email"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/payment"
	infrapdf "github.com/web-dev-boy/Nexteria/internal/infrastructure/pdf"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/postgres"
	"github.com/web-dev-boy/Nexteria/internal/infrastructure/storage"
	httpRouter "github.com/web-dev-boy/Nexteria/internal/interfaces/http"
	"github.com/web-dev-boy/Nexteria/pkg/config"
	"github.com/web-dev-boy/Nexteria/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("database migration")
	}

	sellerRepo := postgres.NewSellerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Nil interface when SMTP is not configured; callers treat email as disabled.
	var mailer ports.Mailer
	if m := email.NewSMTPMailer(cfg.SMTP, cfg.App.Name); m != nil {
		mailer = m
	}

	gateway := payment.NewStripeGateway(cfg.Stripe, cfg.App.SiteURL)
	receiptGen := infrapdf.NewReceiptGenerator(cfg.App.Name)

	images, err := storage.NewLocalImageStore(cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("image store")
	}

	authUC := auth.NewAuthUseCase(sellerRepo, notificationRepo, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(categoryRepo, productRepo)
	settlementUC := settlement.NewSettlementUseCase(txRunner, productRepo, sellerRepo, saleRepo, notificationRepo, gateway, mailer)
	salesUC := sales.NewSalesUseCase(saleRepo, sellerRepo, receiptGen)
	inboxUC := inbox.NewInboxUseCase(notificationRepo)
	dashboardUC := dashboard.NewDashboardUseCase(statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    (cfg.Upload.MaxSizeMB + 1) * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nexteria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())
	app.Static("/uploads", images.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		SalesUC:      salesUC,
		InboxUC:      inboxUC,
		DashboardUC:  dashboardUC,
		SettlementUC: settlementUC,
		Products:     productRepo,
		Images:       images,
		Gateway:      gateway,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// schema creates the marketplace tables. Statements are idempotent so the
// migration can run on every boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sellers (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		stripe_account_id TEXT NOT NULL DEFAULT '',
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until  TIMESTAMPTZ,
		last_login    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		seller_id   TEXT NOT NULL REFERENCES sellers(id),
		category_id BIGINT REFERENCES categories(id),
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		price       NUMERIC(7,2) NOT NULL CHECK (price > 0),
		image_url   TEXT NOT NULL DEFAULT '',
		search_text TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_seller ON products (seller_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id                  TEXT PRIMARY KEY,
		product_id          TEXT NOT NULL REFERENCES products(id),
		seller_id           TEXT NOT NULL REFERENCES sellers(id),
		buyer_email         TEXT NOT NULL,
		sale_amount         NUMERIC(7,2) NOT NULL,
		commission_amount   NUMERIC(7,2) NOT NULL,
		seller_amount       NUMERIC(7,2) NOT NULL,
		payment_reference   TEXT NOT NULL UNIQUE,
		checkout_session_id TEXT NOT NULL DEFAULT '',
		sale_date           TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_seller ON sales (seller_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		seller_id  TEXT NOT NULL REFERENCES sellers(id),
		type       TEXT NOT NULL,
		title      TEXT NOT NULL,
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_seller ON notifications (seller_id, created_at DESC)`,
}

// defaultCategories seeded on first boot. ON CONFLICT keeps reruns harmless.
var defaultCategories = []string{
	"Electronics",
	"Clothing & Fashion",
	"Home & Garden",
	"Sports & Outdoors",
	"Books & Media",
	"Health & Beauty",
	"Toys & Games",
	"Food & Beverages",
	"Automotive",
	"Art & Crafts",
	"Business & Industrial",
	"Other",
}

// Migrate applies the schema and seeds the default categories.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	if err := SeedCategories(ctx, pool); err != nil {
		return err
	}
	log.Info().Msg("database schema ready")
	return nil
}

// SeedCategories inserts the default category set, skipping names that exist.
func SeedCategories(ctx context.Context, pool *pgxpool.Pool) error {
	for _, name := range defaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}
	return nil
}

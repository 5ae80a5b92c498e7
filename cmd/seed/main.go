// seed applies the schema and inserts the default marketplace categories.
// Safe to run repeatedly.
//
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/web-dev-boy/Nexteria/internal/infrastructure/postgres"
	"github.com/web-dev-boy/Nexteria/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("schema applied and default categories seeded")
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/approveit/migrations"
)

// EnsureSchema applies every pending embedded migration and returns how many
// were applied. On an up-to-date database it is a no-op returning 0.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	// goose requires *sql.DB; the wrapper shares the pool's connections.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}

	return len(results), nil
}

package postgres

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"traffix/pkg/e"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies the embedded goose migrations through the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	const op = "postgres.Migrate"

	dir, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return e.Wrap(op, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, dir)
	if err != nil {
		return e.Wrap(op, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error("migrations failed", slog.String("op", op), slog.Any("error", err))
		return e.Wrap(op, err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			slog.String("source", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

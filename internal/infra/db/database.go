package db

import (
	"context"
	"fmt"
	"time"

	"washbay/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// chargesSchema is applied on connect. The table is tiny and append-mostly,
// so a migration tool would be overkill here.
const chargesSchema = `
CREATE TABLE IF NOT EXISTS no_show_charges (
    booking_id  TEXT PRIMARY KEY,
    payment_id  TEXT NOT NULL,
    amount_cents BIGINT NOT NULL,
    currency    TEXT NOT NULL,
    charged_at  TIMESTAMPTZ NOT NULL,
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return pool, pool.Close, nil
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, chargesSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

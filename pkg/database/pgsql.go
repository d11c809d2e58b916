// Package database builds the PostgreSQL connection pool with an explicit,
// bounded configuration. The pool is constructed once at startup and closed
// during shutdown; nothing else owns its lifecycle.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions bounds the connection pool.
type PoolOptions struct {
	MinConns int32
	MaxConns int32
}

// NewPgxPool creates a PostgreSQL connection pool from the URL and verifies
// connectivity with a ping before returning it.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	poolConfig.MinConns = opts.MinConns
	poolConfig.MaxConns = opts.MaxConns
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("connected to PostgreSQL",
		"min_conns", opts.MinConns, "max_conns", opts.MaxConns)
	return pool, nil
}

// ClosePgxPool closes the connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		slog.Info("PostgreSQL connection pool closed")
	}
}

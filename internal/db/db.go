// Package db owns the pgx connection pool lifecycle: built once at
// startup, injected into repositories, closed on shutdown.
package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the pool. pgxpool connects lazily, so a down database
// does not fail startup; Ping reports connectivity separately.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Ping probes the database with a short deadline. Used by the health
// endpoint and the startup check.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return pool.Ping(ctx)
}

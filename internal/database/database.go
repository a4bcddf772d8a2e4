package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dbURL string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = maxConns
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS questions (
	id        BIGINT PRIMARY KEY,
	question  TEXT NOT NULL,
	answer    TEXT NOT NULL,
	keyword   TEXT NOT NULL,
	frequency INTEGER NOT NULL DEFAULT 0,
	top       BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS interviews (
	id          BIGINT PRIMARY KEY,
	date        TEXT NOT NULL DEFAULT '',
	client      TEXT NOT NULL DEFAULT '',
	vendor      TEXT NOT NULL DEFAULT '',
	interviewer TEXT NOT NULL DEFAULT '',
	candidate   TEXT NOT NULL DEFAULT '',
	position    TEXT NOT NULL DEFAULT '',
	questions   JSONB NOT NULL DEFAULT '[]'
);
`

// Migrate creates the catalog tables if they are missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

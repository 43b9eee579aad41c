// Package postgres opens pooled sqlx connections over the pgx driver and applies schema migrations.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

type poolConfig struct {
	connMaxIdleTime time.Duration
	connMaxLifetime time.Duration
	maxIdleConns    int
	maxOpenConns    int
	connectAttempts int
	connectBackoff  time.Duration
}

var defaultPoolConfig = poolConfig{
	connMaxIdleTime: 5 * time.Minute,
	connMaxLifetime: 30 * time.Minute,
	maxIdleConns:    5,
	maxOpenConns:    25,
	connectAttempts: 1,
	connectBackoff:  time.Second,
}

type Option func(*poolConfig)

func WithConnMaxIdleTime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxIdleTime = d
		}
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(c *poolConfig) {
		if d > 0 {
			c.connMaxLifetime = d
		}
	}
}

func WithMaxIdleConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxIdleConns = n
		}
	}
}

func WithMaxOpenConns(n int) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.maxOpenConns = n
		}
	}
}

// WithConnectAttempts retries the initial ping, waiting backoff between attempts.
func WithConnectAttempts(n int, backoff time.Duration) Option {
	return func(c *poolConfig) {
		if n > 0 {
			c.connectAttempts = n
		}
		if backoff > 0 {
			c.connectBackoff = backoff
		}
	}
}

func New(ctx context.Context, dsn string, opts ...Option) (*sqlx.DB, error) {
	const op = "postgres.New"

	cfg := defaultPoolConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open database: %w", op, err)
	}

	db.SetConnMaxIdleTime(cfg.connMaxIdleTime)
	db.SetConnMaxLifetime(cfg.connMaxLifetime)
	db.SetMaxIdleConns(cfg.maxIdleConns)
	db.SetMaxOpenConns(cfg.maxOpenConns)

	if err := ping(ctx, db, cfg.connectAttempts, cfg.connectBackoff); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to connect to database: %w", op, err)
	}

	return db, nil
}

func ping(ctx context.Context, db *sqlx.DB, attempts int, backoff time.Duration) error {
	var err error

	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return err
}

// Package repository persists parsed receipts. It speaks plain SQL over
// database/sql with two backends: a local sqlite file (the default) and
// Postgres for shared setups.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	// DSN is a postgres:// URL or a sqlite path (file or ":memory:").
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

const (
	dialectSQLite   = "sqlite"
	dialectPostgres = "postgres"
)

// DB wraps the sql handle with the dialect it was opened for.
type DB struct {
	*sql.DB
	dialect string
	pool    *pgxpool.Pool // nil for sqlite
}

// Open connects to the database named by cfg.DSN and applies the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("empty database DSN")
	}

	var db *DB
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		pg, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		db = pg
	} else {
		logger.Info("opening sqlite database", "path", cfg.DSN)
		// _pragma in the DSN applies to every pooled connection
		dsn := cfg.DSN
		if dsn != ":memory:" && !strings.Contains(dsn, "_pragma") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_pragma=foreign_keys(1)"
		}
		handle, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// one writer connection: sqlite locks the whole file, and a
		// :memory: database exists per connection
		handle.SetMaxOpenConns(1)
		db = &DB{DB: handle, dialect: dialectSQLite}
	}

	if err := db.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*DB, error) {
	logger.Info("connecting to postgres", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pc.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "kassabon"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &DB{DB: stdlib.OpenDBFromPool(pool), dialect: dialectPostgres, pool: pool}, nil
}

// Close closes the handle and, for Postgres, the underlying pool.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}

// HealthCheck pings the database to catch DSN issues early.
func (db *DB) HealthCheck(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS receipts (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		store_name TEXT NOT NULL,
		total      REAL NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS receipt_items (
		receipt_id TEXT    NOT NULL REFERENCES receipts(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		name       TEXT    NOT NULL,
		quantity   INTEGER NOT NULL,
		price      REAL    NOT NULL,
		category   TEXT    NOT NULL,
		PRIMARY KEY (receipt_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_receipts_date ON receipts(date)`,
}

func (db *DB) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders to the $N form Postgres expects.
// Queries are written for sqlite and rebound on the way out.
func (db *DB) rebind(query string) string {
	if db.dialect != dialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

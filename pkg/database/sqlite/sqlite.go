package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type Config struct {
	Path          string
	BusyTimeoutMS int
	MaxOpenConns  int
}

// New opens the sqlite database file and verifies the connection.
// The caller owns the handle and injects it into the repositories;
// a failure here is fatal for the service, there is no retry.
func New(cfg *Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=foreign_keys(0)", cfg.Path, cfg.BusyTimeoutMS)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single shared handle: the process is the only writer.
	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)

	return db, nil
}

const productsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		price REAL NOT NULL,
		stock INTEGER NOT NULL,
		reorder_level INTEGER NOT NULL
	)`

const salesSchema = `
	CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER,
		quantity INTEGER,
		total_price REAL,
		sale_date TEXT
	)`

// EnsureSchema creates the products and sales tables if they do not exist.
// It runs before any repository is handed the connection and is a no-op on
// an already-initialized database file. The sales.product_id column is a
// logical reference only; deleting a product leaves its sales rows behind.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, productsSchema); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}
	if _, err := db.ExecContext(ctx, salesSchema); err != nil {
		return fmt.Errorf("create sales table: %w", err)
	}
	return nil
}

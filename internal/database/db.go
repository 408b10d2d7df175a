// Package database provides the phrase store backing the keyword detectors.
// Phrase lists are configuration, not comment data; no comment ever touches
// the database.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 2
	defaultConnLifetime = 5 * time.Minute
	pingTimeout         = 5 * time.Second
)

// Open connects to the phrase store. driver is "sqlite3" or "postgres".
func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the phrase_rules table if missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	var ddl string
	if db.DriverName() == "postgres" {
		ddl = `
			CREATE TABLE IF NOT EXISTS phrase_rules (
				id SERIAL PRIMARY KEY,
				category TEXT NOT NULL,
				phrase TEXT NOT NULL,
				enabled BOOLEAN NOT NULL DEFAULT TRUE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (category, phrase)
			)`
	} else {
		ddl = `
			CREATE TABLE IF NOT EXISTS phrase_rules (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				category TEXT NOT NULL,
				phrase TEXT NOT NULL,
				enabled BOOLEAN NOT NULL DEFAULT 1,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (category, phrase)
			)`
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create phrase_rules table: %w", err)
	}
	return nil
}

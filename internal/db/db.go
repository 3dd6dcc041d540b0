// Package db opens the SQLite database backing the sqlite fleet store.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN names a private in-memory database. It disappears with the
// connection, so nothing survives the session.
const MemoryDSN = ":memory:"

// OpenMemory opens a fresh in-memory database with the schema applied.
func OpenMemory(ctx context.Context) (*sql.DB, error) {
	database, err := sql.Open("sqlite3", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every new connection to :memory: is a new, empty database.
	database.SetMaxOpenConns(1)
	database.SetConnMaxLifetime(0)

	if _, err := database.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := database.ExecContext(ctx, SchemaSQL); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

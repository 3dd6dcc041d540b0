// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// setupTestDB() goes through db.OpenMemory(), which applies db.SchemaSQL, so
// tests always run against the authoritative schema.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/fleet/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedShip inserts a test ship and returns its seq.
func seedShip(t *testing.T, database *sql.DB, shipID int, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Ship"
	}
	result, err := database.Exec("INSERT INTO ships (ship_id, name, daily_rate, fuel_capacity) VALUES (?, ?, 100, 10)", shipID, name)
	if err != nil {
		t.Fatalf("failed to seed ship: %v", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded seq: %v", err)
	}
	return seq
}

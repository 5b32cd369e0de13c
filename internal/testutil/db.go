// Package testutil holds helpers shared by package tests
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/thenoetrevino/lanes/internal/database"
	"github.com/thenoetrevino/lanes/internal/storage"
)

// SetupTestDB creates an in-memory database with the key-value table
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupTestStore returns a SQLite-backed key-value store on a fresh in-memory db
func SetupTestStore(t *testing.T) storage.Store {
	t.Helper()
	return database.NewStore(SetupTestDB(t))
}

// SequentialIDs returns a generator yielding task-1, task-2, ...
func SequentialIDs() storage.IDGenerator {
	var n atomic.Int64
	return func() (string, error) {
		return fmt.Sprintf("task-%d", n.Add(1)), nil
	}
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Store is a key-value store kept in the local_storage table.
// Each Set is a single statement, so a write either lands whole or not at all.
type Store struct {
	db *sql.DB
}

// NewStore wraps an initialized database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM local_storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value under key
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Remove deletes key; removing an absent key is not an error
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM local_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// Size returns the bytes held by every key and value in the table
func (s *Store) Size(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(length(CAST(key AS BLOB)) + length(CAST(value AS BLOB))), 0)
		FROM local_storage
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to measure local storage: %w", err)
	}
	return total, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Package storage provides the SQLite implementation of the storage
// ports. Data lives in a single key-value table; the typed Store
// wraps it with JSON encoding for the application records.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomato-timer/tomato/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteKV implements the ports.KV interface using SQLite.
type sqliteKV struct {
	db *sql.DB
}

// Ensure sqliteKV implements ports.KV.
var _ ports.KV = (*sqliteKV)(nil)

// NewKV opens (or creates) the key-value store at dbPath.
func NewKV(dbPath string) (ports.KV, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &sqliteKV{db: db}, nil
}

// NewMemoryKV creates an in-memory key-value store for testing.
func NewMemoryKV() (ports.KV, error) {
	return NewKV(":memory:")
}

// Get returns the value for key, or ok=false if absent.
func (s *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *sqliteKV) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// SetMany stores all pairs in a single transaction.
func (s *sqliteKV) SetMany(ctx context.Context, pairs map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range pairs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value)
		if err != nil {
			return fmt.Errorf("failed to set %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *sqliteKV) Close() error {
	return s.db.Close()
}

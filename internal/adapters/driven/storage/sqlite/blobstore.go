// Package sqlite provides a SQLite-backed blob store. Blobs live in a
// single key-value table; the medication collection still occupies one
// slot and is rewritten in full on every mutation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is a SQLite-backed implementation of driven.BlobStore.
type BlobStore struct {
	db   *sql.DB
	path string
}

// NewBlobStore creates a SQLite blob store at the specified data
// directory. If dataDir is empty, defaults to ~/.pillziy/data.
func NewBlobStore(dataDir string) (*BlobStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".pillziy", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "pillziy.db")

	// WAL mode keeps readers unblocked during the full-blob rewrites.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS blobs (
			key TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &BlobStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *BlobStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *BlobStore) Path() string {
	return s.path
}

// Load returns the blob stored under key.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	row := s.db.QueryRowContext(ctx, "SELECT data FROM blobs WHERE key = ?", key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("loading blob %s: %w", key, err)
	}
	return data, nil
}

// Save overwrites the blob stored under key.
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, key, data)
	if err != nil {
		return fmt.Errorf("saving blob %s: %w", key, err)
	}
	return nil
}

// Package file provides a file-backed blob store. Each key maps to one
// file in the data directory; writes go through a temp file and rename
// so a crash mid-write never corrupts the stored collection.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore persists blobs as files under a data directory.
type BlobStore struct {
	mu  sync.Mutex
	dir string
}

// NewBlobStore creates a file-backed blob store rooted at dataDir.
// If dataDir is empty, defaults to ~/.pillziy/data.
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

	return &BlobStore{dir: dataDir}, nil
}

// Path returns the file a key is stored in. Used by the watch command
// to observe external changes.
func (s *BlobStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the blob stored under key.
func (s *BlobStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading blob %s: %w", key, err)
	}
	return data, nil
}

// Save atomically replaces the blob stored under key.
func (s *BlobStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing blob %s: %w", key, err)
	}
	return nil
}

// Package memory provides in-memory storage adapters, used in tests
// and anywhere durability is not required.
package memory

import (
	"context"
	"sync"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is an in-memory implementation of driven.BlobStore.
type BlobStore struct {
	mu      sync.RWMutex
	blobs   map[string][]byte
	saveErr error
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		blobs: make(map[string][]byte),
	}
}

// FailSavesWith makes every subsequent Save return err.
// Pass nil to restore normal behavior. Test hook for exercising
// durable-write failure handling.
func (s *BlobStore) FailSavesWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Load returns a copy of the blob stored under key.
func (s *BlobStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of data under key.
func (s *BlobStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	s.blobs[key] = stored
	return nil
}

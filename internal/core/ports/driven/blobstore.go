package driven

import "context"

// BlobStore is a key-value slot for opaque serialized blobs.
// The repository stores the entire medication collection as one blob
// under a single well-known key and rewrites it in full on every
// mutation. Collections are small (tens of records); this is not
// designed for large data or concurrent writers.
type BlobStore interface {
	// Load returns the blob stored under key.
	// Returns domain.ErrNotFound when nothing has been stored yet.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the blob stored under key.
	Save(ctx context.Context, key string, data []byte) error
}

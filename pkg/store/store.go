// Package store defines the blob storage contract used to persist
// generated artifacts. Implementations live in internal/iostore.
package store

import (
	"context"
)

// Store is a minimal blob store keyed by slash-separated paths.
type Store interface {
	// Put writes data under path, replacing existing content.
	Put(ctx context.Context, path string, data []byte) error

	// Get reads the content stored under path.
	Get(ctx context.Context, path string) ([]byte, error)

	// Close releases resources held by the store.
	Close() error
}

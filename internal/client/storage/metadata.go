package storage

import "context"

// MetadataStorage defines interface for storing arbitrary client metadata
// (for example the lastFullSync timestamp)
type MetadataStorage interface {
	// SetMetadata stores value under key, overwriting any previous value
	SetMetadata(ctx context.Context, key, value string) error

	// GetMetadata retrieves value by key
	// Returns ErrMetadataNotFound if key was never written
	GetMetadata(ctx context.Context, key string) (string, error)
}

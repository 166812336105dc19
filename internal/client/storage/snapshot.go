package storage

import "context"

// SnapshotStorage defines interface for storing last-known-good collections.
// Each namespace holds a single blob that is overwritten wholesale.
type SnapshotStorage interface {
	// SaveSnapshot replaces the snapshot of namespace
	SaveSnapshot(ctx context.Context, namespace string, data []byte) error

	// GetSnapshot returns the snapshot of namespace
	// Returns ErrSnapshotNotFound if nothing was stored yet
	GetSnapshot(ctx context.Context, namespace string) ([]byte, error)
}

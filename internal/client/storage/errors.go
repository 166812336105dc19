package storage

import "errors"

// Common client storage errors
var (
	// ErrSnapshotNotFound indicates that no snapshot was stored for a namespace yet
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMetadataNotFound indicates that metadata key was never written
	ErrMetadataNotFound = errors.New("metadata not found")

	// ErrQueueItemNotFound indicates that sync queue item does not exist
	ErrQueueItemNotFound = errors.New("sync queue item not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrWrongPassphrase indicates that sealed storage could not be opened with the given passphrase
	ErrWrongPassphrase = errors.New("wrong storage passphrase")
)

package storage

import "context"

//go:generate moq -out store_mock.go . Store

// Stats describes the storage footprint in bytes
type Stats struct {
	Snapshots map[string]int64 // размер каждого snapshot в байтах
	Queue     int64            // суммарный размер элементов очереди
	Metadata  int64            // суммарный размер metadata
}

// Total returns the summed size of all namespaces
func (s Stats) Total() int64 {
	total := s.Queue + s.Metadata
	for _, size := range s.Snapshots {
		total += size
	}
	return total
}

// Store is the persistence port used by the offline manager.
// Implementations: boltdb.Storage, sqlite.Storage, memory.Storage.
type Store interface {
	SnapshotStorage
	MetadataStorage
	QueueStorage

	// Stats returns the storage footprint
	Stats(ctx context.Context) (Stats, error)

	// Clear wipes all snapshots, metadata and the sync queue
	Clear(ctx context.Context) error

	// Close releases underlying resources
	Close() error
}

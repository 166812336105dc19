package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clubsync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketSnapshots = []byte("snapshots")
	bucketQueue     = []byte("sync_queue")
	bucketQueueIDs  = []byte("sync_queue_ids")
	bucketMetadata  = []byte("metadata")

	allBuckets = [][]byte{bucketSnapshots, bucketQueue, bucketQueueIDs, bucketMetadata}
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db *bbolt.DB
}

var _ storage.Store = (*Storage)(nil)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB; таймаут защищает от зависания на чужом file lock
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// Stats returns the storage footprint
func (s *Storage) Stats(ctx context.Context) (storage.Stats, error) {
	if s.db == nil {
		return storage.Stats{}, storage.ErrStorageClosed
	}

	stats := storage.Stats{Snapshots: make(map[string]int64)}
	err := s.db.View(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketSnapshots); b != nil {
			if err := b.ForEach(func(k, v []byte) error {
				stats.Snapshots[string(k)] = int64(len(v))
				return nil
			}); err != nil {
				return err
			}
		}
		if b := tx.Bucket(bucketQueue); b != nil {
			if err := b.ForEach(func(k, v []byte) error {
				stats.Queue += int64(len(v))
				return nil
			}); err != nil {
				return err
			}
		}
		if b := tx.Bucket(bucketMetadata); b != nil {
			return b.ForEach(func(k, v []byte) error {
				stats.Metadata += int64(len(k) + len(v))
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return storage.Stats{}, fmt.Errorf("failed to collect stats: %w", err)
	}
	return stats, nil
}

// Clear removes all snapshots, metadata and the sync queue
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			// Удаляем bucket полностью и создаем заново пустой
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to delete %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}
	return nil
}

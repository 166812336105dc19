package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clubsync/internal/client/storage"
)

// SaveSnapshot replaces the snapshot of namespace
func (s *Storage) SaveSnapshot(ctx context.Context, namespace string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}
		return bucket.Put([]byte(namespace), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", namespace, err)
	}
	return nil
}

// GetSnapshot returns the snapshot of namespace
func (s *Storage) GetSnapshot(ctx context.Context, namespace string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}
		value := bucket.Get([]byte(namespace))
		if value == nil {
			return storage.ErrSnapshotNotFound
		}
		// значение валидно только внутри транзакции
		data = make([]byte, len(value))
		copy(data, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

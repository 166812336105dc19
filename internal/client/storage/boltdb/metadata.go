package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clubsync/internal/client/storage"
)

// SetMetadata stores value under key
func (s *Storage) SetMetadata(ctx context.Context, key, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save metadata %q: %w", key, err)
		}
		return nil
	})
}

// GetMetadata retrieves value by key
// Returns ErrMetadataNotFound if key was never written
func (s *Storage) GetMetadata(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return storage.ErrMetadataNotFound
		}
		value = string(raw)
		return nil
	})
	if err != nil {
		return "", err
	}
	return value, nil
}

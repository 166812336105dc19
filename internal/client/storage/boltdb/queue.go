package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// seqKey кодирует порядковый номер big-endian, чтобы курсор BoltDB
// обходил очередь в порядке добавления
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// AppendQueueItem appends item to the tail of the queue and assigns item.Seq
func (s *Storage) AppendQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		ids := tx.Bucket(bucketQueueIDs)
		if queue == nil || ids == nil {
			return fmt.Errorf("sync queue bucket not found")
		}

		seq, err := queue.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}
		item.Seq = seq

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}

		key := seqKey(seq)
		if err := queue.Put(key, data); err != nil {
			return fmt.Errorf("failed to save queue item: %w", err)
		}
		return ids.Put([]byte(item.ID), key)
	})
	if err != nil {
		return fmt.Errorf("append transaction failed: %w", err)
	}
	return nil
}

// ListQueueItems returns all queued items in FIFO order
func (s *Storage) ListQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var items []*models.SyncQueueItem
	err := s.db.View(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		if queue == nil {
			return nil
		}
		return queue.ForEach(func(k, v []byte) error {
			var item models.SyncQueueItem
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("failed to unmarshal queue item: %w", err)
			}
			items = append(items, &item)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list queue items: %w", err)
	}
	return items, nil
}

// UpdateQueueItem rewrites an existing item, keeping its position
func (s *Storage) UpdateQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		ids := tx.Bucket(bucketQueueIDs)
		if queue == nil || ids == nil {
			return fmt.Errorf("sync queue bucket not found")
		}

		key := ids.Get([]byte(item.ID))
		if key == nil {
			return storage.ErrQueueItemNotFound
		}
		item.Seq = binary.BigEndian.Uint64(key)

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal queue item: %w", err)
		}
		if err := queue.Put(key, data); err != nil {
			return fmt.Errorf("failed to update queue item: %w", err)
		}
		return nil
	})
}

// RemoveQueueItem deletes item by ID
func (s *Storage) RemoveQueueItem(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		ids := tx.Bucket(bucketQueueIDs)
		if queue == nil || ids == nil {
			return fmt.Errorf("sync queue bucket not found")
		}

		key := ids.Get([]byte(id))
		if key == nil {
			return nil
		}
		// копируем ключ: после Delete память bbolt может быть переиспользована
		seq := append([]byte(nil), key...)
		if err := ids.Delete([]byte(id)); err != nil {
			return err
		}
		return queue.Delete(seq)
	})
	if err != nil {
		return fmt.Errorf("failed to remove queue item: %w", err)
	}
	return nil
}

// QueueLength returns the number of queued items
func (s *Storage) QueueLength(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var n int
	err := s.db.View(func(tx *bbolt.Tx) error {
		queue := tx.Bucket(bucketQueue)
		if queue == nil {
			return nil
		}
		n = queue.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count queue items: %w", err)
	}
	return n, nil
}

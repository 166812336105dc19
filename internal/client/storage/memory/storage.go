package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// Storage is an in-process storage.Store. Nothing survives Close; it backs
// the "memory" driver and tests.
type Storage struct {
	snapshots map[string][]byte
	metadata  map[string]string
	queue     []*models.SyncQueueItem
	seq       uint64
	mu        sync.RWMutex
	closed    bool
}

var _ storage.Store = (*Storage)(nil)

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{
		snapshots: make(map[string][]byte),
		metadata:  make(map[string]string),
	}
}

// Close marks the storage closed
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// SaveSnapshot replaces the snapshot of namespace
func (s *Storage) SaveSnapshot(ctx context.Context, namespace string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.snapshots[namespace] = slices.Clone(data)
	return nil
}

// GetSnapshot returns the snapshot of namespace
func (s *Storage) GetSnapshot(ctx context.Context, namespace string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	data, ok := s.snapshots[namespace]
	if !ok {
		return nil, storage.ErrSnapshotNotFound
	}
	return slices.Clone(data), nil
}

// SetMetadata stores value under key
func (s *Storage) SetMetadata(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.metadata[key] = value
	return nil
}

// GetMetadata retrieves value by key
func (s *Storage) GetMetadata(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", storage.ErrStorageClosed
	}
	value, ok := s.metadata[key]
	if !ok {
		return "", storage.ErrMetadataNotFound
	}
	return value, nil
}

// AppendQueueItem appends item to the tail of the queue
func (s *Storage) AppendQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.seq++
	item.Seq = s.seq
	s.queue = append(s.queue, item.Clone())
	return nil
}

// ListQueueItems returns copies of all queued items in FIFO order
func (s *Storage) ListQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	items := make([]*models.SyncQueueItem, 0, len(s.queue))
	for _, item := range s.queue {
		items = append(items, item.Clone())
	}
	return items, nil
}

// UpdateQueueItem rewrites an existing item
func (s *Storage) UpdateQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	for i, existing := range s.queue {
		if existing.ID == item.ID {
			updated := item.Clone()
			updated.Seq = existing.Seq
			s.queue[i] = updated
			return nil
		}
	}
	return storage.ErrQueueItemNotFound
}

// RemoveQueueItem deletes item by ID
func (s *Storage) RemoveQueueItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.queue = slices.DeleteFunc(s.queue, func(item *models.SyncQueueItem) bool {
		return item.ID == id
	})
	return nil
}

// QueueLength returns the number of queued items
func (s *Storage) QueueLength(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, storage.ErrStorageClosed
	}
	return len(s.queue), nil
}

// Stats returns the approximate footprint
func (s *Storage) Stats(ctx context.Context) (storage.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return storage.Stats{}, storage.ErrStorageClosed
	}
	stats := storage.Stats{Snapshots: make(map[string]int64, len(s.snapshots))}
	for ns, data := range s.snapshots {
		stats.Snapshots[ns] = int64(len(data))
	}
	for _, item := range s.queue {
		stats.Queue += int64(len(item.Data))
	}
	for k, v := range s.metadata {
		stats.Metadata += int64(len(k) + len(v))
	}
	return stats, nil
}

// Clear wipes everything
func (s *Storage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.snapshots = make(map[string][]byte)
	s.metadata = make(map[string]string)
	s.queue = nil
	return nil
}

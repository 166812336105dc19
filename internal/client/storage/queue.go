package storage

import (
	"context"

	"github.com/iudanet/clubsync/internal/models"
)

// QueueStorage defines interface for the durable FIFO sync queue
type QueueStorage interface {
	// AppendQueueItem appends item to the tail of the queue and assigns item.Seq
	AppendQueueItem(ctx context.Context, item *models.SyncQueueItem) error

	// ListQueueItems returns all queued items in enqueue order
	ListQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error)

	// UpdateQueueItem rewrites attempts/last error/quarantine flag of an existing item
	// Returns ErrQueueItemNotFound if item doesn't exist
	UpdateQueueItem(ctx context.Context, item *models.SyncQueueItem) error

	// RemoveQueueItem deletes item by ID; removing a missing item is not an error
	RemoveQueueItem(ctx context.Context, id string) error

	// QueueLength returns the number of queued items
	QueueLength(ctx context.Context) (int, error)
}

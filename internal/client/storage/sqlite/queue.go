package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// AppendQueueItem appends item to the tail of the queue and assigns item.Seq
func (s *Storage) AppendQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO sync_queue (
			id, type, resource, data, attempts, last_error, quarantined, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		item.ID,
		string(item.Type),
		item.Resource,
		[]byte(item.Data),
		item.Attempts,
		item.LastError,
		boolToInt(item.Quarantined),
		item.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to append queue item: %w", err)
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get queue sequence: %w", err)
	}
	item.Seq = uint64(seq)
	return nil
}

// ListQueueItems returns all queued items in FIFO order
func (s *Storage) ListQueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	query := `
		SELECT seq, id, type, resource, data, attempts, last_error, quarantined, created_at
		FROM sync_queue
		ORDER BY seq ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query queue items: %w", err)
	}
	defer rows.Close()

	var items []*models.SyncQueueItem
	for rows.Next() {
		var (
			item        models.SyncQueueItem
			typ         string
			data        []byte
			quarantined int
			createdAt   int64
		)
		err := rows.Scan(
			&item.Seq,
			&item.ID,
			&typ,
			&item.Resource,
			&data,
			&item.Attempts,
			&item.LastError,
			&quarantined,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan queue item: %w", err)
		}

		item.Type = models.MutationType(typ)
		item.Data = data
		item.Quarantined = quarantined != 0
		item.CreatedAt = time.UnixMilli(createdAt).UTC()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

// UpdateQueueItem rewrites the mutable fields of an existing item
func (s *Storage) UpdateQueueItem(ctx context.Context, item *models.SyncQueueItem) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		UPDATE sync_queue
		SET type = ?, resource = ?, data = ?, attempts = ?, last_error = ?, quarantined = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		string(item.Type),
		item.Resource,
		[]byte(item.Data),
		item.Attempts,
		item.LastError,
		boolToInt(item.Quarantined),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update queue item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrQueueItemNotFound
	}
	return nil
}

// RemoveQueueItem deletes item by ID
func (s *Storage) RemoveQueueItem(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM sync_queue WHERE id = ?`, id); err != nil {
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
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sync_queue`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count queue items: %w", err)
	}
	return n, nil
}

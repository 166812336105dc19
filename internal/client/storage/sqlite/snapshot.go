package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/clubsync/internal/client/storage"
)

// SaveSnapshot replaces the snapshot of namespace
func (s *Storage) SaveSnapshot(ctx context.Context, namespace string, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO snapshots (namespace, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`
	if data == nil {
		data = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, query, namespace, data, time.Now().Unix()); err != nil {
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
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE namespace = ?`, namespace).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get %s snapshot: %w", namespace, err)
	}
	return data, nil
}

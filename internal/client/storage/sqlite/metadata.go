package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/clubsync/internal/client/storage"
)

// SetMetadata stores value under key
func (s *Storage) SetMetadata(ctx context.Context, key, value string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	query := `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save metadata %q: %w", key, err)
	}
	return nil
}

// GetMetadata retrieves value by key
func (s *Storage) GetMetadata(ctx context.Context, key string) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrMetadataNotFound
		}
		return "", fmt.Errorf("failed to get metadata %q: %w", key, err)
	}
	return value, nil
}

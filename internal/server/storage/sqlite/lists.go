package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/storage"
)

const listColumns = `id, name, description, club_ids, created_at, updated_at`

func scanList(row rowScanner) (models.CustomList, error) {
	var (
		list                 models.CustomList
		clubIDs              string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&list.ID, &list.Name, &list.Description, &clubIDs, &createdAt, &updatedAt); err != nil {
		return models.CustomList{}, err
	}
	// club_ids хранится как JSON массив
	if err := json.Unmarshal([]byte(clubIDs), &list.ClubIDs); err != nil {
		return models.CustomList{}, fmt.Errorf("failed to decode club ids: %w", err)
	}
	if list.ClubIDs == nil {
		list.ClubIDs = []string{}
	}
	list.CreatedAt = fromMillis(createdAt)
	list.UpdatedAt = fromMillis(updatedAt)
	return list, nil
}

func encodeClubIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode club ids: %w", err)
	}
	return string(data), nil
}

// ListLists returns all custom lists ordered by creation time
func (s *Storage) ListLists(ctx context.Context) ([]models.CustomList, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+listColumns+` FROM custom_lists ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := []models.CustomList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return lists, nil
}

// GetList retrieves a single custom list by ID
// Returns ErrNotFound if list doesn't exist
func (s *Storage) GetList(ctx context.Context, id string) (models.CustomList, error) {
	list, err := scanList(s.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM custom_lists WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CustomList{}, storage.ErrNotFound
		}
		return models.CustomList{}, fmt.Errorf("failed to get list: %w", err)
	}
	return list, nil
}

// CreateList stores a new list; a repeated clientID returns the existing list
func (s *Storage) CreateList(ctx context.Context, clientID string, list models.CustomList) (models.CustomList, error) {
	if clientID != "" {
		row := s.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM custom_lists WHERE client_id = ?`, clientID)
		existing, err := scanList(row)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.CustomList{}, fmt.Errorf("failed to check client id: %w", err)
		}
	}

	clubIDs, err := encodeClubIDs(list.ClubIDs)
	if err != nil {
		return models.CustomList{}, err
	}

	now := s.now()
	list.ID = uuid.NewString()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.ClubIDs == nil {
		list.ClubIDs = []string{}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO custom_lists (id, client_id, name, description, club_ids, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		list.ID,
		nullable(clientID),
		list.Name,
		list.Description,
		clubIDs,
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return models.CustomList{}, fmt.Errorf("failed to insert list: %w", err)
	}
	return list, nil
}

// UpdateList replaces name, description and club ids of a list
func (s *Storage) UpdateList(ctx context.Context, list models.CustomList) (models.CustomList, error) {
	clubIDs, err := encodeClubIDs(list.ClubIDs)
	if err != nil {
		return models.CustomList{}, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE custom_lists
		SET name = ?, description = ?, club_ids = ?, updated_at = ?
		WHERE id = ?
	`,
		list.Name,
		list.Description,
		clubIDs,
		s.now().UnixMilli(),
		list.ID,
	)
	if err != nil {
		return models.CustomList{}, fmt.Errorf("failed to update list: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return models.CustomList{}, err
	}
	return s.GetList(ctx, list.ID)
}

// DeleteList removes a custom list
func (s *Storage) DeleteList(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM custom_lists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return requireAffected(result)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/storage"
)

const clubColumns = `id, name, description, category, city, owner_id, member_count, created_at, updated_at`

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClub(row rowScanner) (models.Club, error) {
	var (
		club                 models.Club
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&club.ID,
		&club.Name,
		&club.Description,
		&club.Category,
		&club.City,
		&club.OwnerID,
		&club.MemberCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Club{}, err
	}
	club.CreatedAt = fromMillis(createdAt)
	club.UpdatedAt = fromMillis(updatedAt)
	return club, nil
}

// ListClubs returns all clubs ordered by creation time
func (s *Storage) ListClubs(ctx context.Context) ([]models.Club, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+clubColumns+` FROM clubs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}
	defer rows.Close()

	clubs := []models.Club{}
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return clubs, nil
}

// GetClub retrieves a single club by ID
// Returns ErrNotFound if club doesn't exist
func (s *Storage) GetClub(ctx context.Context, id string) (models.Club, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE id = ?`, id)
	club, err := scanClub(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Club{}, storage.ErrNotFound
		}
		return models.Club{}, fmt.Errorf("failed to get club: %w", err)
	}
	return club, nil
}

// CreateClub stores a new club; a repeated clientID returns the existing club
func (s *Storage) CreateClub(ctx context.Context, clientID string, club models.Club) (models.Club, error) {
	if clientID != "" {
		row := s.db.QueryRowContext(ctx, `SELECT `+clubColumns+` FROM clubs WHERE client_id = ?`, clientID)
		existing, err := scanClub(row)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return models.Club{}, fmt.Errorf("failed to check client id: %w", err)
		}
	}

	now := s.now()
	club.ID = uuid.NewString()
	club.CreatedAt = now
	club.UpdatedAt = now

	query := `
		INSERT INTO clubs (
			id, client_id, name, description, category, city,
			owner_id, member_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		club.ID,
		nullable(clientID),
		club.Name,
		club.Description,
		club.Category,
		club.City,
		club.OwnerID,
		club.MemberCount,
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return models.Club{}, fmt.Errorf("failed to insert club: %w", err)
	}
	return club, nil
}

// UpdateClub replaces the editable fields of a club
func (s *Storage) UpdateClub(ctx context.Context, club models.Club) (models.Club, error) {
	query := `
		UPDATE clubs
		SET name = ?, description = ?, category = ?, city = ?, owner_id = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		club.Name,
		club.Description,
		club.Category,
		club.City,
		club.OwnerID,
		s.now().UnixMilli(),
		club.ID,
	)
	if err != nil {
		return models.Club{}, fmt.Errorf("failed to update club: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return models.Club{}, err
	}
	return s.GetClub(ctx, club.ID)
}

// DeleteClub removes a club; its favorite mark goes with it
func (s *Storage) DeleteClub(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM clubs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	return requireAffected(result)
}

// requireAffected возвращает ErrNotFound если запрос не затронул ни одной строки
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

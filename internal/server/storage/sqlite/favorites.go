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

// ListFavorites returns all favorite marks ordered by creation time
func (s *Storage) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, club_id, created_at FROM favorites ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return favorites, nil
}

// AddFavorite marks a club as favorite; repeated calls return the same mark
func (s *Storage) AddFavorite(ctx context.Context, clubID string) (models.Favorite, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, club_id, created_at FROM favorites WHERE club_id = ?`, clubID)
	existing, err := scanFavorite(row)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Favorite{}, fmt.Errorf("failed to check favorite: %w", err)
	}

	if _, err := s.GetClub(ctx, clubID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Favorite{}, storage.ErrClubNotFound
		}
		return models.Favorite{}, err
	}

	fav := models.Favorite{
		ID:        uuid.NewString(),
		ClubID:    clubID,
		CreatedAt: s.now(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO favorites (id, club_id, created_at) VALUES (?, ?, ?)`,
		fav.ID, fav.ClubID, fav.CreatedAt.UnixMilli())
	if err != nil {
		return models.Favorite{}, fmt.Errorf("failed to insert favorite: %w", err)
	}
	return fav, nil
}

// RemoveFavorite removes the favorite mark of a club
func (s *Storage) RemoveFavorite(ctx context.Context, clubID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE club_id = ?`, clubID)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return requireAffected(result)
}

func scanFavorite(row rowScanner) (models.Favorite, error) {
	var (
		fav       models.Favorite
		createdAt int64
	)
	if err := row.Scan(&fav.ID, &fav.ClubID, &createdAt); err != nil {
		return models.Favorite{}, err
	}
	fav.CreatedAt = fromMillis(createdAt)
	return fav, nil
}

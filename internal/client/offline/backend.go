package offline

import (
	"context"

	"github.com/iudanet/clubsync/internal/models"
)

//go:generate moq -out backend_mock.go . Backend

// Backend is the set of server operations the sync pass replays queued
// mutations against and refreshes snapshots from.
//
// Implementations should wrap transport failures (no route, refused
// connection, timeouts) with ErrBackendUnreachable so a pass can stop early
// instead of burning attempts on every remaining item.
type Backend interface {
	CreateClub(ctx context.Context, club models.Club) (models.Club, error)
	UpdateClub(ctx context.Context, club models.Club) (models.Club, error)
	DeleteClub(ctx context.Context, id string) error

	AddFavorite(ctx context.Context, clubID string) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, clubID string) error

	CreateList(ctx context.Context, list models.CustomList) (models.CustomList, error)
	UpdateList(ctx context.Context, list models.CustomList) (models.CustomList, error)
	DeleteList(ctx context.Context, id string) error

	ListClubs(ctx context.Context) ([]models.Club, error)
	ListFavorites(ctx context.Context) ([]models.Favorite, error)
	ListCustomLists(ctx context.Context) ([]models.CustomList, error)
}

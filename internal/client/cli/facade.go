package cli

import (
	"context"

	"github.com/iudanet/clubsync/internal/client/app"
	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/models"
)

//go:generate moq -out facade_mock.go . Facade

// Facade is the part of the client application the commands drive.
type Facade interface {
	Start(ctx context.Context) error
	Close() error

	CheckConnection(ctx context.Context) bool
	SetOnline(online bool)
	Status(ctx context.Context) app.Status
	SyncData(ctx context.Context) (*offline.SyncResult, error)
	ClearCache(ctx context.Context) error

	LoadClubs(ctx context.Context) ([]models.Club, error)
	CreateClubOptimistic(ctx context.Context, draft models.ClubDraft) (models.Club, error)
	UpdateClubOptimistic(ctx context.Context, id string, changes map[string]any) (models.Club, error)
	DeleteClubOptimistic(ctx context.Context, id string) (models.Club, error)

	LoadFavorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, clubID string) error
	RemoveFavorite(ctx context.Context, clubID string) error

	LoadCustomLists(ctx context.Context) ([]models.CustomList, error)
	CreateListOptimistic(ctx context.Context, draft models.ListDraft) (models.CustomList, error)
	UpdateListOptimistic(ctx context.Context, id string, changes map[string]any) (models.CustomList, error)
	DeleteListOptimistic(ctx context.Context, id string) (models.CustomList, error)

	QueueItems(ctx context.Context) ([]*models.SyncQueueItem, error)
	QuarantinedItems(ctx context.Context) ([]*models.SyncQueueItem, error)
	RetryQuarantined(ctx context.Context) (int, error)
}

var _ Facade = (*app.App)(nil)

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/cache"
	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
)

const snapshotTimeout = 5 * time.Second

// LoadClubs returns the club collection. The cached view is used when
// present; otherwise the clubs come from the backend while online and from
// the stored snapshot while offline or when the backend is unreachable.
// Unconfirmed optimistic changes stay visible.
func (a *App) LoadClubs(ctx context.Context) ([]models.Club, error) {
	clubs, err := loadResource(ctx, a, models.ResourceClubs,
		a.backend.ListClubs, a.offline.GetStoredClubs, a.offline.StoreClubs)
	if err != nil {
		return nil, err
	}
	if a.clubs.Pending() == 0 {
		a.clubs.Items().Reset(clubs)
	}
	a.clubsLoaded.Store(true)
	return nonNil(a.clubs.Items().Items()), nil
}

// LoadCustomLists returns the custom lists, see LoadClubs.
func (a *App) LoadCustomLists(ctx context.Context) ([]models.CustomList, error) {
	lists, err := loadResource(ctx, a, models.ResourceCustomLists,
		a.backend.ListCustomLists, a.offline.GetStoredCustomLists, a.offline.StoreCustomLists)
	if err != nil {
		return nil, err
	}
	if a.lists.Pending() == 0 {
		a.lists.Items().Reset(lists)
	}
	a.listsLoaded.Store(true)
	return nonNil(a.lists.Items().Items()), nil
}

// LoadFavorites returns the favorites, see LoadClubs.
func (a *App) LoadFavorites(ctx context.Context) ([]models.Favorite, error) {
	favorites, err := loadResource(ctx, a, models.ResourceFavorites,
		a.backend.ListFavorites, a.offline.GetStoredFavorites, a.offline.StoreFavorites)
	if err != nil {
		return nil, err
	}
	return nonNil(favorites), nil
}

// loadResource reads the collection view of resource through the cache.
// A backend result is also written to the snapshot.
func loadResource[T any](
	ctx context.Context,
	a *App,
	resource string,
	fetch func(context.Context) ([]T, error),
	stored func(context.Context) []T,
	save func(context.Context, []T) error,
) ([]T, error) {
	value, err := a.cache.GetOrLoad(ctx, optimistic.ListKey(resource), func(ctx context.Context) (any, error) {
		if a.offline.IsOnline() {
			items, err := fetch(ctx)
			if err == nil {
				if err := save(ctx, nonNil(items)); err != nil {
					a.log.Warn("failed to store snapshot", zap.String("resource", resource), zap.Error(err))
				}
				return nonNil(items), nil
			}
			if !errors.Is(err, offline.ErrBackendUnreachable) {
				return nil, fmt.Errorf("failed to load %s: %w", resource, err)
			}
			a.log.Info("backend unreachable, using stored snapshot", zap.String("resource", resource))
			a.offline.SetOnline(false)
		}
		return stored(ctx), nil
	}, cache.WithTTL(a.cfg.Cache.DefaultTTL), cache.WithTags(resource, optimistic.ListTag(resource)))
	if err != nil {
		return nil, err
	}

	items, ok := value.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value %T for %s", value, resource)
	}
	return items, nil
}

// SyncData replays the offline queue and refreshes the snapshots. After a
// refresh the cached views and read-models are rebuilt from the snapshots.
func (a *App) SyncData(ctx context.Context) (*offline.SyncResult, error) {
	result, err := a.offline.SyncAllData(ctx)
	if result != nil && result.Refreshed {
		a.adoptSnapshots(ctx)
	}
	return result, err
}

// adoptSnapshots replaces the cached views with the stored snapshots.
func (a *App) adoptSnapshots(ctx context.Context) {
	ttl := cache.WithTTL(a.cfg.Cache.DefaultTTL)

	clubs := a.offline.GetStoredClubs(ctx)
	a.cache.Set(optimistic.ListKey(models.ResourceClubs), clubs, ttl,
		cache.WithTags(models.ResourceClubs, optimistic.ListTag(models.ResourceClubs)))
	if a.clubs.Pending() == 0 {
		a.clubs.Items().Reset(clubs)
		a.clubsLoaded.Store(true)
	}

	lists := a.offline.GetStoredCustomLists(ctx)
	a.cache.Set(optimistic.ListKey(models.ResourceCustomLists), lists, ttl,
		cache.WithTags(models.ResourceCustomLists, optimistic.ListTag(models.ResourceCustomLists)))
	if a.lists.Pending() == 0 {
		a.lists.Items().Reset(lists)
		a.listsLoaded.Store(true)
	}

	a.cache.Set(optimistic.ListKey(models.ResourceFavorites), a.offline.GetStoredFavorites(ctx), ttl,
		cache.WithTags(models.ResourceFavorites, optimistic.ListTag(models.ResourceFavorites)))
}

// ClearCache removes the snapshots, the sync queue, the metadata and every
// cached view.
func (a *App) ClearCache(ctx context.Context) error {
	return a.Reset(ctx)
}

// GetStoredClubs returns the club snapshot.
func (a *App) GetStoredClubs(ctx context.Context) []models.Club {
	return a.offline.GetStoredClubs(ctx)
}

// GetStoredFavorites returns the favorites snapshot.
func (a *App) GetStoredFavorites(ctx context.Context) []models.Favorite {
	return a.offline.GetStoredFavorites(ctx)
}

// GetStoredCustomLists returns the custom lists snapshot.
func (a *App) GetStoredCustomLists(ctx context.Context) []models.CustomList {
	return a.offline.GetStoredCustomLists(ctx)
}

// StoreClubs overwrites the club snapshot.
func (a *App) StoreClubs(ctx context.Context, clubs []models.Club) error {
	return a.offline.StoreClubs(ctx, clubs)
}

// StoreFavorites overwrites the favorites snapshot.
func (a *App) StoreFavorites(ctx context.Context, favorites []models.Favorite) error {
	return a.offline.StoreFavorites(ctx, favorites)
}

// QueueFavoriteAction queues a favorite change for the next sync.
func (a *App) QueueFavoriteAction(ctx context.Context, action models.FavoriteAction, clubID string) error {
	return a.offline.QueueFavoriteAction(ctx, action, clubID)
}

// QueueListAction queues a custom list mutation for the next sync.
func (a *App) QueueListAction(ctx context.Context, typ models.MutationType, list models.CustomList) error {
	return a.offline.QueueListAction(ctx, typ, list)
}

// QueueItems returns the pending mutations in replay order.
func (a *App) QueueItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	return a.offline.QueueItems(ctx)
}

// QuarantinedItems returns the mutations excluded from replay.
func (a *App) QuarantinedItems(ctx context.Context) ([]*models.SyncQueueItem, error) {
	return a.offline.QuarantinedItems(ctx)
}

// RetryQuarantined re-arms quarantined mutations for the next sync.
func (a *App) RetryQuarantined(ctx context.Context) (int, error) {
	return a.offline.RetryQuarantined(ctx)
}

// IsDataStale reports whether the last full sync is older than maxAge.
// A zero maxAge uses the configured offline.max_age.
func (a *App) IsDataStale(ctx context.Context, maxAge time.Duration) bool {
	return a.offline.IsDataStale(ctx, maxAge)
}

// GetCacheSize estimates the stored footprint.
func (a *App) GetCacheSize(ctx context.Context) offline.CacheSize {
	return a.offline.GetCacheSize(ctx)
}

// persistSnapshot writes the read-model of resource to its snapshot. It is
// a no-op until the resource has been loaded, so a partial read-model never
// overwrites a complete snapshot.
func (a *App) persistSnapshot(resource string) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	var err error
	switch resource {
	case models.ResourceClubs:
		if !a.clubsLoaded.Load() {
			return
		}
		err = a.offline.StoreClubs(ctx, nonNil(a.clubs.Items().Items()))
	case models.ResourceCustomLists:
		if !a.listsLoaded.Load() {
			return
		}
		err = a.offline.StoreCustomLists(ctx, nonNil(a.lists.Items().Items()))
	default:
		return
	}
	if err != nil {
		a.log.Warn("failed to persist read-model", zap.String("resource", resource), zap.Error(err))
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

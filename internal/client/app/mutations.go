package app

import (
	"context"
	"errors"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
)

// ClubMutations returns the club coordinator for callers that drive
// Begin/ApplyOptimisticUpdate themselves.
func (a *App) ClubMutations() *optimistic.Coordinator[models.Club, models.ClubDraft] {
	return a.clubs
}

// CreateClubOptimistic shows the new club at the head of the collection at
// once under a temporary id and confirms it with the backend. Offline the
// create is queued and the club keeps its temporary id until the next sync.
func (a *App) CreateClubOptimistic(ctx context.Context, draft models.ClubDraft) (models.Club, error) {
	a.ensureClubs(ctx)
	u, err := a.clubs.BeginCreate(ctx, draft)
	if err != nil {
		return models.Club{}, err
	}
	return a.ApplyOptimisticUpdate(ctx, u, func(ctx context.Context) (models.Club, error) {
		return a.backend.CreateClub(ctx, u.Applied)
	})
}

// UpdateClubOptimistic merges changes into club id; see CreateClubOptimistic.
func (a *App) UpdateClubOptimistic(ctx context.Context, id string, changes map[string]any) (models.Club, error) {
	a.ensureClubs(ctx)
	u, err := a.clubs.BeginUpdate(ctx, id, changes)
	if err != nil {
		return models.Club{}, err
	}
	return a.ApplyOptimisticUpdate(ctx, u, func(ctx context.Context) (models.Club, error) {
		return a.backend.UpdateClub(ctx, u.Applied)
	})
}

// DeleteClubOptimistic removes club id; see CreateClubOptimistic. It returns
// the removed club.
func (a *App) DeleteClubOptimistic(ctx context.Context, id string) (models.Club, error) {
	a.ensureClubs(ctx)
	u, err := a.clubs.BeginDelete(ctx, id)
	if err != nil {
		return models.Club{}, err
	}
	return a.ApplyOptimisticUpdate(ctx, u, func(ctx context.Context) (models.Club, error) {
		return models.Club{}, a.backend.DeleteClub(ctx, id)
	})
}

// ApplyOptimisticUpdate settles a club update obtained from ClubMutations.
// Online, op confirms it; a rejection rolls it back. Offline, or when op
// finds the backend unreachable, the mutation is queued instead. Updates and
// deletes of a club that still carries a temporary id are always queued so
// they replay after its create.
func (a *App) ApplyOptimisticUpdate(ctx context.Context, u *optimistic.Update[models.Club], op optimistic.ServerOp[models.Club]) (models.Club, error) {
	return settle(ctx, a, models.ResourceClubs, a.clubs, a.offline.QueueClubAction, nil, u, op)
}

// CreateListOptimistic creates a custom list; see CreateClubOptimistic.
func (a *App) CreateListOptimistic(ctx context.Context, draft models.ListDraft) (models.CustomList, error) {
	a.ensureLists(ctx)
	u, err := a.lists.BeginCreate(ctx, draft)
	if err != nil {
		return models.CustomList{}, err
	}
	return settle(ctx, a, models.ResourceCustomLists, a.lists, a.offline.QueueListAction, listRefs, u, func(ctx context.Context) (models.CustomList, error) {
		return a.backend.CreateList(ctx, u.Applied)
	})
}

// UpdateListOptimistic merges changes into list id; see CreateClubOptimistic.
func (a *App) UpdateListOptimistic(ctx context.Context, id string, changes map[string]any) (models.CustomList, error) {
	a.ensureLists(ctx)
	u, err := a.lists.BeginUpdate(ctx, id, changes)
	if err != nil {
		return models.CustomList{}, err
	}
	return settle(ctx, a, models.ResourceCustomLists, a.lists, a.offline.QueueListAction, listRefs, u, func(ctx context.Context) (models.CustomList, error) {
		return a.backend.UpdateList(ctx, u.Applied)
	})
}

// DeleteListOptimistic removes list id; see CreateClubOptimistic.
func (a *App) DeleteListOptimistic(ctx context.Context, id string) (models.CustomList, error) {
	a.ensureLists(ctx)
	u, err := a.lists.BeginDelete(ctx, id)
	if err != nil {
		return models.CustomList{}, err
	}
	return settle(ctx, a, models.ResourceCustomLists, a.lists, a.offline.QueueListAction, listRefs, u, func(ctx context.Context) (models.CustomList, error) {
		return models.CustomList{}, a.backend.DeleteList(ctx, id)
	})
}

// AddFavorite marks clubID as favorite. Offline the action is queued and
// the stored favorites are updated locally.
func (a *App) AddFavorite(ctx context.Context, clubID string) error {
	return a.favoriteAction(ctx, models.FavoriteAdd, clubID)
}

// RemoveFavorite unmarks clubID; see AddFavorite.
func (a *App) RemoveFavorite(ctx context.Context, clubID string) error {
	return a.favoriteAction(ctx, models.FavoriteRemove, clubID)
}

func (a *App) favoriteAction(ctx context.Context, action models.FavoriteAction, clubID string) error {
	// клуб с временным id сервер еще не знает, действие ждет его create в очереди
	if a.offline.IsOnline() && !optimistic.IsTemporaryID(clubID) {
		var err error
		switch action {
		case models.FavoriteAdd:
			_, err = a.backend.AddFavorite(ctx, clubID)
		case models.FavoriteRemove:
			err = a.backend.RemoveFavorite(ctx, clubID)
		}
		if err == nil {
			a.cache.InvalidateByTags(optimistic.ListTag(models.ResourceFavorites))
			return nil
		}
		if !errors.Is(err, offline.ErrBackendUnreachable) {
			return err
		}
		a.offline.SetOnline(false)
	}

	if err := a.offline.QueueFavoriteAction(ctx, action, clubID); err != nil {
		return err
	}

	favorites := slices.DeleteFunc(a.offline.GetStoredFavorites(ctx), func(f models.Favorite) bool {
		return f.ClubID == clubID
	})
	if action == models.FavoriteAdd {
		favorites = append(favorites, models.Favorite{ClubID: clubID, CreatedAt: a.now().UTC()})
	}
	if err := a.offline.StoreFavorites(ctx, favorites); err != nil {
		a.log.Warn("failed to update stored favorites", zap.Error(err))
	}
	a.cache.InvalidateByTags(optimistic.ListTag(models.ResourceFavorites))
	return nil
}

// listRefs returns the club ids a custom list points to.
func listRefs(list models.CustomList) []string {
	return list.ClubIDs
}

// waitsForQueue reports whether u touches an entity whose create is still in
// the sync queue. Such a mutation must replay after that create, where the
// temporary id is remapped, instead of reaching the backend directly.
func waitsForQueue[T optimistic.Entity](u *optimistic.Update[T], refs func(T) []string) bool {
	if u.Type != models.MutationCreate && optimistic.IsTemporaryID(u.ID) {
		return true
	}
	if refs == nil {
		return false
	}
	return slices.ContainsFunc(refs(u.Applied), optimistic.IsTemporaryID)
}

// settle finishes u either through the backend or through the sync queue.
// refs lists the ids of other entities u.Applied points to and may be nil.
func settle[T optimistic.Entity, D any](
	ctx context.Context,
	a *App,
	resource string,
	coord *optimistic.Coordinator[T, D],
	queue func(context.Context, models.MutationType, T) error,
	refs func(T) []string,
	u *optimistic.Update[T],
	op optimistic.ServerOp[T],
) (T, error) {
	if !a.offline.IsOnline() {
		return enqueue(ctx, a, resource, coord, queue, u)
	}
	if waitsForQueue(u, refs) {
		a.log.Debug("mutation depends on a queued create, queueing",
			zap.String("type", string(u.Type)),
			zap.String("id", u.ID))
		return enqueue(ctx, a, resource, coord, queue, u)
	}

	return coord.Commit(ctx, u, func(ctx context.Context) (T, error) {
		result, err := op(ctx)
		if err == nil || !errors.Is(err, offline.ErrBackendUnreachable) {
			return result, err
		}
		// сервер недоступен: мутация уходит в очередь, оптимистичное состояние остается
		a.log.Info("backend unreachable, queueing mutation",
			zap.String("type", string(u.Type)),
			zap.String("id", u.ID))
		a.offline.SetOnline(false)
		if qErr := queue(ctx, u.Type, u.Applied); qErr != nil {
			return result, multierr.Combine(err, qErr)
		}
		return u.Applied, nil
	})
}

func enqueue[T optimistic.Entity, D any](
	ctx context.Context,
	a *App,
	resource string,
	coord *optimistic.Coordinator[T, D],
	queue func(context.Context, models.MutationType, T) error,
	u *optimistic.Update[T],
) (T, error) {
	var zero T
	if err := queue(ctx, u.Type, u.Applied); err != nil {
		return zero, multierr.Combine(err, coord.Rollback(u))
	}
	if err := coord.Settle(u); err != nil {
		return zero, err
	}

	// снимок обновляется, чтобы изменение пережило перезапуск
	a.persistSnapshot(resource)
	return u.Applied, nil
}

func (a *App) ensureClubs(ctx context.Context) {
	if a.clubsLoaded.Load() {
		return
	}
	if _, err := a.LoadClubs(ctx); err != nil {
		a.log.Warn("failed to load clubs before mutation", zap.Error(err))
	}
}

func (a *App) ensureLists(ctx context.Context) {
	if a.listsLoaded.Load() {
		return
	}
	if _, err := a.LoadCustomLists(ctx); err != nil {
		a.log.Warn("failed to load custom lists before mutation", zap.Error(err))
	}
}

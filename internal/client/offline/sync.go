package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/models"
)

// SyncResult contains sync pass results
type SyncResult struct {
	Errors      error // ошибки отдельных элементов (multierr)
	Replayed    int   // успешно воспроизведенные элементы
	Failed      int   // элементы с ошибкой в этом проходе
	Quarantined int   // элементы в карантине после прохода
	Remaining   int   // элементы, оставшиеся в очереди
	Skipped     bool  // проход уже выполнялся, вызов ничего не сделал
	Refreshed   bool  // snapshots обновлены с сервера
}

// ItemErrors returns the individual replay failures of the pass.
func (r *SyncResult) ItemErrors() []error {
	if r == nil {
		return nil
	}
	return multierr.Errors(r.Errors)
}

// SyncAllData replays the queue in FIFO order and refreshes the snapshots.
//
// Only one pass runs at a time; a concurrent call returns a result with
// Skipped set. Offline, nothing is sent and the queue stays as is. A failing
// item gets its attempt counter and last error updated and the pass moves
// on; after MaxAttempts failures the item is quarantined. Losing
// connectivity or ctx being done stops the pass, leaving the rest queued,
// and is reported as *SyncPassError. Per-item failures are not an error
// of the pass: they are listed in SyncResult.Errors.
func (m *Manager) SyncAllData(ctx context.Context) (*SyncResult, error) {
	if !m.syncing.CompareAndSwap(false, true) {
		m.log.Debug("sync already in progress, skipping")
		return &SyncResult{Skipped: true}, nil
	}
	defer m.syncing.Store(false)

	result := &SyncResult{}

	if !m.IsOnline() {
		result.Remaining = m.GetSyncQueueLength(ctx)
		m.metrics.SyncPass("offline")
		return result, &SyncPassError{Stage: "offline", Remaining: result.Remaining, Err: ErrOffline}
	}

	m.log.Info("starting sync pass")

	if err := m.replayQueue(ctx, result); err != nil {
		result.Remaining = m.GetSyncQueueLength(ctx)
		m.reportQueueLength(ctx)
		m.metrics.SyncPass("aborted")
		m.log.Warn("sync pass aborted",
			zap.Int("replayed", result.Replayed),
			zap.Int("remaining", result.Remaining),
			zap.Error(err))
		return result, &SyncPassError{Stage: "replay", Remaining: result.Remaining, Err: err}
	}

	result.Remaining = m.GetSyncQueueLength(ctx)
	m.reportQueueLength(ctx)

	if err := m.refreshSnapshots(ctx); err != nil {
		m.metrics.SyncPass("aborted")
		m.log.Warn("snapshot refresh failed", zap.Error(err))
		return result, &SyncPassError{Stage: "refresh", Remaining: result.Remaining, Err: err}
	}
	result.Refreshed = true

	stamp := strconv.FormatInt(m.now().UnixMilli(), 10)
	if err := m.store.SetMetadata(ctx, models.MetadataLastFullSync, stamp); err != nil {
		m.log.Warn("failed to save lastFullSync", zap.Error(err))
	}

	if result.Failed > 0 {
		m.metrics.SyncPass("partial")
	} else {
		m.metrics.SyncPass("ok")
	}
	m.log.Info("sync pass completed",
		zap.Int("replayed", result.Replayed),
		zap.Int("failed", result.Failed),
		zap.Int("quarantined", result.Quarantined),
		zap.Int("remaining", result.Remaining))
	return result, nil
}

// replayQueue returns a non-nil error only when the pass has to stop.
func (m *Manager) replayQueue(ctx context.Context, result *SyncResult) error {
	items, err := m.store.ListQueueItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync queue: %w", err)
	}

	// временные id, которые сервер заменил в этом или прошлых проходах
	ids := newIDMap(m.store, m.log)

	for _, item := range items {
		if item.Quarantined {
			result.Quarantined++
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !m.IsOnline() {
			return ErrOffline
		}

		if data, changed := ids.rewrite(ctx, item.Data); changed {
			item.Data = data
		}

		err := m.replayItem(ctx, item, ids)
		if err == nil {
			if rmErr := m.store.RemoveQueueItem(ctx, item.ID); rmErr != nil {
				// элемент будет воспроизведен повторно, но не потерян
				m.log.Error("failed to remove replayed item", zap.String("id", item.ID), zap.Error(rmErr))
				result.Errors = multierr.Append(result.Errors, rmErr)
			}
			result.Replayed++
			m.metrics.SyncItem("replayed")
			continue
		}

		// отмена или потеря сети не считается попыткой
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, ErrBackendUnreachable) {
			m.monitor.Set(false)
			return fmt.Errorf("%w: %w", ErrOffline, err)
		}

		m.recordFailure(ctx, item, err, result)
	}
	return nil
}

func (m *Manager) recordFailure(ctx context.Context, item *models.SyncQueueItem, err error, result *SyncResult) {
	item.Attempts++
	item.LastError = err.Error()
	if item.Attempts >= m.maxAttempts {
		item.Quarantined = true
		result.Quarantined++
		m.metrics.SyncItem("quarantined")
		m.log.Warn("queue item quarantined",
			zap.String("id", item.ID),
			zap.String("resource", item.Resource),
			zap.Int("attempts", item.Attempts),
			zap.Error(err))
	} else {
		m.metrics.SyncItem("failed")
		m.log.Warn("queue item replay failed",
			zap.String("id", item.ID),
			zap.String("resource", item.Resource),
			zap.Int("attempts", item.Attempts),
			zap.Error(err))
	}

	if upErr := m.store.UpdateQueueItem(ctx, item); upErr != nil {
		m.log.Error("failed to record replay failure", zap.String("id", item.ID), zap.Error(upErr))
	}

	result.Failed++
	result.Errors = multierr.Append(result.Errors,
		fmt.Errorf("%s %s %s: %w", item.Type, item.Resource, item.ID, err))
}

// replayItem dispatches item to the matching backend operation.
func (m *Manager) replayItem(ctx context.Context, item *models.SyncQueueItem, ids *idMap) error {
	switch item.Resource {
	case models.ResourceClubs:
		return m.replayClub(ctx, item, ids)
	case models.ResourceFavorites:
		return m.replayFavorite(ctx, item)
	case models.ResourceCustomLists:
		return m.replayList(ctx, item, ids)
	}
	return fmt.Errorf("%w: resource %q", ErrUnsupportedMutation, item.Resource)
}

func (m *Manager) replayClub(ctx context.Context, item *models.SyncQueueItem, ids *idMap) error {
	switch item.Type {
	case models.MutationCreate:
		var club models.Club
		if err := json.Unmarshal(item.Data, &club); err != nil {
			return fmt.Errorf("invalid club payload: %w", err)
		}
		created, err := m.backend.CreateClub(ctx, club)
		if err != nil {
			return err
		}
		ids.record(ctx, club.ID, created.ID)
		return nil
	case models.MutationUpdate:
		var club models.Club
		if err := json.Unmarshal(item.Data, &club); err != nil {
			return fmt.Errorf("invalid club payload: %w", err)
		}
		_, err := m.backend.UpdateClub(ctx, club)
		return err
	case models.MutationDelete:
		var ref entityRef
		if err := json.Unmarshal(item.Data, &ref); err != nil {
			return fmt.Errorf("invalid club payload: %w", err)
		}
		return m.backend.DeleteClub(ctx, ref.ID)
	}
	return fmt.Errorf("%w: %s clubs", ErrUnsupportedMutation, item.Type)
}

func (m *Manager) replayFavorite(ctx context.Context, item *models.SyncQueueItem) error {
	var payload models.FavoritePayload
	if err := json.Unmarshal(item.Data, &payload); err != nil {
		return fmt.Errorf("invalid favorite payload: %w", err)
	}

	switch item.Type {
	case models.MutationCreate:
		_, err := m.backend.AddFavorite(ctx, payload.ClubID)
		return err
	case models.MutationDelete:
		return m.backend.RemoveFavorite(ctx, payload.ClubID)
	}
	return fmt.Errorf("%w: %s favorites", ErrUnsupportedMutation, item.Type)
}

func (m *Manager) replayList(ctx context.Context, item *models.SyncQueueItem, ids *idMap) error {
	switch item.Type {
	case models.MutationCreate:
		var list models.CustomList
		if err := json.Unmarshal(item.Data, &list); err != nil {
			return fmt.Errorf("invalid list payload: %w", err)
		}
		created, err := m.backend.CreateList(ctx, list)
		if err != nil {
			return err
		}
		ids.record(ctx, list.ID, created.ID)
		return nil
	case models.MutationUpdate:
		var list models.CustomList
		if err := json.Unmarshal(item.Data, &list); err != nil {
			return fmt.Errorf("invalid list payload: %w", err)
		}
		_, err := m.backend.UpdateList(ctx, list)
		return err
	case models.MutationDelete:
		var ref entityRef
		if err := json.Unmarshal(item.Data, &ref); err != nil {
			return fmt.Errorf("invalid list payload: %w", err)
		}
		return m.backend.DeleteList(ctx, ref.ID)
	}
	return fmt.Errorf("%w: %s customLists", ErrUnsupportedMutation, item.Type)
}

// refreshSnapshots pulls every collection; all three are attempted and
// failures are combined.
func (m *Manager) refreshSnapshots(ctx context.Context) error {
	var errs error

	if clubs, err := m.backend.ListClubs(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list clubs: %w", err))
	} else {
		errs = multierr.Append(errs, m.StoreClubs(ctx, clubs))
	}

	if favorites, err := m.backend.ListFavorites(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list favorites: %w", err))
	} else {
		errs = multierr.Append(errs, m.StoreFavorites(ctx, favorites))
	}

	if lists, err := m.backend.ListCustomLists(ctx); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("list custom lists: %w", err))
	} else {
		errs = multierr.Append(errs, m.StoreCustomLists(ctx, lists))
	}

	return errs
}

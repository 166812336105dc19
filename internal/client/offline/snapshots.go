package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// snapshotNamespaces are the collections counted by GetCacheSize.
var snapshotNamespaces = []string{
	models.ResourceClubs,
	models.ResourceFavorites,
	models.ResourceCustomLists,
}

// CacheSize is an estimate of the offline storage footprint.
type CacheSize struct {
	Size  int64 // байты: snapshots + очередь
	Items int   // количество элементов во всех snapshot коллекциях
}

// StoreClubs replaces the clubs snapshot.
func (m *Manager) StoreClubs(ctx context.Context, clubs []models.Club) error {
	return saveSnapshot(ctx, m, models.ResourceClubs, clubs)
}

// StoreFavorites replaces the favorites snapshot.
func (m *Manager) StoreFavorites(ctx context.Context, favorites []models.Favorite) error {
	return saveSnapshot(ctx, m, models.ResourceFavorites, favorites)
}

// StoreCustomLists replaces the custom lists snapshot.
func (m *Manager) StoreCustomLists(ctx context.Context, lists []models.CustomList) error {
	return saveSnapshot(ctx, m, models.ResourceCustomLists, lists)
}

// GetStoredClubs returns the last clubs snapshot or an empty slice.
func (m *Manager) GetStoredClubs(ctx context.Context) []models.Club {
	return loadSnapshot[models.Club](ctx, m, models.ResourceClubs)
}

// GetStoredFavorites returns the last favorites snapshot or an empty slice.
func (m *Manager) GetStoredFavorites(ctx context.Context) []models.Favorite {
	return loadSnapshot[models.Favorite](ctx, m, models.ResourceFavorites)
}

// GetStoredCustomLists returns the last custom lists snapshot or an empty slice.
func (m *Manager) GetStoredCustomLists(ctx context.Context) []models.CustomList {
	return loadSnapshot[models.CustomList](ctx, m, models.ResourceCustomLists)
}

func saveSnapshot[T any](ctx context.Context, m *Manager, namespace string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", namespace, err)
	}
	if err := m.store.SaveSnapshot(ctx, namespace, data); err != nil {
		return fmt.Errorf("failed to store %s snapshot: %w", namespace, err)
	}
	return nil
}

// loadSnapshot никогда не возвращает ошибку: сбой хранилища деградирует до пустого списка
func loadSnapshot[T any](ctx context.Context, m *Manager, namespace string) []T {
	data, err := m.store.GetSnapshot(ctx, namespace)
	if err != nil {
		if !errors.Is(err, storage.ErrSnapshotNotFound) {
			m.log.Warn("failed to read snapshot", zap.String("namespace", namespace), zap.Error(err))
		}
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		m.log.Warn("corrupted snapshot", zap.String("namespace", namespace), zap.Error(err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// GetMetadata returns the metadata value and whether it exists.
func (m *Manager) GetMetadata(ctx context.Context, key string) (string, bool) {
	value, err := m.store.GetMetadata(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrMetadataNotFound) {
			m.log.Warn("failed to read metadata", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// SetMetadata stores a metadata value.
func (m *Manager) SetMetadata(ctx context.Context, key, value string) error {
	if err := m.store.SetMetadata(ctx, key, value); err != nil {
		return fmt.Errorf("failed to store metadata %q: %w", key, err)
	}
	return nil
}

// LastFullSync returns the time of the last completed sync pass.
func (m *Manager) LastFullSync(ctx context.Context) (time.Time, bool) {
	raw, ok := m.GetMetadata(ctx, models.MetadataLastFullSync)
	if !ok {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.log.Warn("invalid lastFullSync value", zap.String("value", raw))
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// IsDataStale reports whether the last full sync is missing or older than
// maxAge. maxAge <= 0 uses the configured default.
func (m *Manager) IsDataStale(ctx context.Context, maxAge time.Duration) bool {
	if maxAge <= 0 {
		maxAge = m.maxAge
	}
	last, ok := m.LastFullSync(ctx)
	if !ok {
		return true
	}
	return m.now().Sub(last) > maxAge
}

// GetCacheSize estimates the footprint of snapshots and the queue.
func (m *Manager) GetCacheSize(ctx context.Context) CacheSize {
	var size CacheSize

	stats, err := m.store.Stats(ctx)
	if err != nil {
		m.log.Warn("failed to read storage stats", zap.Error(err))
		return size
	}
	for _, n := range stats.Snapshots {
		size.Size += n
	}
	size.Size += stats.Queue

	for _, ns := range snapshotNamespaces {
		data, err := m.store.GetSnapshot(ctx, ns)
		if err != nil {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err == nil {
			size.Items += len(items)
		}
	}
	return size
}

// ClearCache wipes snapshots, metadata and the sync queue.
func (m *Manager) ClearCache(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear offline storage: %w", err)
	}
	m.metrics.QueueLength(0)
	m.log.Info("offline storage cleared")
	return nil
}

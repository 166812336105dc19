// Package storagetest holds the behavioural contract shared by every
// storage.Store implementation.
package storagetest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/models"
)

// Factory creates a fresh, empty store for a single subtest.
type Factory func(t *testing.T) storage.Store

// NewItem builds a queue item for tests.
func NewItem(id string, typ models.MutationType, resource string) *models.SyncQueueItem {
	return &models.SyncQueueItem{
		ID:        id,
		Type:      typ,
		Resource:  resource,
		Data:      json.RawMessage(`{"id":"` + id + `"}`),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Run executes the contract suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("snapshot overwrite", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		_, err := s.GetSnapshot(ctx, models.ResourceClubs)
		assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

		require.NoError(t, s.SaveSnapshot(ctx, models.ResourceClubs, []byte(`[1,2,3]`)))
		require.NoError(t, s.SaveSnapshot(ctx, models.ResourceClubs, []byte(`[4]`)))
		require.NoError(t, s.SaveSnapshot(ctx, models.ResourceFavorites, []byte(`[]`)))

		got, err := s.GetSnapshot(ctx, models.ResourceClubs)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[4]`), got)

		got, err = s.GetSnapshot(ctx, models.ResourceFavorites)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("metadata", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		_, err := s.GetMetadata(ctx, models.MetadataLastFullSync)
		assert.ErrorIs(t, err, storage.ErrMetadataNotFound)

		require.NoError(t, s.SetMetadata(ctx, models.MetadataLastFullSync, "100"))
		require.NoError(t, s.SetMetadata(ctx, models.MetadataLastFullSync, "200"))

		got, err := s.GetMetadata(ctx, models.MetadataLastFullSync)
		require.NoError(t, err)
		assert.Equal(t, "200", got)
	})

	t.Run("queue fifo", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		ids := []string{"c", "a", "b"}
		for _, id := range ids {
			item := NewItem(id, models.MutationCreate, models.ResourceClubs)
			require.NoError(t, s.AppendQueueItem(ctx, item))
			assert.NotZero(t, item.Seq)
		}

		n, err := s.QueueLength(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		items, err := s.ListQueueItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		for i, id := range ids {
			assert.Equal(t, id, items[i].ID)
			assert.Equal(t, models.MutationCreate, items[i].Type)
			assert.JSONEq(t, `{"id":"`+id+`"}`, string(items[i].Data))
		}
		assert.Less(t, items[0].Seq, items[1].Seq)
		assert.Less(t, items[1].Seq, items[2].Seq)
	})

	t.Run("queue update keeps position", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, s.AppendQueueItem(ctx, NewItem(id, models.MutationUpdate, models.ResourceCustomLists)))
		}

		items, err := s.ListQueueItems(ctx)
		require.NoError(t, err)
		first := items[0]
		first.Attempts = 2
		first.LastError = "boom"
		first.Quarantined = true
		require.NoError(t, s.UpdateQueueItem(ctx, first))

		items, err = s.ListQueueItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, 2, items[0].Attempts)
		assert.Equal(t, "boom", items[0].LastError)
		assert.True(t, items[0].Quarantined)

		err = s.UpdateQueueItem(ctx, NewItem("missing", models.MutationUpdate, models.ResourceClubs))
		assert.ErrorIs(t, err, storage.ErrQueueItemNotFound)
	})

	t.Run("queue remove", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		for _, id := range []string{"1", "2", "3"} {
			require.NoError(t, s.AppendQueueItem(ctx, NewItem(id, models.MutationDelete, models.ResourceFavorites)))
		}
		require.NoError(t, s.RemoveQueueItem(ctx, "2"))
		require.NoError(t, s.RemoveQueueItem(ctx, "missing"))

		items, err := s.ListQueueItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "3", items[1].ID)

		// после удаления новые элементы все равно идут в хвост
		require.NoError(t, s.AppendQueueItem(ctx, NewItem("4", models.MutationCreate, models.ResourceClubs)))
		items, err = s.ListQueueItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "4", items[2].ID)
	})

	t.Run("stats and clear", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		require.NoError(t, s.SaveSnapshot(ctx, models.ResourceClubs, []byte(`[{"id":"1"}]`)))
		require.NoError(t, s.SetMetadata(ctx, models.MetadataLastFullSync, "1"))
		require.NoError(t, s.AppendQueueItem(ctx, NewItem("q", models.MutationCreate, models.ResourceClubs)))

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Positive(t, stats.Snapshots[models.ResourceClubs])
		assert.Positive(t, stats.Queue)
		assert.Positive(t, stats.Metadata)
		assert.Positive(t, stats.Total())

		require.NoError(t, s.Clear(ctx))

		_, err = s.GetSnapshot(ctx, models.ResourceClubs)
		assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)
		_, err = s.GetMetadata(ctx, models.MetadataLastFullSync)
		assert.ErrorIs(t, err, storage.ErrMetadataNotFound)
		n, err := s.QueueLength(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)

		// хранилище остается рабочим после очистки
		require.NoError(t, s.AppendQueueItem(ctx, NewItem("q2", models.MutationCreate, models.ResourceClubs)))
		n, err = s.QueueLength(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("closed", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Close())

		assert.ErrorIs(t, s.SaveSnapshot(ctx, models.ResourceClubs, nil), storage.ErrStorageClosed)
		_, err := s.ListQueueItems(ctx)
		assert.ErrorIs(t, err, storage.ErrStorageClosed)
		assert.NoError(t, s.Close(), "second close must be a no-op")
	})
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/client/storage"
	"github.com/iudanet/clubsync/internal/client/storage/storagetest"
	"github.com/iudanet/clubsync/internal/models"
)

// setupTestStorage создает тестовое хранилище во временном каталоге
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, s.Close())
	})
	return s
}

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return setupTestStorage(t)
	})
}

func TestNew_Migrations(t *testing.T) {
	s := setupTestStorage(t)

	for _, table := range []string{"snapshots", "sync_queue", "metadata"} {
		var name string
		err := s.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestNew_InMemory(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetMetadata(ctx, models.MetadataLastFullSync, "1"))
	got, err := s.GetMetadata(ctx, models.MetadataLastFullSync)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestStorage_ReopenKeepsQueue(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	item := storagetest.NewItem("a", models.MutationDelete, models.ResourceFavorites)
	item.Attempts = 1
	require.NoError(t, s.AppendQueueItem(ctx, item))
	require.NoError(t, s.Close())

	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	items, err := s.ListQueueItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, models.MutationDelete, items[0].Type)
	assert.Equal(t, 1, items[0].Attempts)
	assert.Equal(t, item.CreatedAt.UnixMilli(), items[0].CreatedAt.UnixMilli())
}

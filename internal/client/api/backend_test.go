package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/handlers"
	"github.com/iudanet/clubsync/internal/server/storage/sqlite"
)

// newBackend поднимает reference backend на in-memory SQLite
func newBackend(t *testing.T) *Client {
	t.Helper()
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ts := httptest.NewServer(handlers.NewRouter(zap.NewNop(), store, "test"))
	t.Cleanup(ts.Close)
	return NewClient(ts.URL, fastRetry(1))
}

func TestClient_Backend_Clubs(t *testing.T) {
	ctx := context.Background()
	client := newBackend(t)

	require.NoError(t, client.Ping(ctx))

	tempID := optimistic.NewTemporaryID()
	draft := models.Club{ID: tempID, Name: "Chess", City: "Riga", OwnerID: "u1"}

	created, err := client.CreateClub(ctx, draft)
	require.NoError(t, err)
	assert.False(t, optimistic.IsTemporaryID(created.ID))
	assert.Equal(t, "u1", created.OwnerID)

	// повтор после потерянного ответа не создает дубликат
	replayed, err := client.CreateClub(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replayed.ID)

	created.Name = "Chess club"
	updated, err := client.UpdateClub(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Chess club", updated.Name)

	clubs, err := client.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)

	require.NoError(t, client.DeleteClub(ctx, created.ID))
	require.NoError(t, client.DeleteClub(ctx, created.ID), "second delete is a no-op")

	_, err = client.UpdateClub(ctx, created)
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_Backend_FavoritesAndLists(t *testing.T) {
	ctx := context.Background()
	client := newBackend(t)

	club, err := client.CreateClub(ctx, models.Club{Name: "Go meetup"})
	require.NoError(t, err)

	_, err = client.AddFavorite(ctx, "missing")
	assert.True(t, IsStatus(err, http.StatusUnprocessableEntity))

	fav, err := client.AddFavorite(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, club.ID, fav.ClubID)

	favs, err := client.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)
	require.NoError(t, client.RemoveFavorite(ctx, club.ID))

	list, err := client.CreateList(ctx, models.CustomList{ID: optimistic.NewTemporaryID(), Name: "Weekend", ClubIDs: []string{club.ID}})
	require.NoError(t, err)
	assert.Equal(t, []string{club.ID}, list.ClubIDs)

	lists, err := client.ListCustomLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekend", lists[0].Name)

	require.NoError(t, client.DeleteList(ctx, list.ID))
}

func TestClient_Backend_ValidationIsPermanent(t *testing.T) {
	client := newBackend(t)

	_, err := client.CreateClub(context.Background(), models.Club{})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.False(t, isRetryable(err))
}

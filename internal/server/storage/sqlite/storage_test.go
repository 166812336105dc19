package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	// фиксированные часы с шагом в секунду, чтобы порядок был детерминированным
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestStorage_FileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	_, err = s.CreateClub(ctx, "", models.Club{Name: "Chess"})
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())

	// повторное открытие не должно повторно применять миграции
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	clubs, err := s.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Chess", clubs[0].Name)
}

func TestStorage_Clubs(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	clubs, err := s.ListClubs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clubs)
	assert.Empty(t, clubs)

	chess, err := s.CreateClub(ctx, "", models.Club{Name: "Chess", City: "Riga", OwnerID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, chess.ID)
	assert.False(t, chess.CreatedAt.IsZero())

	books, err := s.CreateClub(ctx, "", models.Club{Name: "Books"})
	require.NoError(t, err)

	clubs, err = s.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, chess.ID, clubs[0].ID)
	assert.Equal(t, books.ID, clubs[1].ID)
	assert.Equal(t, "u1", clubs[0].OwnerID)

	chess.Name = "Chess+"
	chess.Category = "games"
	updated, err := s.UpdateClub(ctx, chess)
	require.NoError(t, err)
	assert.Equal(t, "Chess+", updated.Name)
	assert.Equal(t, "games", updated.Category)
	assert.True(t, updated.UpdatedAt.After(chess.UpdatedAt))
	assert.Equal(t, chess.CreatedAt, updated.CreatedAt)

	require.NoError(t, s.DeleteClub(ctx, books.ID))
	assert.ErrorIs(t, s.DeleteClub(ctx, books.ID), storage.ErrNotFound)

	_, err = s.UpdateClub(ctx, models.Club{ID: "missing", Name: "x"})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.GetClub(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_CreateClubIdempotent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	first, err := s.CreateClub(ctx, "temp-1", models.Club{Name: "Chess"})
	require.NoError(t, err)
	again, err := s.CreateClub(ctx, "temp-1", models.Club{Name: "Chess (retry)"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Chess", again.Name)

	other, err := s.CreateClub(ctx, "temp-2", models.Club{Name: "Books"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	clubs, err := s.ListClubs(ctx)
	require.NoError(t, err)
	assert.Len(t, clubs, 2)
}

func TestStorage_Favorites(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	club, err := s.CreateClub(ctx, "", models.Club{Name: "Chess"})
	require.NoError(t, err)

	_, err = s.AddFavorite(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrClubNotFound)

	fav, err := s.AddFavorite(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, club.ID, fav.ClubID)

	again, err := s.AddFavorite(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, again.ID)

	favorites, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, fav.CreatedAt, favorites[0].CreatedAt)

	require.NoError(t, s.RemoveFavorite(ctx, club.ID))
	assert.ErrorIs(t, s.RemoveFavorite(ctx, club.ID), storage.ErrNotFound)
}

func TestStorage_DeleteClubCascadesFavorite(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	club, err := s.CreateClub(ctx, "", models.Club{Name: "Chess"})
	require.NoError(t, err)
	_, err = s.AddFavorite(ctx, club.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteClub(ctx, club.ID))

	favorites, err := s.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestStorage_Lists(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	list, err := s.CreateList(ctx, "temp-1", models.CustomList{Name: "Weekend"})
	require.NoError(t, err)
	assert.NotNil(t, list.ClubIDs)

	again, err := s.CreateList(ctx, "temp-1", models.CustomList{Name: "Weekend"})
	require.NoError(t, err)
	assert.Equal(t, list.ID, again.ID)

	list.ClubIDs = []string{"c1", "c2"}
	list.Description = "sat & sun"
	updated, err := s.UpdateList(ctx, list)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, updated.ClubIDs)
	assert.Equal(t, "sat & sun", updated.Description)

	lists, err := s.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, updated, lists[0])

	_, err = s.UpdateList(ctx, models.CustomList{ID: "missing"})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.DeleteList(ctx, list.ID))
	assert.ErrorIs(t, s.DeleteList(ctx, list.ID), storage.ErrNotFound)
}

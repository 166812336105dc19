package app

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/client/storage/memory"
	"github.com/iudanet/clubsync/internal/config"
	"github.com/iudanet/clubsync/internal/models"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{URL: "http://localhost:8080", Timeout: time.Second},
		Storage: config.StorageConfig{Driver: "memory"},
		Cache:   config.CacheConfig{DefaultTTL: time.Minute, SweepSchedule: "@every 1m"},
		Offline: config.OfflineConfig{
			MaxAge:        time.Hour,
			MaxAttempts:   3,
			ProbeInterval: time.Minute,
		},
		Sync:       config.SyncConfig{Schedule: "@every 5m"},
		Optimistic: config.OptimisticConfig{CommitTimeout: time.Second},
		Log:        config.LogConfig{Level: "info"},
	}
}

// fakeServer хранит состояние сервера для mock backend
type fakeServer struct {
	clubs     []models.Club
	favorites []models.Favorite
	lists     []models.CustomList
	err       error // если задан, все мутации возвращают его
	nextID    int
	mu        sync.Mutex
}

func (s *fakeServer) id() string {
	s.nextID++
	return fmt.Sprintf("srv-%d", s.nextID)
}

func (s *fakeServer) backend() *offline.BackendMock {
	return &offline.BackendMock{
		ListClubsFunc: func(ctx context.Context) ([]models.Club, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return slices.Clone(s.clubs), nil
		},
		ListFavoritesFunc: func(ctx context.Context) ([]models.Favorite, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return slices.Clone(s.favorites), nil
		},
		ListCustomListsFunc: func(ctx context.Context) ([]models.CustomList, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return slices.Clone(s.lists), nil
		},
		CreateClubFunc: func(ctx context.Context, club models.Club) (models.Club, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return models.Club{}, s.err
			}
			club.ID = s.id()
			s.clubs = append(s.clubs, club)
			return club, nil
		},
		UpdateClubFunc: func(ctx context.Context, club models.Club) (models.Club, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return models.Club{}, s.err
			}
			for i := range s.clubs {
				if s.clubs[i].ID == club.ID {
					s.clubs[i] = club
				}
			}
			return club, nil
		},
		DeleteClubFunc: func(ctx context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return s.err
			}
			s.clubs = slices.DeleteFunc(s.clubs, func(c models.Club) bool { return c.ID == id })
			return nil
		},
		AddFavoriteFunc: func(ctx context.Context, clubID string) (models.Favorite, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return models.Favorite{}, s.err
			}
			fav := models.Favorite{ID: s.id(), ClubID: clubID}
			s.favorites = append(s.favorites, fav)
			return fav, nil
		},
		RemoveFavoriteFunc: func(ctx context.Context, clubID string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return s.err
			}
			s.favorites = slices.DeleteFunc(s.favorites, func(f models.Favorite) bool { return f.ClubID == clubID })
			return nil
		},
		CreateListFunc: func(ctx context.Context, list models.CustomList) (models.CustomList, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return models.CustomList{}, s.err
			}
			list.ID = s.id()
			s.lists = append(s.lists, list)
			return list, nil
		},
		UpdateListFunc: func(ctx context.Context, list models.CustomList) (models.CustomList, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return models.CustomList{}, s.err
			}
			return list, nil
		},
		DeleteListFunc: func(ctx context.Context, id string) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.err != nil {
				return s.err
			}
			s.lists = slices.DeleteFunc(s.lists, func(l models.CustomList) bool { return l.ID == id })
			return nil
		},
	}
}

func (s *fakeServer) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func newTestApp(t *testing.T, server *fakeServer) (*App, *offline.BackendMock) {
	t.Helper()
	backend := server.backend()
	a, err := New(testConfig(), Deps{
		Store:   memory.New(),
		Backend: backend,
		Logger:  zap.NewNop(),
		Now:     func() time.Time { return testNow },
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, a.Close())
	})
	return a, backend
}

func clubIDs(clubs []models.Club) []string {
	result := make([]string, 0, len(clubs))
	for _, c := range clubs {
		result = append(result, c.ID)
	}
	return result
}

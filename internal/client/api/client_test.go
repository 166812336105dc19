package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/clubsync/internal/client/offline"
	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/pkg/api"
)

// fastRetry делает повторы почти мгновенными
func fastRetry(n uint64) Option {
	return WithRetry(n, time.Millisecond)
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
	assert.Equal(t, uint64(defaultMaxRetries), client.maxRetries)
}

func TestNewClient_Options(t *testing.T) {
	hc := &http.Client{}
	client := NewClient("http://x", WithHTTPClient(hc), WithTimeout(5*time.Second), WithRetry(0, 0))

	assert.Same(t, hc, client.httpClient)
	assert.Equal(t, 5*time.Second, hc.Timeout)
	assert.Equal(t, uint64(0), client.maxRetries)
	assert.Equal(t, defaultRetryBase, client.retryBase)
}

// TestClient_Ping проверяет health check
func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	require.NoError(t, client.Ping(context.Background()))
}

func TestClient_Ping_NoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, fastRetry(3))
	err := client.Ping(context.Background())

	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusServiceUnavailable))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, fastRetry(1))
	_, err := client.ListClubs(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, offline.ErrBackendUnreachable)
}

// TestClient_ListClubs проверяет получение списка клубов
func TestClient_ListClubs(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/clubs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		_ = json.NewEncoder(w).Encode(api.ClubsResponse{Clubs: []api.Club{
			{ID: "c1", Name: "Chess", City: "Riga", MemberCount: 12, CreatedAt: created},
			{ID: "c2", Name: "Books"},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	clubs, err := client.ListClubs(context.Background())

	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, models.Club{ID: "c1", Name: "Chess", City: "Riga", MemberCount: 12, CreatedAt: created}, clubs[0])
	assert.Equal(t, "c2", clubs[1].ID)
}

func TestClient_ListClubs_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	clubs, err := NewClient(server.URL).ListClubs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, clubs)
	assert.Empty(t, clubs)
}

// TestClient_CreateClub проверяет передачу временного id
func TestClient_CreateClub(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		wantClientID string
	}{
		{name: "temporary id is sent as client_id", id: "temp-abc", wantClientID: "temp-abc"},
		{name: "server id is not sent", id: "c1", wantClientID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/clubs", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var req api.ClubRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, tt.wantClientID, req.ClientID)
				assert.Equal(t, "Chess", req.Name)

				w.WriteHeader(http.StatusCreated)
				_ = json.NewEncoder(w).Encode(api.Club{ID: "srv-1", Name: req.Name})
			}))
			defer server.Close()

			club, err := NewClient(server.URL).CreateClub(context.Background(), models.Club{ID: tt.id, Name: "Chess"})
			require.NoError(t, err)
			assert.Equal(t, "srv-1", club.ID)
			assert.Equal(t, "Chess", club.Name)
		})
	}
}

func TestClient_UpdateClub(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/clubs/c%201", r.URL.EscapedPath())

		var req api.ClubRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(api.Club{ID: "c 1", Name: req.Name, City: req.City})
	}))
	defer server.Close()

	club, err := NewClient(server.URL).UpdateClub(context.Background(), models.Club{ID: "c 1", Name: "New", City: "Oslo"})
	require.NoError(t, err)
	assert.Equal(t, "New", club.Name)
	assert.Equal(t, "Oslo", club.City)
}

// TestClient_Delete проверяет, что 404 при удалении считается успехом
func TestClient_Delete(t *testing.T) {
	tests := []struct {
		call    func(c *Client) error
		name    string
		path    string
		status  int
		wantErr bool
	}{
		{
			name: "club deleted", path: "/api/v1/clubs/c1", status: http.StatusNoContent,
			call: func(c *Client) error { return c.DeleteClub(context.Background(), "c1") },
		},
		{
			name: "club already gone", path: "/api/v1/clubs/c1", status: http.StatusNotFound,
			call: func(c *Client) error { return c.DeleteClub(context.Background(), "c1") },
		},
		{
			name: "list forbidden", path: "/api/v1/lists/l1", status: http.StatusForbidden, wantErr: true,
			call: func(c *Client) error { return c.DeleteList(context.Background(), "l1") },
		},
		{
			name: "favorite removed", path: "/api/v1/favorites/c9", status: http.StatusOK,
			call: func(c *Client) error { return c.RemoveFavorite(context.Background(), "c9") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := tt.call(NewClient(server.URL))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsStatus(err, tt.status))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClient_Favorites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(api.FavoritesResponse{Favorites: []api.Favorite{{ID: "f1", ClubID: "c1"}}})
		case http.MethodPost:
			var req api.FavoriteRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(api.Favorite{ID: "f2", ClubID: req.ClubID})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	favorites, err := client.ListFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Favorite{{ID: "f1", ClubID: "c1"}}, favorites)

	fav, err := client.AddFavorite(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, models.Favorite{ID: "f2", ClubID: "c2"}, fav)
}

func TestClient_Lists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(api.ListsResponse{Lists: []api.CustomList{{ID: "l1", Name: "Weekend", ClubIDs: []string{"c1"}}}})
		case r.Method == http.MethodPost:
			var req api.ListRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "temp-1", req.ClientID)
			// nil ClubIDs уходят как пустой массив
			assert.NotNil(t, req.ClubIDs)
			_ = json.NewEncoder(w).Encode(api.CustomList{ID: "l2", Name: req.Name, ClubIDs: req.ClubIDs})
		case r.Method == http.MethodPut:
			assert.Equal(t, "/api/v1/lists/l1", r.URL.Path)
			var req api.ListRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			_ = json.NewEncoder(w).Encode(api.CustomList{ID: "l1", Name: req.Name, ClubIDs: req.ClubIDs})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	lists, err := client.ListCustomLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, []string{"c1"}, lists[0].ClubIDs)

	created, err := client.CreateList(ctx, models.CustomList{ID: "temp-1", Name: "Fresh"})
	require.NoError(t, err)
	assert.Equal(t, "l2", created.ID)
	assert.Empty(t, created.ClubIDs)

	updated, err := client.UpdateList(ctx, models.CustomList{ID: "l1", Name: "Renamed", ClubIDs: []string{"c1", "c2"}})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, []string{"c1", "c2"}, updated.ClubIDs)
}

// TestClient_ServerErrors проверяет обработку ошибок сервера
func TestClient_ServerErrors(t *testing.T) {
	tests := []struct {
		responseBody any
		name         string
		wantErr      string
		statusCode   int
		wantCalls    int32
	}{
		{
			name:         "validation error is not retried",
			statusCode:   http.StatusBadRequest,
			responseBody: api.ErrorResponse{Error: "bad_request", Message: "name is required"},
			wantErr:      "server error (400): name is required",
			wantCalls:    1,
		},
		{
			name:         "error without message",
			statusCode:   http.StatusConflict,
			responseBody: api.ErrorResponse{Error: "conflict"},
			wantErr:      "server error (409): conflict",
			wantCalls:    1,
		},
		{
			name:         "server error is retried",
			statusCode:   http.StatusInternalServerError,
			responseBody: api.ErrorResponse{Error: "internal"},
			wantErr:      "server error (500): internal",
			wantCalls:    3,
		},
		{
			name:         "rate limit is retried",
			statusCode:   http.StatusTooManyRequests,
			responseBody: "slow down",
			wantErr:      "server error (429)",
			wantCalls:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.responseBody)
			}))
			defer server.Close()

			client := NewClient(server.URL, fastRetry(2))
			_, err := client.CreateClub(context.Background(), models.Club{Name: "x"})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, IsStatus(err, tt.statusCode))
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

// TestClient_RetryRecovers проверяет, что тело запроса повторно отправляется
func TestClient_RetryRecovers(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.ClubRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Chess", req.Name)

		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(api.Club{ID: "srv-1", Name: req.Name})
	}))
	defer server.Close()

	club, err := NewClient(server.URL, fastRetry(3)).CreateClub(context.Background(), models.Club{Name: "Chess"})
	require.NoError(t, err)
	assert.Equal(t, "srv-1", club.ID)
	assert.Equal(t, int32(3), calls.Load())
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.ListClubs(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, offline.ErrBackendUnreachable)
}

// TestClient_InvalidJSON проверяет обработку невалидного JSON в ответе
func TestClient_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("invalid json {{{"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListFavorites(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// TestClient_HTTPClientRedirect проверяет обработку редиректов
func TestClient_HTTPClientRedirect(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if redirectCount < 3 {
			redirectCount++
			w.Header().Set("Location", "/redirected")
			w.WriteHeader(http.StatusFound)
			return
		}

		_ = json.NewEncoder(w).Encode(api.ClubsResponse{Clubs: []api.Club{{ID: "c1"}}})
	}))
	defer server.Close()

	clubs, err := NewClient(server.URL).ListClubs(context.Background())

	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, 3, redirectCount) // Проверяем что было 3 редиректа
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/server/storage"
)

// NewRouter registers all API routes on a new ServeMux
func NewRouter(logger *zap.Logger, store storage.Store, version string) *http.ServeMux {
	health := NewHealthHandler(logger, store, version)
	clubs := NewClubHandler(logger, store)
	favorites := NewFavoriteHandler(logger, store)
	lists := NewListHandler(logger, store)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", health.Health)

	mux.HandleFunc("GET /api/v1/clubs", clubs.List)
	mux.HandleFunc("POST /api/v1/clubs", clubs.Create)
	mux.HandleFunc("PUT /api/v1/clubs/{id}", clubs.Update)
	mux.HandleFunc("DELETE /api/v1/clubs/{id}", clubs.Delete)

	mux.HandleFunc("GET /api/v1/favorites", favorites.List)
	mux.HandleFunc("POST /api/v1/favorites", favorites.Add)
	mux.HandleFunc("DELETE /api/v1/favorites/{clubID}", favorites.Remove)

	mux.HandleFunc("GET /api/v1/lists", lists.List)
	mux.HandleFunc("POST /api/v1/lists", lists.Create)
	mux.HandleFunc("PUT /api/v1/lists/{id}", lists.Update)
	mux.HandleFunc("DELETE /api/v1/lists/{id}", lists.Delete)

	return mux
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/server/storage"
	"github.com/iudanet/clubsync/pkg/api"
)

// FavoriteHandler handles favorite marks
type FavoriteHandler struct {
	storage storage.FavoriteStorage
	responder
}

// NewFavoriteHandler creates a new favorites handler
func NewFavoriteHandler(logger *zap.Logger, store storage.FavoriteStorage) *FavoriteHandler {
	return &FavoriteHandler{responder: newResponder(logger), storage: store}
}

// List обрабатывает GET /api/v1/favorites
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.storage.ListFavorites(r.Context())
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	resp := api.FavoritesResponse{Favorites: make([]api.Favorite, 0, len(favorites))}
	for _, fav := range favorites {
		resp.Favorites = append(resp.Favorites, api.Favorite{
			ID:        fav.ID,
			ClubID:    fav.ClubID,
			CreatedAt: fav.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Add обрабатывает POST /api/v1/favorites
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req api.FavoriteRequest
	if !h.decode(w, r, &req) {
		return
	}

	fav, err := h.storage.AddFavorite(r.Context(), req.ClubID)
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, api.Favorite{
		ID:        fav.ID,
		ClubID:    fav.ClubID,
		CreatedAt: fav.CreatedAt,
	})
}

// Remove обрабатывает DELETE /api/v1/favorites/{clubID}
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.RemoveFavorite(r.Context(), r.PathValue("clubID")); err != nil {
		h.storageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/storage"
	"github.com/iudanet/clubsync/pkg/api"
)

// ClubHandler handles the clubs catalogue
type ClubHandler struct {
	storage storage.ClubStorage
	responder
}

// NewClubHandler creates a new clubs handler
func NewClubHandler(logger *zap.Logger, store storage.ClubStorage) *ClubHandler {
	return &ClubHandler{responder: newResponder(logger), storage: store}
}

// List обрабатывает GET /api/v1/clubs
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.storage.ListClubs(r.Context())
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	resp := api.ClubsResponse{Clubs: make([]api.Club, 0, len(clubs))}
	for _, club := range clubs {
		resp.Clubs = append(resp.Clubs, clubToAPI(club))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Create обрабатывает POST /api/v1/clubs
// client_id делает повторную отправку идемпотентной
func (h *ClubHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.ClubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.storage.CreateClub(r.Context(), req.ClientID, clubFromRequest("", req))
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.Info("club created", zap.String("id", club.ID), zap.String("client_id", req.ClientID))
	h.writeJSON(w, http.StatusCreated, clubToAPI(club))
}

// Update обрабатывает PUT /api/v1/clubs/{id}
func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ClubRequest
	if !h.decode(w, r, &req) {
		return
	}

	club, err := h.storage.UpdateClub(r.Context(), clubFromRequest(r.PathValue("id"), req))
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, clubToAPI(club))
}

// Delete обрабатывает DELETE /api/v1/clubs/{id}
func (h *ClubHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.DeleteClub(r.Context(), r.PathValue("id")); err != nil {
		h.storageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func clubFromRequest(id string, req api.ClubRequest) models.Club {
	return models.Club{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		OwnerID:     req.OwnerID,
	}
}

func clubToAPI(club models.Club) api.Club {
	return api.Club{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		City:        club.City,
		OwnerID:     club.OwnerID,
		MemberCount: club.MemberCount,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}

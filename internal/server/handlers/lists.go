package handlers

import (
	"net/http"
	"slices"

	"go.uber.org/zap"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/internal/server/storage"
	"github.com/iudanet/clubsync/pkg/api"
)

// ListHandler handles custom lists
type ListHandler struct {
	storage storage.ListStorage
	responder
}

// NewListHandler creates a new custom lists handler
func NewListHandler(logger *zap.Logger, store storage.ListStorage) *ListHandler {
	return &ListHandler{responder: newResponder(logger), storage: store}
}

// List обрабатывает GET /api/v1/lists
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.storage.ListLists(r.Context())
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	resp := api.ListsResponse{Lists: make([]api.CustomList, 0, len(lists))}
	for _, list := range lists {
		resp.Lists = append(resp.Lists, listToAPI(list))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Create обрабатывает POST /api/v1/lists
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.ListRequest
	if !h.decode(w, r, &req) {
		return
	}

	list, err := h.storage.CreateList(r.Context(), req.ClientID, listFromRequest("", req))
	if err != nil {
		h.storageError(w, r, err)
		return
	}

	h.logger.Info("list created", zap.String("id", list.ID), zap.String("client_id", req.ClientID))
	h.writeJSON(w, http.StatusCreated, listToAPI(list))
}

// Update обрабатывает PUT /api/v1/lists/{id}
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ListRequest
	if !h.decode(w, r, &req) {
		return
	}

	list, err := h.storage.UpdateList(r.Context(), listFromRequest(r.PathValue("id"), req))
	if err != nil {
		h.storageError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, listToAPI(list))
}

// Delete обрабатывает DELETE /api/v1/lists/{id}
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.DeleteList(r.Context(), r.PathValue("id")); err != nil {
		h.storageError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func listFromRequest(id string, req api.ListRequest) models.CustomList {
	return models.CustomList{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ClubIDs:     slices.Clone(req.ClubIDs),
	}
}

func listToAPI(list models.CustomList) api.CustomList {
	ids := list.ClubIDs
	if ids == nil {
		ids = []string{}
	}
	return api.CustomList{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		ClubIDs:     ids,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

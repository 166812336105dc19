package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/pkg/api"
)

// ListCustomLists returns the custom lists of the current user
func (c *Client) ListCustomLists(ctx context.Context) ([]models.CustomList, error) {
	var resp api.ListsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/lists", nil, &resp); err != nil {
		return nil, fmt.Errorf("list custom lists request failed: %w", err)
	}
	lists := make([]models.CustomList, 0, len(resp.Lists))
	for _, l := range resp.Lists {
		lists = append(lists, listFromAPI(l))
	}
	return lists, nil
}

// CreateList creates a custom list
func (c *Client) CreateList(ctx context.Context, list models.CustomList) (models.CustomList, error) {
	req := listRequest(list)
	if optimistic.IsTemporaryID(list.ID) {
		req.ClientID = list.ID
	}

	var resp api.CustomList
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/lists", req, &resp); err != nil {
		return models.CustomList{}, fmt.Errorf("create list request failed: %w", err)
	}
	return listFromAPI(resp), nil
}

// UpdateList replaces a custom list
func (c *Client) UpdateList(ctx context.Context, list models.CustomList) (models.CustomList, error) {
	var resp api.CustomList
	path := "/api/v1/lists/" + escape(list.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, listRequest(list), &resp); err != nil {
		return models.CustomList{}, fmt.Errorf("update list request failed: %w", err)
	}
	return listFromAPI(resp), nil
}

// DeleteList deletes a custom list
func (c *Client) DeleteList(ctx context.Context, id string) error {
	if err := c.deleteRequest(ctx, "/api/v1/lists/"+escape(id)); err != nil {
		return fmt.Errorf("delete list request failed: %w", err)
	}
	return nil
}

func listRequest(list models.CustomList) api.ListRequest {
	clubIDs := list.ClubIDs
	if clubIDs == nil {
		clubIDs = []string{}
	}
	return api.ListRequest{
		Name:        list.Name,
		Description: list.Description,
		ClubIDs:     clubIDs,
	}
}

func listFromAPI(list api.CustomList) models.CustomList {
	return models.CustomList{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		ClubIDs:     slices.Clone(list.ClubIDs),
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

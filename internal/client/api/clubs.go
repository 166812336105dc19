package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/pkg/api"
)

// ListClubs returns all clubs
func (c *Client) ListClubs(ctx context.Context) ([]models.Club, error) {
	var resp api.ClubsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/clubs", nil, &resp); err != nil {
		return nil, fmt.Errorf("list clubs request failed: %w", err)
	}
	clubs := make([]models.Club, 0, len(resp.Clubs))
	for _, club := range resp.Clubs {
		clubs = append(clubs, clubFromAPI(club))
	}
	return clubs, nil
}

// CreateClub creates a club. A temporary id is sent as client_id so the
// server can deduplicate replays.
func (c *Client) CreateClub(ctx context.Context, club models.Club) (models.Club, error) {
	req := clubRequest(club)
	if optimistic.IsTemporaryID(club.ID) {
		req.ClientID = club.ID
	}

	var resp api.Club
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/clubs", req, &resp); err != nil {
		return models.Club{}, fmt.Errorf("create club request failed: %w", err)
	}
	return clubFromAPI(resp), nil
}

// UpdateClub replaces the editable fields of a club
func (c *Client) UpdateClub(ctx context.Context, club models.Club) (models.Club, error) {
	var resp api.Club
	path := "/api/v1/clubs/" + escape(club.ID)
	if err := c.doRequest(ctx, http.MethodPut, path, clubRequest(club), &resp); err != nil {
		return models.Club{}, fmt.Errorf("update club request failed: %w", err)
	}
	return clubFromAPI(resp), nil
}

// DeleteClub deletes a club
func (c *Client) DeleteClub(ctx context.Context, id string) error {
	if err := c.deleteRequest(ctx, "/api/v1/clubs/"+escape(id)); err != nil {
		return fmt.Errorf("delete club request failed: %w", err)
	}
	return nil
}

func clubRequest(club models.Club) api.ClubRequest {
	return api.ClubRequest{
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		City:        club.City,
		OwnerID:     club.OwnerID,
	}
}

func clubFromAPI(club api.Club) models.Club {
	return models.Club{
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

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/clubsync/internal/models"
	"github.com/iudanet/clubsync/pkg/api"
)

// ListFavorites returns the favorites of the current user
func (c *Client) ListFavorites(ctx context.Context) ([]models.Favorite, error) {
	var resp api.FavoritesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/favorites", nil, &resp); err != nil {
		return nil, fmt.Errorf("list favorites request failed: %w", err)
	}
	favorites := make([]models.Favorite, 0, len(resp.Favorites))
	for _, f := range resp.Favorites {
		favorites = append(favorites, models.Favorite{ID: f.ID, ClubID: f.ClubID, CreatedAt: f.CreatedAt})
	}
	return favorites, nil
}

// AddFavorite marks a club as favorite
func (c *Client) AddFavorite(ctx context.Context, clubID string) (models.Favorite, error) {
	var resp api.Favorite
	req := api.FavoriteRequest{ClubID: clubID}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/favorites", req, &resp); err != nil {
		return models.Favorite{}, fmt.Errorf("add favorite request failed: %w", err)
	}
	return models.Favorite{ID: resp.ID, ClubID: resp.ClubID, CreatedAt: resp.CreatedAt}, nil
}

// RemoveFavorite unmarks a club
func (c *Client) RemoveFavorite(ctx context.Context, clubID string) error {
	if err := c.deleteRequest(ctx, "/api/v1/favorites/"+escape(clubID)); err != nil {
		return fmt.Errorf("remove favorite request failed: %w", err)
	}
	return nil
}

package api

import "time"

// Favorite представляет избранный клуб
type Favorite struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
}

// FavoriteRequest представляет запрос на добавление в избранное
type FavoriteRequest struct {
	ClubID string `json:"club_id" validate:"required"`
}

// FavoritesResponse представляет список избранного
type FavoritesResponse struct {
	Favorites []Favorite `json:"favorites"`
}

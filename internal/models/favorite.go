package models

import "time"

// Favorite marks a club as favorite for the current user.
type Favorite struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	ClubID    string    `json:"club_id"`
}

// FavoriteAction is the kind of favorite mutation queued while offline.
type FavoriteAction string

const (
	FavoriteAdd    FavoriteAction = "add"
	FavoriteRemove FavoriteAction = "remove"
)

// FavoritePayload is the queue payload for favorite actions.
type FavoritePayload struct {
	ClubID string `json:"club_id"`
}

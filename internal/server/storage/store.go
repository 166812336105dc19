// Package storage defines the persistence ports of the reference backend.
package storage

import (
	"context"

	"github.com/iudanet/clubsync/internal/models"
)

// ClubStorage persists the clubs catalogue
type ClubStorage interface {
	// ListClubs returns all clubs ordered by creation time
	ListClubs(ctx context.Context) ([]models.Club, error)

	// CreateClub stores a new club with a server generated id.
	// A non-empty clientID makes the call idempotent: a second call with the
	// same clientID returns the club created by the first one.
	CreateClub(ctx context.Context, clientID string, club models.Club) (models.Club, error)

	// UpdateClub replaces the editable fields of a club.
	// Returns ErrNotFound if the club doesn't exist
	UpdateClub(ctx context.Context, club models.Club) (models.Club, error)

	// DeleteClub removes a club together with its favorite mark.
	// Returns ErrNotFound if the club doesn't exist
	DeleteClub(ctx context.Context, id string) error
}

// FavoriteStorage persists favorite marks
type FavoriteStorage interface {
	ListFavorites(ctx context.Context) ([]models.Favorite, error)

	// AddFavorite marks a club as favorite; adding it twice returns the
	// existing mark. Returns ErrClubNotFound for an unknown club
	AddFavorite(ctx context.Context, clubID string) (models.Favorite, error)

	// RemoveFavorite returns ErrNotFound if the club is not a favorite
	RemoveFavorite(ctx context.Context, clubID string) error
}

// ListStorage persists custom lists
type ListStorage interface {
	ListLists(ctx context.Context) ([]models.CustomList, error)
	CreateList(ctx context.Context, clientID string, list models.CustomList) (models.CustomList, error)
	UpdateList(ctx context.Context, list models.CustomList) (models.CustomList, error)
	DeleteList(ctx context.Context, id string) error
}

//go:generate moq -out store_mock.go . Store

// Store is everything the backend persists
type Store interface {
	ClubStorage
	FavoriteStorage
	ListStorage

	Ping(ctx context.Context) error
	Close() error
}

package storage

import "errors"

// Common storage errors
var (
	// ErrNotFound indicates that the requested club, favorite or list does not exist
	ErrNotFound = errors.New("not found")

	// ErrClubNotFound indicates that a favorite or list refers to an unknown club
	ErrClubNotFound = errors.New("club not found")
)

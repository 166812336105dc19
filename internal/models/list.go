package models

import "time"

// CustomList is a user-defined named collection of clubs.
type CustomList struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClubIDs     []string  `json:"club_ids"`
}

// EntityID returns the list identifier.
func (l CustomList) EntityID() string {
	return l.ID
}

// Clone создает глубокую копию списка
func (l *CustomList) Clone() *CustomList {
	if l == nil {
		return nil
	}
	clone := *l
	if l.ClubIDs != nil {
		clone.ClubIDs = make([]string, len(l.ClubIDs))
		copy(clone.ClubIDs, l.ClubIDs)
	}
	return &clone
}

// ListDraft is the form data a caller supplies to create a custom list.
type ListDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ClubIDs     []string `json:"club_ids"`
}

package optimistic

import (
	"time"
)

// note тестовая сущность
type note struct {
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tags      []string  `json:"tags"`
	Stars     int       `json:"stars"`
}

func (n note) EntityID() string { return n.ID }

type noteDraft struct {
	Title string
}

type noteAdapter struct{}

func (noteAdapter) Build(tempID string, draft noteDraft, now time.Time) note {
	return note{ID: tempID, Title: draft.Title, UpdatedAt: now}
}

func (noteAdapter) WithID(n note, id string) note {
	n.ID = id
	return n
}

func (noteAdapter) Touch(n note, now time.Time) note {
	n.UpdatedAt = now
	return n
}

var testNow = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func ids(items []note) []string {
	result := make([]string, 0, len(items))
	for _, n := range items {
		result = append(result, n.ID)
	}
	return result
}

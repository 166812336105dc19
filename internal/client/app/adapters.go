package app

import (
	"slices"
	"time"

	"github.com/iudanet/clubsync/internal/client/optimistic"
	"github.com/iudanet/clubsync/internal/models"
)

// ClubAdapter builds club entities for optimistic mutations.
type ClubAdapter struct{}

var _ optimistic.Adapter[models.Club, models.ClubDraft] = ClubAdapter{}

// Build returns a club from draft with a zero member count.
func (ClubAdapter) Build(tempID string, draft models.ClubDraft, now time.Time) models.Club {
	return models.Club{
		ID:          tempID,
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		City:        draft.City,
		OwnerID:     draft.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (ClubAdapter) WithID(club models.Club, id string) models.Club {
	club.ID = id
	return club
}

func (ClubAdapter) Touch(club models.Club, now time.Time) models.Club {
	club.UpdatedAt = now
	return club
}

// ListAdapter builds custom list entities for optimistic mutations.
type ListAdapter struct{}

var _ optimistic.Adapter[models.CustomList, models.ListDraft] = ListAdapter{}

// Build returns a list from draft; the club ids are copied.
func (ListAdapter) Build(tempID string, draft models.ListDraft, now time.Time) models.CustomList {
	clubIDs := slices.Clone(draft.ClubIDs)
	if clubIDs == nil {
		clubIDs = []string{}
	}
	return models.CustomList{
		ID:          tempID,
		Name:        draft.Name,
		Description: draft.Description,
		ClubIDs:     clubIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (ListAdapter) WithID(list models.CustomList, id string) models.CustomList {
	list.ID = id
	return list
}

func (ListAdapter) Touch(list models.CustomList, now time.Time) models.CustomList {
	list.UpdatedAt = now
	return list
}

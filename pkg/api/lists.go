package api

import "time"

// CustomList представляет пользовательский список клубов
type CustomList struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClubIDs     []string  `json:"club_ids"`
}

// ListRequest представляет запрос на создание или изменение списка
type ListRequest struct {
	ClientID    string   `json:"client_id,omitempty"`
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	ClubIDs     []string `json:"club_ids" validate:"dive,required"`
}

// ListsResponse представляет набор пользовательских списков
type ListsResponse struct {
	Lists []CustomList `json:"lists"`
}

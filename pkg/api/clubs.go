package api

import "time"

// Club представляет клуб в ответах сервера
type Club struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	City        string    `json:"city"`
	OwnerID     string    `json:"owner_id"`
	MemberCount int       `json:"member_count"`
}

// ClubRequest представляет запрос на создание или изменение клуба
type ClubRequest struct {
	ClientID    string `json:"client_id,omitempty"` // временный id, назначенный клиентом
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Category    string `json:"category" validate:"max=100"`
	City        string `json:"city" validate:"max=100"`
	OwnerID     string `json:"owner_id,omitempty"`
}

// ClubsResponse представляет список клубов
type ClubsResponse struct {
	Clubs []Club `json:"clubs"`
}

package models

import "time"

// Club представляет клуб, отображаемый в каталоге.
// Используется как основная сущность read-model на клиенте.
type Club struct {
	CreatedAt   time.Time `json:"created_at"`  // CreatedAt время создания записи
	UpdatedAt   time.Time `json:"updated_at"`  // UpdatedAt время последнего изменения
	ID          string    `json:"id"`          // ID идентификатор клуба (серверный или temp-*)
	Name        string    `json:"name"`        // Name название клуба
	Description string    `json:"description"` // Description описание
	Category    string    `json:"category"`    // Category категория (например, "sport", "books")
	City        string    `json:"city"`        // City город
	OwnerID     string    `json:"owner_id"`    // OwnerID владелец клуба
	MemberCount int       `json:"member_count"`
}

// EntityID returns the club identifier.
func (c Club) EntityID() string {
	return c.ID
}

// Clone создает копию клуба (все поля значимые, поэтому достаточно копирования)
func (c *Club) Clone() *Club {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// ClubDraft is the form data a caller supplies to create a club.
type ClubDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	OwnerID     string `json:"owner_id"`
}

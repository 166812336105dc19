package models

import (
	"encoding/json"
	"time"
)

// MutationType is the kind of a queued or optimistic mutation.
type MutationType string

const (
	MutationCreate MutationType = "create"
	MutationUpdate MutationType = "update"
	MutationDelete MutationType = "delete"
)

// Valid reports whether t is one of the known mutation types.
func (t MutationType) Valid() bool {
	switch t {
	case MutationCreate, MutationUpdate, MutationDelete:
		return true
	}
	return false
}

// Resource names used both as snapshot namespaces and queue resources.
const (
	ResourceClubs       = "clubs"
	ResourceFavorites   = "favorites"
	ResourceCustomLists = "customLists"
)

// MetadataLastFullSync хранит время последней полной синхронизации (unix millis)
const MetadataLastFullSync = "lastFullSync"

// MetadataIDMapPrefix ключ соответствия временного id серверному: "idmap:" + временный id
const MetadataIDMapPrefix = "idmap:"

// SyncQueueItem представляет мутацию, записанную в offline режиме
// и ожидающую воспроизведения на сервере.
type SyncQueueItem struct {
	CreatedAt   time.Time       `json:"created_at"`  // CreatedAt время постановки в очередь
	ID          string          `json:"id"`          // ID локально сгенерированный UUID
	Type        MutationType    `json:"type"`        // Type create|update|delete
	Resource    string          `json:"resource"`    // Resource логическое имя ресурса
	LastError   string          `json:"last_error"`  // LastError текст последней ошибки воспроизведения
	Data        json.RawMessage `json:"data"`        // Data полезная нагрузка мутации
	Seq         uint64          `json:"seq"`         // Seq порядковый номер в очереди (FIFO)
	Attempts    int             `json:"attempts"`    // Attempts количество неудачных попыток
	Quarantined bool            `json:"quarantined"` // Quarantined исключена из воспроизведения после MaxAttempts
}

// Clone создает глубокую копию элемента очереди
func (i *SyncQueueItem) Clone() *SyncQueueItem {
	if i == nil {
		return nil
	}
	clone := *i
	if i.Data != nil {
		clone.Data = make(json.RawMessage, len(i.Data))
		copy(clone.Data, i.Data)
	}
	return &clone
}

// Package optimistic applies create/update/delete mutations to the local
// read-model immediately and reconciles them once the server answers.
package optimistic

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TempIDPrefix marks identifiers generated locally before the server
// assigns a real one. Server ids never carry it.
const TempIDPrefix = "temp-"

// Entity is anything the read-model can hold. Implementations must be
// value types: the coordinator copies them to capture pre-images.
type Entity interface {
	EntityID() string
}

// Adapter supplies the entity specific steps of an optimistic mutation.
type Adapter[T Entity, D any] interface {
	// Build synthesizes a complete entity from draft with defaulted fields.
	Build(tempID string, draft D, now time.Time) T
	// WithID returns a copy of entity carrying id.
	WithID(entity T, id string) T
	// Touch returns a copy of entity with its updated-at marker set to now.
	Touch(entity T, now time.Time) T
}

// ServerOp is the caller supplied network call confirming a mutation.
type ServerOp[T any] func(ctx context.Context) (T, error)

// NewTemporaryID returns a fresh id from the temporary namespace.
func NewTemporaryID() string {
	return TempIDPrefix + uuid.New().String()
}

// IsTemporaryID reports whether id was generated by NewTemporaryID.
func IsTemporaryID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

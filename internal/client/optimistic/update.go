package optimistic

import (
	"sync"

	"github.com/iudanet/clubsync/internal/models"
)

// Compensation describes how to undo an optimistic change. It is data,
// not a closure: the coordinator interprets it on rollback.
//
//	create: remove EntityID (the temporary id)
//	update: restore PreImage in place of EntityID
//	delete: re-insert PreImage
type Compensation[T Entity] struct {
	PreImage *T
	Kind     models.MutationType
	EntityID string
}

// Update is an optimistic change awaiting its server confirmation.
// It is settled exactly once, by Commit or Rollback.
type Update[T Entity] struct {
	Applied      T
	PreImage     *T
	Compensation Compensation[T]
	release      func()
	Type         models.MutationType
	ID           string // временный id для create, реальный для update/delete
	mu           sync.Mutex
	settled      bool
}

// Settled reports whether the update was committed or rolled back.
func (u *Update[T]) Settled() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.settled
}

// settle marks the update settled and releases the entity lock.
// Returns false if it was already settled.
func (u *Update[T]) settle() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.settled {
		return false
	}
	u.settled = true
	if u.release != nil {
		u.release()
	}
	return true
}

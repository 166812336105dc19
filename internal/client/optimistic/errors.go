package optimistic

import "errors"

var (
	// ErrNotFound indicates that the entity is not in the read-model.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidChanges indicates that partial changes do not fit the entity.
	ErrInvalidChanges = errors.New("invalid changes")

	// ErrAlreadySettled is returned when an update is committed or rolled back twice.
	ErrAlreadySettled = errors.New("optimistic update already settled")

	// ErrRollbackDivergence reports that rollback found the entity in an
	// unexpected state and could only repair it best-effort.
	ErrRollbackDivergence = errors.New("rollback divergence")
)

package offline

import (
	"errors"
	"fmt"
)

var (
	// ErrOffline is reported when a sync pass is requested or interrupted
	// while the backend is considered unreachable.
	ErrOffline = errors.New("offline")

	// ErrBackendUnreachable marks transport-level backend failures.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrInvalidQueueRequest indicates an unknown mutation type or empty resource.
	ErrInvalidQueueRequest = errors.New("invalid sync queue request")

	// ErrUnsupportedMutation is recorded on a queue item whose resource/type
	// pair has no backend operation.
	ErrUnsupportedMutation = errors.New("unsupported mutation")
)

// SyncPassError reports that a sync pass could not make progress. It is a
// transient condition: the queue is preserved and the next pass retries.
type SyncPassError struct {
	Err       error
	Stage     string // offline, replay, refresh
	Remaining int    // элементов осталось в очереди
}

func (e *SyncPassError) Error() string {
	return fmt.Sprintf("sync pass failed at %s stage (%d queued): %v", e.Stage, e.Remaining, e.Err)
}

func (e *SyncPassError) Unwrap() error {
	return e.Err
}

// IsSyncPassFailure reports whether err is a SyncPassError.
func IsSyncPassFailure(err error) bool {
	var passErr *SyncPassError
	return errors.As(err, &passErr)
}

package queue

import (
	"errors"
)

var (
	// ErrQueueNotFound is returned by the repository when no queue document
	// exists for a (group, user) pair. The app layer substitutes an empty
	// default, so callers normally never see this.
	ErrQueueNotFound = errors.New("autodraft queue not found")

	// ErrStorageUnavailable wraps transient store I/O failures.
	ErrStorageUnavailable = errors.New("autodraft queue store unavailable")
)

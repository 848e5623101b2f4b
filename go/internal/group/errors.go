package group

import (
	"errors"
)

var (
	// ErrGroupNotFound is returned when no group exists for a slug.
	ErrGroupNotFound = errors.New("group not found")

	// ErrVersionConflict is returned when a write carries a stale version.
	// The caller should re-read the group and retry.
	ErrVersionConflict = errors.New("group was modified concurrently")

	// ErrGroupExists is returned when creating a group whose slug is taken.
	ErrGroupExists = errors.New("group already exists")

	// ErrDuplicateUser is returned when two member names collide
	// case-insensitively.
	ErrDuplicateUser = errors.New("duplicate user name in group")

	// ErrInvalidSelection is returned when a pick references a contestant
	// that is not part of the group's season roster.
	ErrInvalidSelection = errors.New("contestant is not in the season roster")

	// ErrStorageUnavailable wraps transient store I/O failures. It is the
	// only error class eligible for caller-driven retry without a re-read.
	ErrStorageUnavailable = errors.New("group store unavailable")
)

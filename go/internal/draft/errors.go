package draft

import (
	"errors"
)

// Engine errors. All validation failures are typed sentinels so callers can
// map them to user-facing responses with errors.Is.
var (
	ErrNoActiveRound      = errors.New("no active draft round")
	ErrRoundActive        = errors.New("an incomplete round is still active")
	ErrNoUsers            = errors.New("group has no users")
	ErrUnknownUser        = errors.New("user is not a member of this group")
	ErrNotYourTurn        = errors.New("it is not this user's turn to pick")
	ErrAlreadyDrafted     = errors.New("contestant has already been drafted")
	ErrQueueLocked        = errors.New("autodraft queue is locked")
	ErrInconsistentRounds = errors.New("draft rounds violate the single-incomplete-round invariant")
)

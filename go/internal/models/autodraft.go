package models

import (
	"time"
)

// AutodraftQueue is a user's pre-declared, priority-ordered fallback
// selections. While Locked is true the contestant list must not change;
// locking signals the queue is finalized for consumption.
type AutodraftQueue struct {
	GroupSlug     string    `json:"group_slug"`
	UserName      string    `json:"user_name"`
	ContestantIDs []int     `json:"contestant_ids"`
	Locked        bool      `json:"locked"`
	UpdatedAt     time.Time `json:"updated_at"`
}

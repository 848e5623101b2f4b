package events

import (
	"time"
)

// Event types published on the draft stream.
const (
	TypeGroupCreated   = "group.created"
	TypeRoundStarted   = "round.started"
	TypeRoundCompleted = "round.completed"
	TypePickMade       = "pick.made"
	TypeQueueLocked    = "queue.locked"
)

// GroupCreatedPayload is the payload for a group.created event.
type GroupCreatedPayload struct {
	GroupSlug string    `json:"group_slug"`
	GroupName string    `json:"group_name"`
	SeasonID  string    `json:"season_id,omitempty"`
	UserCount int       `json:"user_count"`
	CreatedAt time.Time `json:"created_at"`
}

// RoundStartedPayload is the payload for a round.started event.
type RoundStartedPayload struct {
	GroupSlug   string    `json:"group_slug"`
	RoundNumber int       `json:"round_number"`
	StartedAt   time.Time `json:"started_at"`
}

// RoundCompletedPayload is the payload for a round.completed event.
type RoundCompletedPayload struct {
	GroupSlug   string    `json:"group_slug"`
	RoundNumber int       `json:"round_number"`
	TotalPicks  int       `json:"total_picks"`
	CompletedAt time.Time `json:"completed_at"`
}

// PickMadePayload is the payload for a pick.made event. Auto marks picks
// committed by the autodraft sweep rather than a live user.
type PickMadePayload struct {
	GroupSlug    string    `json:"group_slug"`
	UserName     string    `json:"user_name"`
	ContestantID int       `json:"contestant_id"`
	RoundNumber  int       `json:"round_number"`
	PickNumber   int       `json:"pick_number"`
	Auto         bool      `json:"auto"`
	MadeAt       time.Time `json:"made_at"`
}

// QueueLockedPayload is the payload for a queue.locked event.
type QueueLockedPayload struct {
	GroupSlug string    `json:"group_slug"`
	UserName  string    `json:"user_name"`
	Locked    bool      `json:"locked"`
	QueueSize int       `json:"queue_size"`
	UpdatedAt time.Time `json:"updated_at"`
}

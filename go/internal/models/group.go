package models

import (
	"time"
)

// User is a member of a group. Identity is the name itself: no two users in
// the same group may have names that collide case-insensitively.
type User struct {
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// DraftPick represents a single committed pick within a round.
type DraftPick struct {
	UserName     string `json:"user_name"`
	ContestantID int    `json:"contestant_id"`
	PickNumber   int    `json:"pick_number"` // 1-based position within the round
	Auto         bool   `json:"auto,omitempty"`
}

// DraftRound is one full cycle of picks, one per user, in rotation order.
// Complete is true exactly when len(Picks) == len(group.Users).
type DraftRound struct {
	RoundNumber int         `json:"round_number"` // 1-based, strictly sequential
	Picks       []DraftPick `json:"picks"`
	Complete    bool        `json:"complete"`
}

// Group is a set of users running one shared draft. The Users ordering is
// significant: it defines draft position and is fixed at group creation.
type Group struct {
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	SeasonID    string       `json:"season_id,omitempty"`
	Users       []User       `json:"users"`
	DraftRounds []DraftRound `json:"draft_rounds"`
	CreatedAt   time.Time    `json:"created_at"`

	// Version is an optimistic concurrency token. Every committed write
	// increments it; a stale write is rejected by the store.
	Version int64 `json:"version"`
}

// UserByName returns the user with the exact stored name, or nil.
func (g *Group) UserByName(name string) *User {
	for i := range g.Users {
		if g.Users[i].Name == name {
			return &g.Users[i]
		}
	}
	return nil
}

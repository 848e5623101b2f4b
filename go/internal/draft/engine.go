// Package draft implements the turn-order and pick-resolution engine: whose
// turn it is, committing picks, round lifecycle, and autodraft resolution.
// Everything here is pure in-memory logic over models.Group; persistence is
// the caller's concern.
package draft

import (
	"github.com/castdraft/castdraft/go/internal/models"
)

// TurnInfo describes the pick slot currently on the clock.
type TurnInfo struct {
	Round     *models.DraftRound `json:"round"`
	UserIndex int                `json:"user_index"`
	UserName  string             `json:"user_name"`
}

// ResolveTurn computes whose turn it is from group state alone. It returns
// (nil, nil) when no rounds exist or every round is complete. The draft uses
// a rotating order, not a snake: round R starts at users[(R-1) mod N] and
// proceeds forward, wrapping modulo the user count.
func ResolveTurn(g *models.Group) (*TurnInfo, error) {
	current := -1
	for i := range g.DraftRounds {
		if !g.DraftRounds[i].Complete {
			current = i
			break
		}
	}
	if current == -1 {
		return nil, nil
	}
	// Rounds complete strictly in order, so the one incomplete round must be
	// the last. Anything else means the stored document is corrupt.
	if current != len(g.DraftRounds)-1 {
		return nil, ErrInconsistentRounds
	}

	round := &g.DraftRounds[current]
	totalUsers := len(g.Users)
	if totalUsers == 0 {
		return nil, ErrNoUsers
	}

	positionInRound := len(round.Picks) + 1 // 1-based index of the next pick
	rotationOffset := (round.RoundNumber - 1) % totalUsers
	userIndex := (rotationOffset + positionInRound - 1) % totalUsers

	return &TurnInfo{
		Round:     round,
		UserIndex: userIndex,
		UserName:  g.Users[userIndex].Name,
	}, nil
}

// CreateRound appends the next draft round to the group. A new round may not
// start while one is still open, and a zero-user group can never complete a
// round, so both are rejected.
func CreateRound(g *models.Group) error {
	if len(g.Users) == 0 {
		return ErrNoUsers
	}
	for i := range g.DraftRounds {
		if !g.DraftRounds[i].Complete {
			return ErrRoundActive
		}
	}
	g.DraftRounds = append(g.DraftRounds, models.DraftRound{
		RoundNumber: len(g.DraftRounds) + 1,
		Picks:       []models.DraftPick{},
	})
	return nil
}

// MakePick validates and appends a pick to the current round, marking the
// round complete when every user has picked. The pick must come from the
// user the rotation puts on the clock, for a contestant nobody holds yet.
func MakePick(g *models.Group, userName string, contestantID int, auto bool) error {
	turn, err := ResolveTurn(g)
	if err != nil {
		return err
	}
	if turn == nil {
		return ErrNoActiveRound
	}
	if g.UserByName(userName) == nil {
		return ErrUnknownUser
	}
	if turn.UserName != userName {
		return ErrNotYourTurn
	}
	if _, taken := DraftedIDs(g)[contestantID]; taken {
		return ErrAlreadyDrafted
	}

	round := turn.Round
	round.Picks = append(round.Picks, models.DraftPick{
		UserName:     userName,
		ContestantID: contestantID,
		PickNumber:   len(round.Picks) + 1,
		Auto:         auto,
	})
	round.Complete = len(round.Picks) == len(g.Users)
	return nil
}

// DraftedIDs returns the set of contestant ids claimed in any round.
func DraftedIDs(g *models.Group) map[int]struct{} {
	drafted := make(map[int]struct{})
	for i := range g.DraftRounds {
		for _, pick := range g.DraftRounds[i].Picks {
			drafted[pick.ContestantID] = struct{}{}
		}
	}
	return drafted
}

// Undrafted filters a roster down to contestants no user holds, preserving
// roster order.
func Undrafted(g *models.Group, contestants []models.Contestant) []models.Contestant {
	drafted := DraftedIDs(g)
	remaining := make([]models.Contestant, 0, len(contestants))
	for _, c := range contestants {
		if _, taken := drafted[c.ID]; !taken {
			remaining = append(remaining, c)
		}
	}
	return remaining
}

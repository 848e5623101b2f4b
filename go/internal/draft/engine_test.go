package draft

import (
	"fmt"
	"testing"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroup(userNames ...string) *models.Group {
	g := &models.Group{
		Name: "Test Group",
		Slug: "test-group",
	}
	for _, name := range userNames {
		g.Users = append(g.Users, models.User{Name: name})
	}
	return g
}

func TestResolveTurn_NoRounds(t *testing.T) {
	g := newGroup("Alice", "Bob")

	turn, err := ResolveTurn(g)
	require.NoError(t, err)
	assert.Nil(t, turn)
}

func TestResolveTurn_AllRoundsComplete(t *testing.T) {
	g := newGroup("Alice", "Bob")
	g.DraftRounds = []models.DraftRound{
		{RoundNumber: 1, Picks: []models.DraftPick{
			{UserName: "Alice", ContestantID: 1, PickNumber: 1},
			{UserName: "Bob", ContestantID: 2, PickNumber: 2},
		}, Complete: true},
	}

	turn, err := ResolveTurn(g)
	require.NoError(t, err)
	assert.Nil(t, turn)
}

func TestResolveTurn_RotationLaw(t *testing.T) {
	// Round R starts at users[(R-1) mod N] and each of the N slots in the
	// round lands on a distinct user.
	for n := 1; n <= 5; n++ {
		users := make([]string, n)
		for i := range users {
			users[i] = fmt.Sprintf("user-%d", i)
		}

		for r := 1; r <= 7; r++ {
			g := newGroup(users...)
			for prev := 1; prev < r; prev++ {
				g.DraftRounds = append(g.DraftRounds, models.DraftRound{
					RoundNumber: prev,
					Picks:       make([]models.DraftPick, n),
					Complete:    true,
				})
			}
			g.DraftRounds = append(g.DraftRounds, models.DraftRound{RoundNumber: r})

			seen := make(map[int]bool)
			for slot := 0; slot < n; slot++ {
				g.DraftRounds[r-1].Picks = make([]models.DraftPick, slot)

				turn, err := ResolveTurn(g)
				require.NoError(t, err)
				require.NotNil(t, turn)
				assert.False(t, seen[turn.UserIndex], "N=%d R=%d slot=%d repeated user index %d", n, r, slot, turn.UserIndex)
				seen[turn.UserIndex] = true

				if slot == 0 {
					assert.Equal(t, (r-1)%n, turn.UserIndex, "N=%d R=%d wrong starting index", n, r)
				}
			}
		}
	}
}

func TestResolveTurn_Idempotent(t *testing.T) {
	g := newGroup("Alice", "Bob", "Carol")
	g.DraftRounds = []models.DraftRound{{RoundNumber: 1, Picks: []models.DraftPick{
		{UserName: "Alice", ContestantID: 4, PickNumber: 1},
	}}}

	first, err := ResolveTurn(g)
	require.NoError(t, err)
	second, err := ResolveTurn(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveTurn_InconsistentRounds(t *testing.T) {
	g := newGroup("Alice", "Bob")
	g.DraftRounds = []models.DraftRound{
		{RoundNumber: 1, Complete: false},
		{RoundNumber: 2, Complete: true},
	}

	_, err := ResolveTurn(g)
	assert.ErrorIs(t, err, ErrInconsistentRounds)
}

func TestCreateRound(t *testing.T) {
	g := newGroup("Alice", "Bob")

	require.NoError(t, CreateRound(g))
	require.Len(t, g.DraftRounds, 1)
	assert.Equal(t, 1, g.DraftRounds[0].RoundNumber)
	assert.Empty(t, g.DraftRounds[0].Picks)
	assert.False(t, g.DraftRounds[0].Complete)
}

func TestCreateRound_RoundStillActive(t *testing.T) {
	g := newGroup("Alice", "Bob")
	require.NoError(t, CreateRound(g))

	assert.ErrorIs(t, CreateRound(g), ErrRoundActive)
	assert.Len(t, g.DraftRounds, 1)
}

func TestCreateRound_NoUsers(t *testing.T) {
	g := newGroup()
	assert.ErrorIs(t, CreateRound(g), ErrNoUsers)
}

func TestMakePick_Validation(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *models.Group
		userName string
		wantErr  error
	}{
		{
			name:     "no rounds",
			setup:    func() *models.Group { return newGroup("Alice", "Bob") },
			userName: "Alice",
			wantErr:  ErrNoActiveRound,
		},
		{
			name: "unknown user",
			setup: func() *models.Group {
				g := newGroup("Alice", "Bob")
				_ = CreateRound(g)
				return g
			},
			userName: "Mallory",
			wantErr:  ErrUnknownUser,
		},
		{
			name: "user name match is case sensitive",
			setup: func() *models.Group {
				g := newGroup("Alice", "Bob")
				_ = CreateRound(g)
				return g
			},
			userName: "alice",
			wantErr:  ErrUnknownUser,
		},
		{
			name: "out of turn",
			setup: func() *models.Group {
				g := newGroup("Alice", "Bob")
				_ = CreateRound(g)
				return g
			},
			userName: "Bob",
			wantErr:  ErrNotYourTurn,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.setup()
			err := MakePick(g, tc.userName, 7, false)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMakePick_AlreadyDrafted(t *testing.T) {
	g := newGroup("Alice", "Bob")
	require.NoError(t, CreateRound(g))
	require.NoError(t, MakePick(g, "Alice", 7, false))

	assert.ErrorIs(t, MakePick(g, "Bob", 7, false), ErrAlreadyDrafted)
}

func TestMakePick_CompletesRoundOnFinalPick(t *testing.T) {
	g := newGroup("Alice", "Bob", "Carol")
	require.NoError(t, CreateRound(g))

	require.NoError(t, MakePick(g, "Alice", 1, false))
	assert.False(t, g.DraftRounds[0].Complete)

	require.NoError(t, MakePick(g, "Bob", 2, false))
	assert.False(t, g.DraftRounds[0].Complete)

	require.NoError(t, MakePick(g, "Carol", 3, false))
	assert.True(t, g.DraftRounds[0].Complete)
}

func TestDraftScenario_TwoUsersTwoRounds(t *testing.T) {
	g := newGroup("Alice", "Bob")

	require.NoError(t, CreateRound(g))
	round := g.DraftRounds[0]
	assert.Equal(t, 1, round.RoundNumber)
	assert.Empty(t, round.Picks)
	assert.False(t, round.Complete)

	require.NoError(t, MakePick(g, "Alice", 7, false))
	assert.Equal(t, models.DraftPick{UserName: "Alice", ContestantID: 7, PickNumber: 1}, g.DraftRounds[0].Picks[0])
	assert.False(t, g.DraftRounds[0].Complete)

	require.NoError(t, MakePick(g, "Bob", 3, false))
	assert.Equal(t, models.DraftPick{UserName: "Bob", ContestantID: 3, PickNumber: 2}, g.DraftRounds[0].Picks[1])
	assert.True(t, g.DraftRounds[0].Complete)

	// No incomplete round left, so nobody is on the clock.
	turn, err := ResolveTurn(g)
	require.NoError(t, err)
	assert.Nil(t, turn)

	// Round 2 rotates the starting picker to Bob.
	require.NoError(t, CreateRound(g))
	turn, err = ResolveTurn(g)
	require.NoError(t, err)
	require.NotNil(t, turn)
	assert.Equal(t, 1, turn.UserIndex)
	assert.Equal(t, "Bob", turn.UserName)
}

func TestUndrafted(t *testing.T) {
	g := newGroup("Alice", "Bob")
	require.NoError(t, CreateRound(g))
	require.NoError(t, MakePick(g, "Alice", 2, false))

	roster := []models.Contestant{
		{ID: 1, Name: "One"},
		{ID: 2, Name: "Two"},
		{ID: 3, Name: "Three"},
	}

	remaining := Undrafted(g, roster)
	require.Len(t, remaining, 2)
	assert.Equal(t, 1, remaining[0].ID)
	assert.Equal(t, 3, remaining[1].ID)
}

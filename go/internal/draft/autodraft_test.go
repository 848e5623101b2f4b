package draft

import (
	"testing"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSelection(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		toggle  int
		want    []int
	}{
		{name: "append to empty", initial: []int{}, toggle: 5, want: []int{5}},
		{name: "append below capacity", initial: []int{1, 2}, toggle: 3, want: []int{1, 2, 3}},
		{name: "remove existing", initial: []int{1, 2, 3}, toggle: 2, want: []int{1, 3}},
		{name: "remove first", initial: []int{1, 2}, toggle: 1, want: []int{2}},
		{name: "at capacity replaces last slot", initial: []int{1, 2, 3, 4}, toggle: 5, want: []int{1, 2, 3, 5}},
		{name: "at capacity removes existing", initial: []int{1, 2, 3, 4}, toggle: 4, want: []int{1, 2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := &models.AutodraftQueue{ContestantIDs: tc.initial}
			require.NoError(t, ToggleSelection(q, tc.toggle))
			assert.Equal(t, tc.want, q.ContestantIDs)
		})
	}
}

func TestToggleSelection_LockedQueueRejectsMutation(t *testing.T) {
	q := &models.AutodraftQueue{ContestantIDs: []int{1, 2}, Locked: true}

	assert.ErrorIs(t, ToggleSelection(q, 3), ErrQueueLocked)
	assert.Equal(t, []int{1, 2}, q.ContestantIDs)
}

func TestClear(t *testing.T) {
	q := &models.AutodraftQueue{ContestantIDs: []int{1, 2, 3}}

	require.NoError(t, Clear(q))
	assert.Empty(t, q.ContestantIDs)
}

func TestClear_LockedQueueRejectsMutation(t *testing.T) {
	q := &models.AutodraftQueue{ContestantIDs: []int{1, 2}, Locked: true}

	assert.ErrorIs(t, Clear(q), ErrQueueLocked)
	assert.Equal(t, []int{1, 2}, q.ContestantIDs)
}

func TestToggleLock(t *testing.T) {
	q := &models.AutodraftQueue{ContestantIDs: []int{1}}

	ToggleLock(q)
	assert.True(t, q.Locked)

	ToggleLock(q)
	assert.False(t, q.Locked)
}

func TestToggleLock_EmptyQueueAllowed(t *testing.T) {
	q := &models.AutodraftQueue{}

	ToggleLock(q)
	assert.True(t, q.Locked)
}

func TestResolveAutodraft(t *testing.T) {
	undrafted := func(ids ...int) map[int]struct{} {
		set := make(map[int]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		return set
	}

	tests := []struct {
		name      string
		queued    []int
		undrafted map[int]struct{}
		wantID    int
		wantOK    bool
	}{
		{name: "first preference available", queued: []int{5, 1, 9}, undrafted: undrafted(5, 1, 9), wantID: 5, wantOK: true},
		{name: "skips drafted preferences", queued: []int{5, 1, 9}, undrafted: undrafted(1, 9), wantID: 1, wantOK: true},
		{name: "none remain", queued: []int{5, 1, 9}, undrafted: undrafted(2, 3), wantOK: false},
		{name: "empty queue", queued: nil, undrafted: undrafted(1), wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := &models.AutodraftQueue{ContestantIDs: tc.queued, Locked: true}
			id, ok := ResolveAutodraft(q, tc.undrafted)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantID, id)
			}
		})
	}
}

package draft

import (
	"github.com/castdraft/castdraft/go/internal/models"
)

// MaxQueueSize caps an autodraft queue at four preferences.
const MaxQueueSize = 4

// ResolveAutodraft returns the first queued contestant that is still
// undrafted, in stored priority order. ok is false when no queued preference
// remains available. Only locked queues are eligible for auto-resolution;
// enforcing that is the caller's job since an unlocked queue is advisory.
func ResolveAutodraft(q *models.AutodraftQueue, undrafted map[int]struct{}) (int, bool) {
	for _, id := range q.ContestantIDs {
		if _, available := undrafted[id]; available {
			return id, true
		}
	}
	return 0, false
}

// ToggleSelection adds or removes a contestant from the queue. An id already
// present is removed. At capacity, the new id replaces the last slot rather
// than being dropped. Locked queues reject all content changes.
func ToggleSelection(q *models.AutodraftQueue, contestantID int) error {
	if q.Locked {
		return ErrQueueLocked
	}
	for i, id := range q.ContestantIDs {
		if id == contestantID {
			q.ContestantIDs = append(q.ContestantIDs[:i], q.ContestantIDs[i+1:]...)
			return nil
		}
	}
	if len(q.ContestantIDs) >= MaxQueueSize {
		q.ContestantIDs[len(q.ContestantIDs)-1] = contestantID
		return nil
	}
	q.ContestantIDs = append(q.ContestantIDs, contestantID)
	return nil
}

// Clear empties the queue. Locked queues reject the change.
func Clear(q *models.AutodraftQueue) error {
	if q.Locked {
		return ErrQueueLocked
	}
	q.ContestantIDs = []int{}
	return nil
}

// ToggleLock flips the queue's locked flag. Locking is always permitted,
// including on an empty queue; the engine imposes no content floor.
func ToggleLock(q *models.AutodraftQueue) {
	q.Locked = !q.Locked
}

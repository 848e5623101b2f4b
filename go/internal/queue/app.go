package queue

import (
	"context"
	"errors"

	"github.com/castdraft/castdraft/go/internal/draft"
	"github.com/castdraft/castdraft/go/internal/events"
	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Repository defines what the queue app needs from the queue store.
type Repository interface {
	GetQueue(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error)
	SaveQueue(ctx context.Context, q *models.AutodraftQueue) error
	DeleteQueue(ctx context.Context, slug, userName string) error
}

// App handles autodraft queue business logic. Queues are created lazily:
// reading a missing queue yields an empty, unlocked default.
type App struct {
	repo  Repository
	pub   events.Publisher
	clock clockwork.Clock
}

// NewApp creates a new queue App.
func NewApp(repo Repository, pub events.Publisher, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		pub:   pub,
		clock: clock,
	}
}

// GetQueue returns the stored queue for a (group, user) pair, or the empty
// default when none exists yet.
func (a *App) GetQueue(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error) {
	q, err := a.repo.GetQueue(ctx, slug, userName)
	if err != nil {
		if errors.Is(err, ErrQueueNotFound) {
			return &models.AutodraftQueue{
				GroupSlug:     slug,
				UserName:      userName,
				ContestantIDs: []int{},
				UpdatedAt:     a.clock.Now().UTC(),
			}, nil
		}
		return nil, err
	}
	return q, nil
}

// ToggleSelection adds or removes a contestant preference and persists the
// queue. Fails with draft.ErrQueueLocked while the queue is locked.
func (a *App) ToggleSelection(ctx context.Context, slug, userName string, contestantID int) (*models.AutodraftQueue, error) {
	return a.mutate(ctx, slug, userName, func(q *models.AutodraftQueue) error {
		return draft.ToggleSelection(q, contestantID)
	})
}

// ClearQueue empties the queue. Fails with draft.ErrQueueLocked while locked.
func (a *App) ClearQueue(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error) {
	return a.mutate(ctx, slug, userName, draft.Clear)
}

// ToggleLock flips the queue's locked flag and emits a queue.locked event so
// the draft stream records when preferences were finalized or reopened.
func (a *App) ToggleLock(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error) {
	q, err := a.mutate(ctx, slug, userName, func(q *models.AutodraftQueue) error {
		draft.ToggleLock(q)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := a.pub.Publish(ctx, events.TypeQueueLocked, events.QueueLockedPayload{
		GroupSlug: q.GroupSlug,
		UserName:  q.UserName,
		Locked:    q.Locked,
		QueueSize: len(q.ContestantIDs),
		UpdatedAt: q.UpdatedAt,
	}); err != nil {
		log.Error().Err(err).Str("group", slug).Str("user", userName).Msg("failed to publish queue.locked event")
	}
	return q, nil
}

func (a *App) mutate(ctx context.Context, slug, userName string, fn func(*models.AutodraftQueue) error) (*models.AutodraftQueue, error) {
	q, err := a.GetQueue(ctx, slug, userName)
	if err != nil {
		return nil, err
	}
	if err := fn(q); err != nil {
		return nil, err
	}
	q.UpdatedAt = a.clock.Now().UTC()
	if err := a.repo.SaveQueue(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

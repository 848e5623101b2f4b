package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/castdraft/castdraft/go/internal/draft"
	"github.com/castdraft/castdraft/go/internal/events"
	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Repository defines what the group app needs from the group store.
type Repository interface {
	GetGroup(ctx context.Context, slug string) (*models.Group, error)
	CreateGroup(ctx context.Context, g *models.Group) error
	UpdateGroup(ctx context.Context, g *models.Group) error
	DeleteGroup(ctx context.Context, slug string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// QueueSource supplies autodraft queues for the pick-commit sweep.
type QueueSource interface {
	GetQueue(ctx context.Context, slug, userName string) (*models.AutodraftQueue, error)
}

// RosterSource supplies the season contestant roster.
type RosterSource interface {
	ListContestants(ctx context.Context, seasonID string) ([]models.Contestant, error)
}

// App handles group business logic: creation, round lifecycle, and the
// pick-commit path including the autodraft sweep.
type App struct {
	repo   Repository
	queues QueueSource
	roster RosterSource
	pub    events.Publisher
	clock  clockwork.Clock
}

// NewApp creates a new group App.
func NewApp(repo Repository, queues QueueSource, roster RosterSource, pub events.Publisher, clock clockwork.Clock) *App {
	return &App{
		repo:   repo,
		queues: queues,
		roster: roster,
		pub:    pub,
		clock:  clock,
	}
}

// CreateGroup creates a group with the given members, generating a unique
// URL-safe slug from the name. Member ordering becomes the rotation order.
func (a *App) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("group name cannot be empty")
	}

	seen := make(map[string]struct{}, len(req.UserNames))
	users := make([]models.User, 0, len(req.UserNames))
	now := a.clock.Now().UTC()
	for _, name := range req.UserNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("user name cannot be empty")
		}
		folded := strings.ToLower(name)
		if _, dup := seen[folded]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUser, name)
		}
		seen[folded] = struct{}{}
		users = append(users, models.User{Name: name, JoinedAt: now})
	}

	slug, err := a.generateSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	g := &models.Group{
		Name:        req.Name,
		Slug:        slug,
		SeasonID:    req.SeasonID,
		Users:       users,
		DraftRounds: []models.DraftRound{},
		CreatedAt:   now,
	}

	if err := a.repo.CreateGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	a.emit(ctx, events.TypeGroupCreated, events.GroupCreatedPayload{
		GroupSlug: g.Slug,
		GroupName: g.Name,
		SeasonID:  g.SeasonID,
		UserCount: len(g.Users),
		CreatedAt: g.CreatedAt,
	})

	return g, nil
}

// GetGroup retrieves a group by slug.
func (a *App) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return a.repo.GetGroup(ctx, slug)
}

// DeleteGroup removes a group by slug.
func (a *App) DeleteGroup(ctx context.Context, slug string) error {
	return a.repo.DeleteGroup(ctx, slug)
}

// ResolveTurn reports whose turn it is for the group, or nil if no round is
// open.
func (a *App) ResolveTurn(ctx context.Context, slug string) (*draft.TurnInfo, error) {
	g, err := a.repo.GetGroup(ctx, slug)
	if err != nil {
		return nil, err
	}
	return draft.ResolveTurn(g)
}

// CreateRound opens the next draft round for the group, then runs the
// autodraft sweep in case the first picker already has a locked queue.
func (a *App) CreateRound(ctx context.Context, slug string) (*models.Group, error) {
	g, err := a.repo.GetGroup(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := draft.CreateRound(g); err != nil {
		return nil, err
	}
	if err := a.repo.UpdateGroup(ctx, g); err != nil {
		return nil, err
	}

	round := g.DraftRounds[len(g.DraftRounds)-1]
	log.Info().Str("group", g.Slug).Int("round", round.RoundNumber).Msg("round started")
	a.emit(ctx, events.TypeRoundStarted, events.RoundStartedPayload{
		GroupSlug:   g.Slug,
		RoundNumber: round.RoundNumber,
		StartedAt:   a.clock.Now().UTC(),
	})

	a.runAutodraftSweep(ctx, g)
	return g, nil
}

// MakePick validates and commits a manual pick, then resolves any locked
// autodraft queues for the users whose turns follow.
func (a *App) MakePick(ctx context.Context, req MakePickRequest) (*models.Group, error) {
	g, err := a.repo.GetGroup(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	roster, err := a.contestantsFor(ctx, g)
	if err != nil {
		return nil, err
	}
	if roster != nil && !rosterContains(roster, req.ContestantID) {
		return nil, fmt.Errorf("%w: contestant %d", ErrInvalidSelection, req.ContestantID)
	}

	if err := a.commitPick(ctx, g, req.UserName, req.ContestantID, false); err != nil {
		return nil, err
	}

	a.runAutodraftSweep(ctx, g)
	return g, nil
}

// UndraftedContestants returns the roster contestants nobody has drafted yet.
func (a *App) UndraftedContestants(ctx context.Context, slug string) ([]models.Contestant, error) {
	g, err := a.repo.GetGroup(ctx, slug)
	if err != nil {
		return nil, err
	}
	roster, err := a.contestantsFor(ctx, g)
	if err != nil {
		return nil, err
	}
	return draft.Undrafted(g, roster), nil
}

// commitPick applies one pick to the group and persists it, emitting
// pick.made and, when the pick closes the round, round.completed.
func (a *App) commitPick(ctx context.Context, g *models.Group, userName string, contestantID int, auto bool) error {
	if err := draft.MakePick(g, userName, contestantID, auto); err != nil {
		return err
	}
	if err := a.repo.UpdateGroup(ctx, g); err != nil {
		return err
	}

	round := &g.DraftRounds[len(g.DraftRounds)-1]
	pick := round.Picks[len(round.Picks)-1]
	log.Info().
		Str("group", g.Slug).
		Str("user", userName).
		Int("contestant_id", contestantID).
		Int("round", round.RoundNumber).
		Int("pick", pick.PickNumber).
		Bool("auto", auto).
		Msg("pick committed")

	now := a.clock.Now().UTC()
	a.emit(ctx, events.TypePickMade, events.PickMadePayload{
		GroupSlug:    g.Slug,
		UserName:     userName,
		ContestantID: contestantID,
		RoundNumber:  round.RoundNumber,
		PickNumber:   pick.PickNumber,
		Auto:         auto,
		MadeAt:       now,
	})
	if round.Complete {
		a.emit(ctx, events.TypeRoundCompleted, events.RoundCompletedPayload{
			GroupSlug:   g.Slug,
			RoundNumber: round.RoundNumber,
			TotalPicks:  len(round.Picks),
			CompletedAt: now,
		})
	}
	return nil
}

// runAutodraftSweep commits picks from locked queues for as long as the
// rotation keeps landing on users whose finalized preferences can be
// honored. The sweep is triggered, not timed: it runs only on the back of a
// committed pick or a newly opened round. Failures stop the sweep but never
// undo what was already committed.
func (a *App) runAutodraftSweep(ctx context.Context, g *models.Group) {
	roster, err := a.contestantsFor(ctx, g)
	if err != nil || len(roster) == 0 {
		return
	}

	for {
		turn, err := draft.ResolveTurn(g)
		if err != nil || turn == nil {
			return
		}

		q, err := a.queues.GetQueue(ctx, g.Slug, turn.UserName)
		if err != nil {
			log.Warn().Err(err).Str("group", g.Slug).Str("user", turn.UserName).Msg("autodraft sweep: queue fetch failed")
			return
		}
		if !q.Locked {
			return
		}

		undrafted := make(map[int]struct{})
		for _, c := range draft.Undrafted(g, roster) {
			undrafted[c.ID] = struct{}{}
		}
		contestantID, ok := draft.ResolveAutodraft(q, undrafted)
		if !ok {
			// Queue exhausted; this user needs a manual pick.
			return
		}

		if err := a.commitPick(ctx, g, turn.UserName, contestantID, true); err != nil {
			log.Warn().Err(err).Str("group", g.Slug).Str("user", turn.UserName).Msg("autodraft sweep: pick failed")
			return
		}
	}
}

func (a *App) contestantsFor(ctx context.Context, g *models.Group) ([]models.Contestant, error) {
	if g.SeasonID == "" {
		return nil, nil
	}
	contestants, err := a.roster.ListContestants(ctx, g.SeasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster for season %s: %w", g.SeasonID, err)
	}
	return contestants, nil
}

func (a *App) generateSlug(ctx context.Context, name string) (string, error) {
	slug := baseSlug(name)
	if slug == "" {
		slug = "group"
	}

	taken, err := a.repo.SlugExists(ctx, slug)
	if err != nil {
		return "", err
	}
	if !taken {
		return slug, nil
	}
	return slug + "-" + randomSuffix(4), nil
}

// emit publishes an event best-effort. Event delivery never fails a draft
// operation.
func (a *App) emit(ctx context.Context, eventType string, payload any) {
	if err := a.pub.Publish(ctx, eventType, payload); err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}

func rosterContains(contestants []models.Contestant, id int) bool {
	for _, c := range contestants {
		if c.ID == id {
			return true
		}
	}
	return false
}

package roster

import (
	"context"

	"github.com/castdraft/castdraft/go/internal/models"
)

// RosterRepository defines what the roster app needs from the data layer.
type RosterRepository interface {
	GetSeason(ctx context.Context, seasonID string) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	ListContestants(ctx context.Context, seasonID string) ([]models.Contestant, error)
}

// App exposes the season roster to the draft engine and the HTTP layer.
// Rosters are immutable during a draft; this app is read-only.
type App struct {
	repo RosterRepository
}

// NewApp creates a new roster App.
func NewApp(repo RosterRepository) *App {
	return &App{repo: repo}
}

// GetSeason retrieves a season with its contestants.
func (a *App) GetSeason(ctx context.Context, seasonID string) (*models.Season, error) {
	return a.repo.GetSeason(ctx, seasonID)
}

// ListSeasons retrieves all known seasons.
func (a *App) ListSeasons(ctx context.Context) ([]models.Season, error) {
	return a.repo.ListSeasons(ctx)
}

// ListContestants retrieves the ordered contestant roster for a season.
func (a *App) ListContestants(ctx context.Context, seasonID string) ([]models.Contestant, error) {
	return a.repo.ListContestants(ctx, seasonID)
}

package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/castdraft/castdraft/go/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSeasonNotFound is returned when no season exists for an id.
var ErrSeasonNotFound = errors.New("season not found")

// Repository implements season and contestant data access against Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new roster repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GetSeason retrieves a season with its full contestant roster.
func (r *Repository) GetSeason(ctx context.Context, seasonID string) (*models.Season, error) {
	var season models.Season
	err := r.pool.QueryRow(ctx,
		`SELECT id, season_number, name FROM seasons WHERE id = $1`,
		seasonID,
	).Scan(&season.ID, &season.SeasonNumber, &season.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to get season: %w", err)
	}

	contestants, err := r.ListContestants(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	season.Contestants = contestants
	return &season, nil
}

// ListSeasons retrieves all seasons, without contestant rosters.
func (r *Repository) ListSeasons(ctx context.Context) ([]models.Season, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, season_number, name FROM seasons ORDER BY season_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	defer rows.Close()

	var seasons []models.Season
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.ID, &s.SeasonNumber, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return seasons, nil
}

// ListContestants retrieves a season's contestants in roster order.
func (r *Repository) ListContestants(ctx context.Context, seasonID string) ([]models.Contestant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, image, eliminated FROM contestants WHERE season_id = $1 ORDER BY id`,
		seasonID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contestants: %w", err)
	}
	defer rows.Close()

	var contestants []models.Contestant
	for rows.Next() {
		var c models.Contestant
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.Eliminated); err != nil {
			return nil, fmt.Errorf("failed to scan contestant: %w", err)
		}
		contestants = append(contestants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contestants: %w", err)
	}
	return contestants, nil
}

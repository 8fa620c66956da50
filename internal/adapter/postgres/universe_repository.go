package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-scheduler/internal/core/domain"
)

const universeColumns = `
            id,
            name,
            verticals,
            geography,
            estimated_size,
            actual_size,
            qualified_count,
            last_refresh,
            active,
            created_at,
            updated_at`

// UniverseRepository implements port.UniverseRepository using pgxpool.
type UniverseRepository struct {
	pool *pgxpool.Pool
}

// NewUniverseRepository returns a new repository instance.
func NewUniverseRepository(pool *pgxpool.Pool) *UniverseRepository {
	return &UniverseRepository{pool: pool}
}

// GetUniverse returns a universe by id.
func (r *UniverseRepository) GetUniverse(ctx context.Context, id int64) (*domain.TargetUniverse, error) {
	u, err := scanUniverse(r.pool.QueryRow(ctx, `SELECT`+universeColumns+` FROM target_universes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListActiveUniverses returns active universes ordered by id.
func (r *UniverseRepository) ListActiveUniverses(ctx context.Context) ([]domain.TargetUniverse, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+universeColumns+` FROM target_universes WHERE active ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TargetUniverse, error) {
		return scanUniverse(row)
	})
}

// ListUniverseCampaigns returns every campaign run against the universe.
func (r *UniverseRepository) ListUniverseCampaigns(ctx context.Context, universeID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns c WHERE c.universe_id = $1 ORDER BY c.id`, universeID)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

// CountTargets counts member businesses and the qualified ones among them.
func (r *UniverseRepository) CountTargets(ctx context.Context, universeID int64) (domain.TargetCounts, error) {
	var c domain.TargetCounts
	err := r.pool.QueryRow(ctx, `
        SELECT count(*), count(*) FILTER (WHERE qualified)
        FROM universe_members
        WHERE universe_id = $1`, universeID).Scan(&c.Actual, &c.Qualified)
	return c, err
}

// UpdateUniverseSize stores recounted sizes and the refresh time.
func (r *UniverseRepository) UpdateUniverseSize(ctx context.Context, id int64, counts domain.TargetCounts, refreshedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE target_universes
        SET actual_size = $2, qualified_count = $3, last_refresh = $4, updated_at = $4
        WHERE id = $1`, id, counts.Actual, counts.Qualified, refreshedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("universe %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountActiveCampaigns counts scheduled, running and paused campaigns.
func (r *UniverseRepository) CountActiveCampaigns(ctx context.Context, universeID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
        SELECT count(*) FROM campaigns
        WHERE universe_id = $1 AND status IN ('scheduled', 'running', 'paused')`, universeID).Scan(&n)
	return n, err
}

// DeactivateUniverse clears the active flag unless an active campaign
// still references the universe.
func (r *UniverseRepository) DeactivateUniverse(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE target_universes SET active = FALSE, updated_at = now()
        WHERE id = $1
          AND NOT EXISTS (
            SELECT 1 FROM campaigns
            WHERE universe_id = $1 AND status IN ('scheduled', 'running', 'paused')
          )`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanUniverse(row pgx.Row) (domain.TargetUniverse, error) {
	var (
		u   domain.TargetUniverse
		geo []byte
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Verticals,
		&geo,
		&u.EstimatedSize,
		&u.ActualSize,
		&u.QualifiedCount,
		&u.LastRefresh,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return u, err
	}
	if len(geo) > 0 {
		if err = json.Unmarshal(geo, &u.Geography); err != nil {
			return u, fmt.Errorf("universe %d geography: %w", u.ID, err)
		}
	}
	return u, nil
}

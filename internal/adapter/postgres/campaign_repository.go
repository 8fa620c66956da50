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
	"campaign-scheduler/internal/core/port"
)

const campaignColumns = `
            c.id,
            c.universe_id,
            c.name,
            c.status,
            c.total_targets,
            c.contacted_targets,
            c.responded_targets,
            c.converted_targets,
            c.excluded_targets,
            c.estimated_cost,
            c.actual_cost,
            c.batch_settings,
            c.created_at,
            c.updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListSchedulable returns running campaigns of active universes without a
// batch for date. Remaining targets exclude every target that was already
// contacted, answered, converted or excluded.
func (r *CampaignRepository) ListSchedulable(ctx context.Context, date time.Time) ([]port.CampaignCandidate, error) {
	query := `
        SELECT` + campaignColumns + `,
            u.actual_size,
            GREATEST(c.total_targets - COALESCE(done.n, 0), 0)
        FROM campaigns c
        JOIN target_universes u ON u.id = c.universe_id
        LEFT JOIN LATERAL (
            SELECT count(*) AS n
            FROM campaign_targets ct
            WHERE ct.campaign_id = c.id
              AND ct.status IN ('contacted', 'responded', 'converted', 'excluded')
        ) done ON TRUE
        WHERE c.status = 'running'
          AND u.active
          AND NOT EXISTS (
            SELECT 1 FROM batches b WHERE b.campaign_id = c.id AND b.batch_date = $1
          )
        ORDER BY c.id`
	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignCandidate, error) {
		var (
			cc  port.CampaignCandidate
			raw []byte
		)
		dest := append(campaignDest(&cc.Campaign, &raw), &cc.UniverseActualSize, &cc.RemainingTargets)
		if err := row.Scan(dest...); err != nil {
			return cc, err
		}
		return cc, decodeSettings(raw, &cc.Campaign)
	})
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT`+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaignStatus moves the campaign only if it is still in from.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func campaignDest(c *domain.Campaign, settings *[]byte) []any {
	return []any{
		&c.ID,
		&c.UniverseID,
		&c.Name,
		&c.Status,
		&c.TotalTargets,
		&c.ContactedTargets,
		&c.RespondedTargets,
		&c.ConvertedTargets,
		&c.ExcludedTargets,
		&c.EstimatedCost,
		&c.ActualCost,
		settings,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		raw []byte
	)
	if err := row.Scan(campaignDest(&c, &raw)...); err != nil {
		return c, err
	}
	return c, decodeSettings(raw, &c)
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// decodeSettings leaves zero settings for an empty document so defaults
// apply later.
func decodeSettings(raw []byte, c *domain.Campaign) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &c.Settings); err != nil {
		return fmt.Errorf("campaign %d batch settings: %w", c.ID, err)
	}
	return nil
}

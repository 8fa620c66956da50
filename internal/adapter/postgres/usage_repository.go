package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-scheduler/internal/core/domain"
)

// UsageRepository implements port.UsageRepository. Used quota is read from
// completed batches; the quota_usage ledger only feeds daily rollups.
type UsageRepository struct {
	pool *pgxpool.Pool
}

// NewUsageRepository returns a new repository instance.
func NewUsageRepository(pool *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{pool: pool}
}

// UnitsUsed sums targets processed by batches scheduled in [from, to).
func (r *UsageRepository) UnitsUsed(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(targets_processed), 0)
        FROM batches
        WHERE status = 'completed' AND scheduled_at >= $1 AND scheduled_at < $2`, from, to).Scan(&n)
	return n, err
}

// CampaignUnitsUsed is UnitsUsed for one campaign.
func (r *UsageRepository) CampaignUnitsUsed(ctx context.Context, campaignID int64, from, to time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(targets_processed), 0)
        FROM batches
        WHERE campaign_id = $1 AND status = 'completed' AND scheduled_at >= $2 AND scheduled_at < $3`,
		campaignID, from, to).Scan(&n)
	return n, err
}

// DailyUnits groups processed targets by calendar day in loc.
func (r *UsageRepository) DailyUnits(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.DailyUsage, error) {
	if loc == nil {
		loc = time.UTC
	}
	rows, err := r.pool.Query(ctx, `
        SELECT (scheduled_at AT TIME ZONE $3)::date AS day, sum(targets_processed)::bigint
        FROM batches
        WHERE status = 'completed' AND scheduled_at >= $1 AND scheduled_at < $2
        GROUP BY day
        ORDER BY day`, from, to, loc.String())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyUsage, error) {
		var d domain.DailyUsage
		err := row.Scan(&d.Day, &d.Units)
		return d, err
	})
}

// RollupDailyUsage marks unaggregated ledger rows recorded in [from, to) as
// aggregated and adds their units to quota_usage_daily for day, in one
// statement.
func (r *UsageRepository) RollupDailyUsage(ctx context.Context, day, from, to time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
        WITH rolled AS (
            UPDATE quota_usage SET aggregated = TRUE
            WHERE NOT aggregated AND recorded_at >= $2 AND recorded_at < $3
            RETURNING campaign_id, units
        ), totals AS (
            SELECT campaign_id, sum(units) AS units, count(*) AS n
            FROM rolled
            GROUP BY campaign_id
        ), upserted AS (
            INSERT INTO quota_usage_daily (day, campaign_id, units)
            SELECT $1::date, campaign_id, units FROM totals
            ON CONFLICT (day, campaign_id) DO UPDATE SET units = quota_usage_daily.units + EXCLUDED.units
        )
        SELECT COALESCE(sum(n), 0)::bigint FROM totals`, day, from, to).Scan(&n)
	return n, err
}

// PruneUsage deletes aggregated ledger rows recorded before cutoff.
func (r *UsageRepository) PruneUsage(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quota_usage WHERE aggregated AND recorded_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

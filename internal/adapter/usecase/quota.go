package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"campaign-scheduler/internal/adapter/metrics"
	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

// QuotaConfig holds the global quota parameters.
type QuotaConfig struct {
	// BaseDaily is the quota before the utilisation factor is applied.
	BaseDaily int
	// PerCampaignCap is the largest fraction of a day's quota one campaign
	// may consume.
	PerCampaignCap float64
	// WindowDays is the length of the trailing utilisation window.
	WindowDays  int
	Utilization domain.UtilizationPolicy
	// Location defines calendar days.
	Location *time.Location
}

// DefaultQuotaConfig returns the stock quota parameters.
func DefaultQuotaConfig() QuotaConfig {
	return QuotaConfig{
		BaseDaily:      1000,
		PerCampaignCap: 0.4,
		WindowDays:     7,
		Utilization:    domain.DefaultUtilizationPolicy(),
		Location:       time.UTC,
	}
}

// QuotaTracker implements port.QuotaTracker on top of the usage ledger.
// Reads tolerate staleness: allocation is advisory and consumption is
// recorded only when batches complete.
type QuotaTracker struct {
	usage   port.UsageRepository
	cfg     QuotaConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewQuotaTracker creates a tracker. A nil logger discards output and a
// nil metrics set records nothing.
func NewQuotaTracker(usage port.UsageRepository, cfg QuotaConfig, logger *slog.Logger, m *metrics.Metrics) *QuotaTracker {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = 7
	}
	return &QuotaTracker{
		usage:   usage,
		cfg:     cfg,
		logger:  componentLogger(logger, "quota_tracker"),
		metrics: m,
	}
}

// DailyQuota scales the base quota by the utilisation of the trailing
// window that ends the day before date.
func (q *QuotaTracker) DailyQuota(ctx context.Context, date time.Time) (int, error) {
	day := domain.DayStart(date, q.cfg.Location)
	from := day.AddDate(0, 0, -q.cfg.WindowDays)
	history, err := q.usage.DailyUnits(ctx, from, day, q.cfg.Location)
	if err != nil {
		return 0, fmt.Errorf("load usage history: %w", err)
	}
	factor := q.cfg.Utilization.Factor(history, q.cfg.BaseDaily)
	quota := int(math.Floor(float64(q.cfg.BaseDaily) * factor))

	q.logger.Debug("daily quota computed",
		slog.String("date", day.Format(domain.DateLayout)),
		slog.Int("history_days", len(history)),
		slog.Float64("factor", factor),
		slog.Int("quota", quota),
	)
	q.metrics.SetDailyQuota(quota)
	return quota, nil
}

// UsedQuota sums targets processed by batches scheduled on date.
func (q *QuotaTracker) UsedQuota(ctx context.Context, date time.Time) (int, error) {
	from, to := q.dayRange(date)
	used, err := q.usage.UnitsUsed(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("load used quota: %w", err)
	}
	return int(used), nil
}

// RemainingQuota is max(0, daily - used).
func (q *QuotaTracker) RemainingQuota(ctx context.Context, date time.Time) (int, error) {
	daily, err := q.DailyQuota(ctx, date)
	if err != nil {
		return 0, err
	}
	used, err := q.UsedQuota(ctx, date)
	if err != nil {
		return 0, err
	}
	return max(daily-used, 0), nil
}

// CampaignQuotaAllocation returns the campaign's ceiling for date and how
// much of it batches scheduled that day already consumed.
func (q *QuotaTracker) CampaignQuotaAllocation(ctx context.Context, campaignID int64, date time.Time) (domain.CampaignQuota, error) {
	daily, err := q.DailyQuota(ctx, date)
	if err != nil {
		return domain.CampaignQuota{}, err
	}
	from, to := q.dayRange(date)
	used, err := q.usage.CampaignUnitsUsed(ctx, campaignID, from, to)
	if err != nil {
		return domain.CampaignQuota{}, fmt.Errorf("load campaign %d usage: %w", campaignID, err)
	}
	return domain.NewCampaignQuota(campaignID, domain.CampaignCeiling(daily, q.cfg.PerCampaignCap), int(used)), nil
}

// IsQuotaAvailable checks the global remainder and, if campaignID is set,
// the campaign's remainder.
func (q *QuotaTracker) IsQuotaAvailable(ctx context.Context, requested int, campaignID *int64, date time.Time) (bool, error) {
	remaining, err := q.RemainingQuota(ctx, date)
	if err != nil {
		return false, err
	}
	if requested > remaining {
		return false, nil
	}
	if campaignID == nil {
		return true, nil
	}
	alloc, err := q.CampaignQuotaAllocation(ctx, *campaignID, date)
	if err != nil {
		return false, err
	}
	return requested <= alloc.Remaining, nil
}

// ReserveQuota only checks availability. Consumption is recorded when the
// batch completes, so two callers may both be told yes.
func (q *QuotaTracker) ReserveQuota(ctx context.Context, requested int, campaignID *int64, date time.Time) (bool, error) {
	ok, err := q.IsQuotaAvailable(ctx, requested, campaignID, date)
	if err != nil {
		return false, err
	}
	attrs := []any{slog.Int("requested", requested), slog.String("date", domain.DayStart(date, q.cfg.Location).Format(domain.DateLayout))}
	if campaignID != nil {
		attrs = append(attrs, slog.Int64("campaign_id", *campaignID))
	}
	if !ok {
		q.logger.Warn("quota reservation rejected", attrs...)
		return false, nil
	}
	q.logger.Debug("quota reservation accepted", attrs...)
	return true, nil
}

// AggregateDailyUsage rolls the raw usage ledger for date up into daily
// per-campaign totals.
func (q *QuotaTracker) AggregateDailyUsage(ctx context.Context, date time.Time) (int64, error) {
	from, to := q.dayRange(date)
	n, err := q.usage.RollupDailyUsage(ctx, from, from, to)
	if err != nil {
		return 0, fmt.Errorf("roll up usage for %s: %w", from.Format(domain.DateLayout), err)
	}
	q.metrics.AddUsageMaintenance(n, 0)
	q.logger.Info("usage rolled up", slog.String("date", from.Format(domain.DateLayout)), slog.Int64("rows", n))
	return n, nil
}

// PruneUsage deletes aggregated raw usage rows recorded before cutoff.
func (q *QuotaTracker) PruneUsage(ctx context.Context, before time.Time) (int64, error) {
	n, err := q.usage.PruneUsage(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("prune usage: %w", err)
	}
	q.metrics.AddUsageMaintenance(0, n)
	q.logger.Info("usage pruned", slog.Time("before", before), slog.Int64("rows", n))
	return n, nil
}

func (q *QuotaTracker) dayRange(date time.Time) (time.Time, time.Time) {
	from := domain.DayStart(date, q.cfg.Location)
	return from, from.AddDate(0, 0, 1)
}

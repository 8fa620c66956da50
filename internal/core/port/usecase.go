package port

import (
	"context"
	"time"

	"campaign-scheduler/internal/core/domain"
)

// BatchScheduler turns the daily quota into batches and drives each batch
// through its lifecycle. Lifecycle calls return false for a missing batch
// or a rejected transition; errors are reserved for store failures.
type BatchScheduler interface {
	// CreateDailyBatches allocates the quota for date and stores the
	// resulting batches in one transaction. It returns the new batch ids.
	CreateDailyBatches(ctx context.Context, date time.Time) ([]int64, error)
	// GetPendingBatches returns due pending batches, at most limit (a
	// non-positive limit uses the configured default).
	GetPendingBatches(ctx context.Context, limit int) ([]domain.Batch, error)
	MarkBatchProcessing(ctx context.Context, id int64) (bool, error)
	MarkBatchCompleted(ctx context.Context, id int64, res domain.BatchResult) (bool, error)
	MarkBatchFailed(ctx context.Context, id int64, reason string) (bool, error)
}

// QuotaTracker computes the global daily quota and per-campaign ceilings.
type QuotaTracker interface {
	DailyQuota(ctx context.Context, date time.Time) (int, error)
	UsedQuota(ctx context.Context, date time.Time) (int, error)
	RemainingQuota(ctx context.Context, date time.Time) (int, error)
	CampaignQuotaAllocation(ctx context.Context, campaignID int64, date time.Time) (domain.CampaignQuota, error)
	// IsQuotaAvailable checks the global remainder and, when campaignID is
	// set, the campaign's remainder.
	IsQuotaAvailable(ctx context.Context, requested int, campaignID *int64, date time.Time) (bool, error)
	// ReserveQuota is advisory: it checks availability and records nothing.
	ReserveQuota(ctx context.Context, requested int, campaignID *int64, date time.Time) (bool, error)
	AggregateDailyUsage(ctx context.Context, date time.Time) (int64, error)
	PruneUsage(ctx context.Context, before time.Time) (int64, error)
}

// GeoValidator checks geography configurations and free-text locations.
type GeoValidator interface {
	DetectConflicts(cfg domain.GeographyConfig) []domain.Conflict
	ResolveOverlaps(cfg domain.GeographyConfig) domain.GeographyConfig
	ValidateLocation(location string) domain.LocationValidation
}

// UniverseManager scores target universes and keeps their cached sizes
// current.
type UniverseManager interface {
	PriorityScore(ctx context.Context, id int64) (float64, error)
	// RankUniverses returns active universes best first.
	RankUniverses(ctx context.Context) ([]domain.UniverseRanking, error)
	RefreshFreshness(ctx context.Context, id int64) (*domain.TargetUniverse, error)
	// RefreshActive refreshes every active universe and returns how many
	// were refreshed.
	RefreshActive(ctx context.Context) (int, error)
	// Deactivate fails with domain.ErrUniverseInUse while an active
	// campaign references the universe.
	Deactivate(ctx context.Context, id int64) error
}

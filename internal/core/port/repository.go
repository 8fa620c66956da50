package port

import (
	"context"
	"time"

	"campaign-scheduler/internal/core/domain"
)

// CampaignCandidate is a running campaign that has no batches yet for the
// pass date, with the figures the scheduler needs to rank it.
type CampaignCandidate struct {
	Campaign           domain.Campaign
	UniverseActualSize int64
	// RemainingTargets is totalTargets minus targets already contacted,
	// responded, converted or excluded.
	RemainingTargets int64
}

// CampaignRepository reads and updates campaigns. Implementations must be
// safe for concurrent use.
type CampaignRepository interface {
	// ListSchedulable returns running campaigns of active universes that
	// have no batch for date, ordered by campaign id.
	ListSchedulable(ctx context.Context, date time.Time) ([]CampaignCandidate, error)
	// GetCampaign returns nil when the campaign does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// UpdateCampaignStatus moves the campaign from `from` to `to` only if it
	// is still in `from`. It reports whether a row changed.
	UpdateCampaignStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) (bool, error)
}

// BatchTx is the write side of a scheduling pass. Everything done through
// one BatchTx commits or rolls back together.
type BatchTx interface {
	// MaxBatchNumber returns the highest batch number of the campaign for
	// date, or 0.
	MaxBatchNumber(ctx context.Context, campaignID int64, date time.Time) (int, error)
	// InsertBatch stores b and sets its ID.
	InsertBatch(ctx context.Context, b *domain.Batch) error
}

// BatchRepository persists batches and their lifecycle.
type BatchRepository interface {
	// InTx runs fn in a single serializable transaction.
	InTx(ctx context.Context, fn func(tx BatchTx) error) error
	// GetBatch returns nil when the batch does not exist.
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	// ListPendingBatches returns pending batches due at or before dueBy,
	// earliest first.
	ListPendingBatches(ctx context.Context, dueBy time.Time, limit int) ([]domain.Batch, error)
	// UpdateBatch writes the lifecycle fields of b only if the stored
	// status is still from. It reports whether the row changed.
	UpdateBatch(ctx context.Context, b domain.Batch, from domain.BatchStatus) (bool, error)
	// CompleteBatch is UpdateBatch plus a usage ledger entry for
	// b.TargetsProcessed, written atomically.
	CompleteBatch(ctx context.Context, b domain.Batch, from domain.BatchStatus) (bool, error)
}

// UsageRepository answers quota usage queries. Ranges are half-open
// [from, to).
type UsageRepository interface {
	// UnitsUsed sums targets processed by batches scheduled in range.
	UnitsUsed(ctx context.Context, from, to time.Time) (int64, error)
	// CampaignUnitsUsed is UnitsUsed for one campaign.
	CampaignUnitsUsed(ctx context.Context, campaignID int64, from, to time.Time) (int64, error)
	// DailyUnits groups UnitsUsed by calendar day in loc. Days without
	// batches are omitted.
	DailyUnits(ctx context.Context, from, to time.Time, loc *time.Location) ([]domain.DailyUsage, error)
	// RollupDailyUsage aggregates raw ledger rows recorded in range into
	// the per-day, per-campaign table keyed by day. It returns the number
	// of raw rows aggregated.
	RollupDailyUsage(ctx context.Context, day, from, to time.Time) (int64, error)
	// PruneUsage deletes aggregated raw ledger rows recorded before cutoff.
	PruneUsage(ctx context.Context, before time.Time) (int64, error)
}

// UniverseRepository reads universes and the aggregates scored on them.
type UniverseRepository interface {
	// GetUniverse returns nil when the universe does not exist.
	GetUniverse(ctx context.Context, id int64) (*domain.TargetUniverse, error)
	ListActiveUniverses(ctx context.Context) ([]domain.TargetUniverse, error)
	ListUniverseCampaigns(ctx context.Context, universeID int64) ([]domain.Campaign, error)
	// CountTargets recounts the universe's member businesses.
	CountTargets(ctx context.Context, universeID int64) (domain.TargetCounts, error)
	UpdateUniverseSize(ctx context.Context, id int64, counts domain.TargetCounts, refreshedAt time.Time) error
	// CountActiveCampaigns counts scheduled, running and paused campaigns.
	CountActiveCampaigns(ctx context.Context, universeID int64) (int, error)
	// DeactivateUniverse clears the active flag unless an active campaign
	// references the universe. It reports whether a row changed.
	DeactivateUniverse(ctx context.Context, id int64) (bool, error)
}

// Locker is a short-lived mutual exclusion keyed by name.
type Locker interface {
	// TryLock returns a token and true when the lock was taken.
	TryLock(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	// Unlock releases key if it is still held with token.
	Unlock(ctx context.Context, key, token string) error
}

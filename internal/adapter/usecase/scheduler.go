package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"campaign-scheduler/internal/adapter/metrics"
	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
)

// SchedulerConfig holds the scheduler's operational parameters.
type SchedulerConfig struct {
	// Location defines calendar days for batch dates and slots.
	Location *time.Location
	// LockTTL bounds how long one pass may hold the per-date lock.
	LockTTL time.Duration
	// RetryBackoff is multiplied by the retry count to reschedule a failed
	// batch.
	RetryBackoff time.Duration
	// PendingLimit is used when GetPendingBatches gets no limit.
	PendingLimit int
	// Defaults fill unset per-campaign batch settings.
	Defaults domain.BatchSettings
}

// DefaultSchedulerConfig returns the stock scheduler parameters.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Location:     time.UTC,
		LockTTL:      10 * time.Minute,
		RetryBackoff: 5 * time.Minute,
		PendingLimit: 100,
		Defaults:     domain.DefaultBatchSettings(),
	}
}

// BatchScheduler implements port.BatchScheduler. It keeps no state between
// calls; everything is read from and written to the store.
type BatchScheduler struct {
	campaigns port.CampaignRepository
	batches   port.BatchRepository
	quota     port.QuotaTracker
	locker    port.Locker
	cfg       SchedulerConfig
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// SchedulerOption customises a BatchScheduler.
type SchedulerOption func(*BatchScheduler)

// WithSchedulerClock overrides the wall clock.
func WithSchedulerClock(now func() time.Time) SchedulerOption {
	return func(s *BatchScheduler) { s.now = now }
}

// WithSchedulerMetrics records pass and transition metrics on m.
func WithSchedulerMetrics(m *metrics.Metrics) SchedulerOption {
	return func(s *BatchScheduler) { s.metrics = m }
}

// NewBatchScheduler wires the scheduler to its collaborators.
func NewBatchScheduler(
	campaigns port.CampaignRepository,
	batches port.BatchRepository,
	quota port.QuotaTracker,
	locker port.Locker,
	cfg SchedulerConfig,
	logger *slog.Logger,
	opts ...SchedulerOption,
) *BatchScheduler {
	def := DefaultSchedulerConfig()
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = def.LockTTL
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = def.RetryBackoff
	}
	if cfg.PendingLimit <= 0 {
		cfg.PendingLimit = def.PendingLimit
	}
	cfg.Defaults = cfg.Defaults.WithDefaults(def.Defaults)

	s := &BatchScheduler{
		campaigns: campaigns,
		batches:   batches,
		quota:     quota,
		locker:    locker,
		cfg:       cfg,
		logger:    componentLogger(logger, "batch_scheduler"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PassLockKey is the lock held while the pass for date runs.
func PassLockKey(date time.Time) string {
	return "scheduler:pass:" + date.Format(domain.DateLayout)
}

// CreateDailyBatches runs one scheduling pass for date. Only campaigns
// without batches for date take part, so re-running a pass creates nothing
// new. Concurrent passes for the same date are rejected with
// domain.ErrPassInProgress.
func (s *BatchScheduler) CreateDailyBatches(ctx context.Context, date time.Time) (ids []int64, err error) {
	start := s.now()
	day := domain.DayStart(date, s.cfg.Location)
	log := s.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("date", day.Format(domain.DateLayout)),
	)
	defer func() {
		if errors.Is(err, domain.ErrPassInProgress) {
			return
		}
		s.metrics.ObservePass(s.now().Sub(start), err)
	}()

	key := PassLockKey(day)
	token, ok, err := s.locker.TryLock(ctx, key, s.cfg.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire pass lock: %w", err)
	}
	if !ok {
		log.Warn("scheduling pass skipped, lock held elsewhere")
		return nil, domain.ErrPassInProgress
	}
	defer func() {
		if uerr := s.locker.Unlock(context.WithoutCancel(ctx), key, token); uerr != nil {
			log.Warn("release pass lock", slog.Any("error", uerr))
		}
	}()

	candidates, err := s.campaigns.ListSchedulable(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list schedulable campaigns: %w", err)
	}
	if len(candidates) == 0 {
		log.Info("no campaigns need batches")
		return nil, nil
	}

	totalQuota, err := s.quota.DailyQuota(ctx, day)
	if err != nil {
		return nil, err
	}

	now := s.now()
	settings := make(map[int64]domain.BatchSettings, len(candidates))
	requests := make([]domain.AllocationCandidate, 0, len(candidates))
	for _, c := range candidates {
		cs := c.Campaign.Settings.WithDefaults(s.cfg.Defaults)
		if verr := cs.Validate(); verr != nil {
			log.Warn("campaign skipped, invalid batch settings",
				slog.Int64("campaign_id", c.Campaign.ID), slog.Any("error", verr))
			continue
		}
		ceiling, cerr := s.quota.CampaignQuotaAllocation(ctx, c.Campaign.ID, day)
		if cerr != nil {
			return nil, cerr
		}
		remaining := c.RemainingTargets
		if cs.MaxDailyTargets != nil {
			remaining = min(remaining, int64(*cs.MaxDailyTargets))
		}
		settings[c.Campaign.ID] = cs
		requests = append(requests, domain.AllocationCandidate{
			CampaignID:       c.Campaign.ID,
			Priority:         domain.CampaignPriority(c.Campaign, c.UniverseActualSize, now),
			RemainingTargets: int(max(remaining, 0)),
			BatchSize:        cs.BatchSize,
			Ceiling:          ceiling.Remaining,
		})
	}

	allocations := domain.AllocateQuota(totalQuota, requests)

	allocated := 0
	err = s.batches.InTx(ctx, func(tx port.BatchTx) error {
		ids = ids[:0]
		allocated = 0
		for _, a := range allocations {
			if a.Quota <= 0 {
				continue
			}
			created, n, merr := s.materialize(ctx, tx, day, a, settings[a.CampaignID])
			if merr != nil {
				return fmt.Errorf("campaign %d: %w", a.CampaignID, merr)
			}
			ids = append(ids, created...)
			allocated += n
		}
		return nil
	})
	if err != nil {
		log.Error("scheduling pass rolled back", slog.Any("error", err))
		return nil, fmt.Errorf("create daily batches: %w", err)
	}

	s.metrics.AddBatchesCreated(len(ids))
	s.metrics.SetAllocatedQuota(allocated)
	log.Info("scheduling pass complete",
		slog.Int("campaigns", len(candidates)),
		slog.Int("total_quota", totalQuota),
		slog.Int("allocated", allocated),
		slog.Int("batches", len(ids)),
		slog.Duration("took", s.now().Sub(start)),
	)
	return ids, nil
}

// materialize cuts one campaign's allocation into sequential batches,
// numbered after the highest existing number for the day, and returns the
// ids and the number of targets they cover.
func (s *BatchScheduler) materialize(ctx context.Context, tx port.BatchTx, day time.Time, a domain.QuotaAllocation, cs domain.BatchSettings) ([]int64, int, error) {
	last, err := tx.MaxBatchNumber(ctx, a.CampaignID, day)
	if err != nil {
		return nil, 0, err
	}
	now := s.now()
	var ids []int64
	remaining := a.Quota
	for k := 0; remaining > 0 && k < cs.MaxConcurrentBatches; k++ {
		number := last + k + 1
		at, err := domain.BatchSlot(day, number, cs)
		if err != nil {
			return nil, 0, err
		}
		size := min(cs.BatchSize, remaining)
		b := domain.Batch{
			CampaignID:  a.CampaignID,
			BatchDate:   day,
			BatchNumber: number,
			BatchSize:   size,
			Status:      domain.BatchPending,
			ScheduledAt: at,
			MaxRetries:  cs.Retries(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err = tx.InsertBatch(ctx, &b); err != nil {
			return nil, 0, err
		}
		ids = append(ids, b.ID)
		remaining -= size
	}
	return ids, a.Quota - remaining, nil
}

// GetPendingBatches returns pending batches that are due now.
func (s *BatchScheduler) GetPendingBatches(ctx context.Context, limit int) ([]domain.Batch, error) {
	if limit <= 0 {
		limit = s.cfg.PendingLimit
	}
	batches, err := s.batches.ListPendingBatches(ctx, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list pending batches: %w", err)
	}
	return batches, nil
}

// MarkBatchProcessing claims a pending batch. Only one caller can win the
// claim because the write is conditional on the batch still being pending.
func (s *BatchScheduler) MarkBatchProcessing(ctx context.Context, id int64) (bool, error) {
	return s.transition(ctx, id, func(b *domain.Batch, now time.Time) error {
		return b.Start(now)
	}, s.batches.UpdateBatch)
}

// MarkBatchCompleted finishes a processing batch with the worker's counts.
// The processed count becomes part of the day's used quota.
func (s *BatchScheduler) MarkBatchCompleted(ctx context.Context, id int64, res domain.BatchResult) (bool, error) {
	return s.transition(ctx, id, func(b *domain.Batch, now time.Time) error {
		return b.Complete(now, res)
	}, s.batches.CompleteBatch)
}

// MarkBatchFailed records a failure. While retries remain the batch goes
// back to pending with a linear backoff; after that it stays failed.
func (s *BatchScheduler) MarkBatchFailed(ctx context.Context, id int64, reason string) (bool, error) {
	return s.transition(ctx, id, func(b *domain.Batch, now time.Time) error {
		retried, err := b.Fail(now, reason, s.cfg.RetryBackoff)
		if err != nil {
			return err
		}
		if retried {
			s.logger.Info("batch rescheduled after failure",
				slog.Int64("batch_id", b.ID),
				slog.Int("retry_count", b.RetryCount),
				slog.Time("scheduled_at", b.ScheduledAt),
				slog.String("reason", reason),
			)
		} else {
			s.logger.Error("batch failed permanently, manual intervention required",
				slog.Int64("batch_id", b.ID),
				slog.Int64("campaign_id", b.CampaignID),
				slog.Int("retry_count", b.RetryCount),
				slog.String("reason", reason),
			)
		}
		return nil
	}, s.batches.UpdateBatch)
}

type batchWriter func(ctx context.Context, b domain.Batch, from domain.BatchStatus) (bool, error)

func (s *BatchScheduler) transition(ctx context.Context, id int64, apply func(*domain.Batch, time.Time) error, write batchWriter) (bool, error) {
	b, err := s.batches.GetBatch(ctx, id)
	if err != nil {
		return false, fmt.Errorf("load batch %d: %w", id, err)
	}
	if b == nil {
		s.logger.Warn("batch not found", slog.Int64("batch_id", id))
		return false, nil
	}
	from := b.Status
	if err = apply(b, s.now()); err != nil {
		if errors.Is(err, domain.ErrInvalidBatchTransition) || errors.Is(err, domain.ErrInvalidBatchResult) {
			s.logger.Warn("batch transition rejected", slog.Int64("batch_id", id), slog.Any("error", err))
			return false, nil
		}
		return false, err
	}
	ok, err := write(ctx, *b, from)
	if err != nil {
		return false, fmt.Errorf("save batch %d: %w", id, err)
	}
	if !ok {
		s.logger.Warn("batch changed concurrently", slog.Int64("batch_id", id), slog.String("expected_status", string(from)))
		return false, nil
	}
	s.metrics.BatchTransition(string(b.Status))
	return true, nil
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port"
	"campaign-scheduler/internal/core/port/mocks"
)

var (
	passDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	passNow = passDay.Add(8 * time.Hour)
)

type schedulerDeps struct {
	campaigns *mocks.MockCampaignRepository
	batches   *mocks.MockBatchRepository
	quota     *mocks.MockQuotaTracker
	locker    *mocks.MockLocker
	tx        *mocks.MockBatchTx
	inserted  []domain.Batch
}

func newTestScheduler(t *testing.T) (*BatchScheduler, *schedulerDeps) {
	d := &schedulerDeps{
		campaigns: mocks.NewMockCampaignRepository(t),
		batches:   mocks.NewMockBatchRepository(t),
		quota:     mocks.NewMockQuotaTracker(t),
		locker:    mocks.NewMockLocker(t),
		tx:        mocks.NewMockBatchTx(t),
	}
	s := NewBatchScheduler(d.campaigns, d.batches, d.quota, d.locker, DefaultSchedulerConfig(), nil,
		WithSchedulerClock(func() time.Time { return passNow }))
	return s, d
}

func (d *schedulerDeps) expectLock() {
	d.locker.EXPECT().TryLock(mock.Anything, "scheduler:pass:2026-03-02", 10*time.Minute).Return("tok", true, nil)
	d.locker.EXPECT().Unlock(mock.Anything, "scheduler:pass:2026-03-02", "tok").Return(nil)
}

// expectTx runs the pass function against d.tx and records inserts.
func (d *schedulerDeps) expectTx() {
	d.batches.EXPECT().InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(port.BatchTx) error) error {
			return fn(d.tx)
		})
	d.tx.EXPECT().InsertBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, b *domain.Batch) error {
			b.ID = int64(len(d.inserted) + 1)
			d.inserted = append(d.inserted, *b)
			return nil
		}).Maybe()
}

func candidate(id int64, age time.Duration, remaining int64) port.CampaignCandidate {
	return port.CampaignCandidate{
		Campaign: domain.Campaign{
			ID:           id,
			UniverseID:   1,
			Status:       domain.CampaignRunning,
			TotalTargets: remaining,
			CreatedAt:    passNow.Add(-age),
		},
		RemainingTargets: remaining,
	}
}

func TestCreateDailyBatchesAllocatesByPriority(t *testing.T) {
	s, d := newTestScheduler(t)
	d.expectLock()
	d.expectTx()

	// campaign 1 is younger than a week and scores 60; campaign 2 scores 50
	d.campaigns.EXPECT().ListSchedulable(mock.Anything, passDay).Return([]port.CampaignCandidate{
		candidate(2, 30*24*time.Hour, 1000),
		candidate(1, 24*time.Hour, 1000),
	}, nil)
	d.quota.EXPECT().DailyQuota(mock.Anything, passDay).Return(1000, nil)
	d.quota.EXPECT().CampaignQuotaAllocation(mock.Anything, mock.Anything, passDay).
		RunAndReturn(func(_ context.Context, id int64, _ time.Time) (domain.CampaignQuota, error) {
			return domain.NewCampaignQuota(id, 400, 0), nil
		})
	d.tx.EXPECT().MaxBatchNumber(mock.Anything, mock.Anything, passDay).Return(0, nil)

	ids, err := s.CreateDailyBatches(context.Background(), passNow)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	// 1: 100 + 1000*0.1*0.6 = 160; 2: 100 + 840*0.1*0.5 = 142
	require.Len(t, d.inserted, 4)
	want := []struct {
		campaign int64
		number   int
		size     int
		at       time.Time
	}{
		{1, 1, 100, passDay.Add(9 * time.Hour)},
		{1, 2, 60, passDay.Add(9*time.Hour + time.Minute)},
		{2, 1, 100, passDay.Add(9 * time.Hour)},
		{2, 2, 42, passDay.Add(9*time.Hour + time.Minute)},
	}
	for i, w := range want {
		b := d.inserted[i]
		assert.Equal(t, w.campaign, b.CampaignID, "batch %d", i)
		assert.Equal(t, w.number, b.BatchNumber, "batch %d", i)
		assert.Equal(t, w.size, b.BatchSize, "batch %d", i)
		assert.Equal(t, w.at, b.ScheduledAt, "batch %d", i)
		assert.Equal(t, domain.BatchPending, b.Status)
		assert.Equal(t, passDay, b.BatchDate)
		assert.Equal(t, domain.MaxBatchRetries, b.MaxRetries)
	}
}

func TestCreateDailyBatchesIsIdempotent(t *testing.T) {
	s, d := newTestScheduler(t)
	d.expectLock()

	// campaigns that already have batches for the day are not listed
	d.campaigns.EXPECT().ListSchedulable(mock.Anything, passDay).Return(nil, nil)

	ids, err := s.CreateDailyBatches(context.Background(), passNow)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCreateDailyBatchesLockHeld(t *testing.T) {
	s, d := newTestScheduler(t)
	d.locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return("", false, nil)

	ids, err := s.CreateDailyBatches(context.Background(), passNow)
	assert.ErrorIs(t, err, domain.ErrPassInProgress)
	assert.Nil(t, ids)
}

func TestCreateDailyBatchesLockError(t *testing.T) {
	s, d := newTestScheduler(t)
	d.locker.EXPECT().TryLock(mock.Anything, mock.Anything, mock.Anything).Return("", false, errors.New("redis down"))

	_, err := s.CreateDailyBatches(context.Background(), passNow)
	assert.ErrorContains(t, err, "redis down")
}

func TestCreateDailyBatchesRollsBack(t *testing.T) {
	s, d := newTestScheduler(t)
	d.expectLock()

	d.campaigns.EXPECT().ListSchedulable(mock.Anything, passDay).
		Return([]port.CampaignCandidate{candidate(1, time.Hour, 500)}, nil)
	d.quota.EXPECT().DailyQuota(mock.Anything, passDay).Return(1000, nil)
	d.quota.EXPECT().CampaignQuotaAllocation(mock.Anything, int64(1), passDay).
		Return(domain.NewCampaignQuota(1, 400, 0), nil)

	boom := errors.New("unique violation")
	d.batches.EXPECT().InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(port.BatchTx) error) error {
			return fn(d.tx)
		})
	d.tx.EXPECT().MaxBatchNumber(mock.Anything, int64(1), passDay).Return(0, nil)
	d.tx.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return(nil).Once()
	d.tx.EXPECT().InsertBatch(mock.Anything, mock.Anything).Return(boom).Once()

	ids, err := s.CreateDailyBatches(context.Background(), passNow)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, ids)
}

func TestCreateDailyBatchesSettings(t *testing.T) {
	s, d := newTestScheduler(t)
	d.expectLock()
	d.expectTx()

	one, limit := 1, 50
	capped := candidate(1, time.Hour, 1000)
	capped.Campaign.Settings = domain.BatchSettings{BatchSize: 20, MaxDailyTargets: &limit, DelaySeconds: 600}
	single := candidate(2, time.Hour, 1000)
	single.Campaign.Settings = domain.BatchSettings{MaxConcurrentBatches: 1, RetryMax: &one}
	broken := candidate(3, time.Hour, 1000)
	broken.Campaign.Settings = domain.BatchSettings{AllowedHoursStart: "18:00", AllowedHoursEnd: "08:00"}

	d.campaigns.EXPECT().ListSchedulable(mock.Anything, passDay).
		Return([]port.CampaignCandidate{capped, single, broken}, nil)
	d.quota.EXPECT().DailyQuota(mock.Anything, passDay).Return(1000, nil)
	d.quota.EXPECT().CampaignQuotaAllocation(mock.Anything, mock.Anything, passDay).
		RunAndReturn(func(_ context.Context, id int64, _ time.Time) (domain.CampaignQuota, error) {
			return domain.NewCampaignQuota(id, 400, 0), nil
		})
	d.tx.EXPECT().MaxBatchNumber(mock.Anything, int64(1), passDay).Return(3, nil)
	d.tx.EXPECT().MaxBatchNumber(mock.Anything, int64(2), passDay).Return(0, nil)

	ids, err := s.CreateDailyBatches(context.Background(), passNow)
	require.NoError(t, err)

	// campaign 1 is capped at 50 targets in batches of 20 numbered after 3;
	// campaign 2 gets a single batch; campaign 3 is skipped
	require.Len(t, ids, 4)
	sizes := map[int64][]int{}
	for _, b := range d.inserted {
		sizes[b.CampaignID] = append(sizes[b.CampaignID], b.BatchSize)
	}
	assert.Equal(t, []int{20, 20, 10}, sizes[1])
	assert.Equal(t, []int{100}, sizes[2])
	assert.NotContains(t, sizes, int64(3))

	assert.Equal(t, 4, d.inserted[0].BatchNumber)
	assert.Equal(t, passDay.Add(9*time.Hour+30*time.Minute), d.inserted[0].ScheduledAt)
	assert.Equal(t, 1, d.inserted[3].MaxRetries)
}

func TestGetPendingBatchesDefaultLimit(t *testing.T) {
	s, d := newTestScheduler(t)
	want := []domain.Batch{{ID: 7, Status: domain.BatchPending}}
	d.batches.EXPECT().ListPendingBatches(mock.Anything, passNow, 100).Return(want, nil)
	d.batches.EXPECT().ListPendingBatches(mock.Anything, passNow, 5).Return(nil, nil)

	got, err := s.GetPendingBatches(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = s.GetPendingBatches(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkBatchProcessing(t *testing.T) {
	s, d := newTestScheduler(t)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).
		Return(&domain.Batch{ID: 1, Status: domain.BatchPending, MaxRetries: 3}, nil)
	d.batches.EXPECT().UpdateBatch(mock.Anything, mock.Anything, domain.BatchPending).
		RunAndReturn(func(_ context.Context, b domain.Batch, _ domain.BatchStatus) (bool, error) {
			assert.Equal(t, domain.BatchProcessing, b.Status)
			require.NotNil(t, b.StartedAt)
			assert.Equal(t, passNow, *b.StartedAt)
			return true, nil
		})

	ok, err := s.MarkBatchProcessing(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkBatchProcessingLosesClaim(t *testing.T) {
	s, d := newTestScheduler(t)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).
		Return(&domain.Batch{ID: 1, Status: domain.BatchPending}, nil)
	d.batches.EXPECT().UpdateBatch(mock.Anything, mock.Anything, domain.BatchPending).Return(false, nil)

	ok, err := s.MarkBatchProcessing(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkBatchRejected(t *testing.T) {
	s, d := newTestScheduler(t)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(404)).Return(nil, nil)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).
		Return(&domain.Batch{ID: 1, Status: domain.BatchCompleted}, nil)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(2)).
		Return(&domain.Batch{ID: 2, Status: domain.BatchProcessing}, nil)

	ok, err := s.MarkBatchProcessing(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.MarkBatchProcessing(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.MarkBatchCompleted(context.Background(), 2, domain.BatchResult{Processed: -1})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMarkBatchStoreError(t *testing.T) {
	s, d := newTestScheduler(t)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).Return(nil, errors.New("conn reset"))

	ok, err := s.MarkBatchProcessing(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestMarkBatchCompleted(t *testing.T) {
	s, d := newTestScheduler(t)
	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).
		Return(&domain.Batch{ID: 1, Status: domain.BatchProcessing, ErrorMessage: "old"}, nil)
	d.batches.EXPECT().CompleteBatch(mock.Anything, mock.Anything, domain.BatchProcessing).
		RunAndReturn(func(_ context.Context, b domain.Batch, _ domain.BatchStatus) (bool, error) {
			assert.Equal(t, domain.BatchCompleted, b.Status)
			assert.Equal(t, 95, b.TargetsProcessed)
			assert.Equal(t, 90, b.TargetsContacted)
			assert.Equal(t, 5, b.TargetsFailed)
			assert.Empty(t, b.ErrorMessage)
			return true, nil
		})

	ok, err := s.MarkBatchCompleted(context.Background(), 1, domain.BatchResult{Processed: 95, Contacted: 90, Failed: 5})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkBatchFailedRetriesThenStops(t *testing.T) {
	s, d := newTestScheduler(t)
	stored := domain.Batch{ID: 1, Status: domain.BatchProcessing, MaxRetries: 3, ScheduledAt: passDay.Add(9 * time.Hour)}

	d.batches.EXPECT().GetBatch(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (*domain.Batch, error) {
			b := stored
			return &b, nil
		})
	d.batches.EXPECT().UpdateBatch(mock.Anything, mock.Anything, domain.BatchProcessing).
		RunAndReturn(func(_ context.Context, b domain.Batch, _ domain.BatchStatus) (bool, error) {
			stored = b
			return true, nil
		})

	for retry := 1; retry <= domain.MaxBatchRetries; retry++ {
		ok, err := s.MarkBatchFailed(context.Background(), 1, "smtp timeout")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, domain.BatchPending, stored.Status)
		assert.Equal(t, retry, stored.RetryCount)
		assert.Equal(t, passNow.Add(time.Duration(retry)*5*time.Minute), stored.ScheduledAt)
		assert.Equal(t, "smtp timeout", stored.ErrorMessage)

		// the worker claims the retried batch again
		stored.Status = domain.BatchProcessing
	}

	ok, err := s.MarkBatchFailed(context.Background(), 1, "smtp timeout")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.BatchFailed, stored.Status)
	assert.Equal(t, domain.MaxBatchRetries, stored.RetryCount)
}

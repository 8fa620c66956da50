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
	"campaign-scheduler/internal/core/port/mocks"
)

func newTestQuota(t *testing.T) (*QuotaTracker, *mocks.MockUsageRepository) {
	usage := mocks.NewMockUsageRepository(t)
	return NewQuotaTracker(usage, DefaultQuotaConfig(), nil, nil), usage
}

var (
	quotaDay     = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	quotaNextDay = quotaDay.AddDate(0, 0, 1)
	quotaWeekAgo = quotaDay.AddDate(0, 0, -7)
)

func TestDailyQuotaScalesWithUtilization(t *testing.T) {
	tests := []struct {
		name    string
		history []domain.DailyUsage
		want    int
	}{
		{"no history", nil, 1000},
		{"low utilization", []domain.DailyUsage{{Units: 500}, {Units: 500}}, 900},
		{"normal utilization", []domain.DailyUsage{{Units: 800}}, 1000},
		{"high utilization", []domain.DailyUsage{{Units: 990}, {Units: 1000}}, 1100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, usage := newTestQuota(t)
			usage.EXPECT().DailyUnits(mock.Anything, quotaWeekAgo, quotaDay, time.UTC).Return(tt.history, nil)

			got, err := q.DailyQuota(context.Background(), quotaDay.Add(15*time.Hour))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyQuotaError(t *testing.T) {
	q, usage := newTestQuota(t)
	usage.EXPECT().DailyUnits(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := q.DailyQuota(context.Background(), quotaDay)
	assert.ErrorContains(t, err, "timeout")
}

func TestRemainingQuotaNeverNegative(t *testing.T) {
	q, usage := newTestQuota(t)
	usage.EXPECT().DailyUnits(mock.Anything, quotaWeekAgo, quotaDay, time.UTC).Return(nil, nil)
	usage.EXPECT().UnitsUsed(mock.Anything, quotaDay, quotaNextDay).Return(1200, nil)

	got, err := q.RemainingQuota(context.Background(), quotaDay)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCampaignQuotaAllocation(t *testing.T) {
	q, usage := newTestQuota(t)
	usage.EXPECT().DailyUnits(mock.Anything, quotaWeekAgo, quotaDay, time.UTC).Return(nil, nil)
	usage.EXPECT().CampaignUnitsUsed(mock.Anything, int64(9), quotaDay, quotaNextDay).Return(100, nil)

	got, err := q.CampaignQuotaAllocation(context.Background(), 9, quotaDay)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignQuota{CampaignID: 9, MaxQuota: 400, Used: 100, Remaining: 300, PercentUsed: 25}, got)
}

func TestIsQuotaAvailable(t *testing.T) {
	q, usage := newTestQuota(t)
	usage.EXPECT().DailyUnits(mock.Anything, quotaWeekAgo, quotaDay, time.UTC).Return(nil, nil)
	usage.EXPECT().UnitsUsed(mock.Anything, quotaDay, quotaNextDay).Return(200, nil)
	usage.EXPECT().CampaignUnitsUsed(mock.Anything, int64(9), quotaDay, quotaNextDay).Return(150, nil)
	ctx := context.Background()
	id := int64(9)

	ok, err := q.IsQuotaAvailable(ctx, 300, nil, quotaDay)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.IsQuotaAvailable(ctx, 900, nil, quotaDay)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = q.IsQuotaAvailable(ctx, 250, &id, quotaDay)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.ReserveQuota(ctx, 300, &id, quotaDay)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAggregateAndPruneUsage(t *testing.T) {
	q, usage := newTestQuota(t)
	usage.EXPECT().RollupDailyUsage(mock.Anything, quotaDay, quotaDay, quotaNextDay).Return(12, nil)
	cutoff := quotaDay.AddDate(0, 0, -90)
	usage.EXPECT().PruneUsage(mock.Anything, cutoff).Return(40, nil)

	n, err := q.AggregateDailyUsage(context.Background(), quotaDay.Add(23*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)

	n, err = q.PruneUsage(context.Background(), cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 40, n)
}

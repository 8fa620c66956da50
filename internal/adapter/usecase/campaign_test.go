package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-scheduler/internal/core/domain"
	"campaign-scheduler/internal/core/port/mocks"
)

func newTestCampaignService(t *testing.T, now time.Time) (*CampaignService, *mocks.MockCampaignRepository, *mocks.MockUniverseRepository) {
	campaigns := mocks.NewMockCampaignRepository(t)
	universes := mocks.NewMockUniverseRepository(t)
	s := NewCampaignService(campaigns, universes, nil)
	s.now = func() time.Time { return now }
	return s, campaigns, universes
}

func TestCampaignTransition(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("pause running", func(t *testing.T) {
		s, campaigns, _ := newTestCampaignService(t, now)
		campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1, Status: domain.CampaignRunning}, nil)
		campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.CampaignRunning, domain.CampaignPaused).Return(true, nil)

		assert.NoError(t, s.Transition(ctx, 1, domain.CampaignPaused))
	})

	t.Run("completed is terminal", func(t *testing.T) {
		s, campaigns, _ := newTestCampaignService(t, now)
		campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1, Status: domain.CampaignCompleted}, nil)

		assert.ErrorIs(t, s.Transition(ctx, 1, domain.CampaignRunning), domain.ErrInvalidCampaignTransition)
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		s, campaigns, _ := newTestCampaignService(t, now)
		campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{ID: 1, Status: domain.CampaignRunning}, nil)
		campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.CampaignRunning, domain.CampaignCompleted).Return(false, nil)

		assert.ErrorIs(t, s.Transition(ctx, 1, domain.CampaignCompleted), domain.ErrInvalidCampaignTransition)
	})

	t.Run("missing", func(t *testing.T) {
		s, campaigns, _ := newTestCampaignService(t, now)
		campaigns.EXPECT().GetCampaign(mock.Anything, int64(2)).Return(nil, nil)

		assert.ErrorIs(t, s.Transition(ctx, 2, domain.CampaignPaused), domain.ErrNotFound)
	})
}

func TestCampaignPriorityScore(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s, campaigns, universes := newTestCampaignService(t, now)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(&domain.Campaign{
		ID:               1,
		UniverseID:       4,
		Status:           domain.CampaignRunning,
		TotalTargets:     1000,
		ContactedTargets: 100,
		CreatedAt:        now.Add(-24 * time.Hour),
	}, nil)
	universes.EXPECT().GetUniverse(mock.Anything, int64(4)).Return(&domain.TargetUniverse{ID: 4, ActualSize: 5000}, nil)

	got, err := s.PriorityScore(context.Background(), 1)
	require.NoError(t, err)
	// 50 + 10 (new) + 5 (large universe)
	assert.InDelta(t, 65, got, 1e-9)
}

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

func newTestUniverseService(t *testing.T, now time.Time) (*UniverseService, *mocks.MockUniverseRepository) {
	repo := mocks.NewMockUniverseRepository(t)
	s := NewUniverseService(repo, NewGeoValidator(), nil)
	s.now = func() time.Time { return now }
	return s, repo
}

func TestRankUniverses(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s, repo := newTestUniverseService(t, now)

	stale := domain.TargetUniverse{ID: 1}
	fresh := domain.TargetUniverse{
		ID:             2,
		Verticals:      []string{"hvac", "plumbing", "roofing", "legal", "dental"},
		ActualSize:     10000,
		QualifiedCount: 5000,
		LastRefresh:    &now,
	}
	repo.EXPECT().ListActiveUniverses(mock.Anything).Return([]domain.TargetUniverse{stale, fresh}, nil)
	repo.EXPECT().ListUniverseCampaigns(mock.Anything, int64(1)).Return(nil, nil)
	repo.EXPECT().ListUniverseCampaigns(mock.Anything, int64(2)).Return([]domain.Campaign{
		{TotalTargets: 100, ContactedTargets: 100, ConvertedTargets: 50},
	}, nil)

	got, err := s.RankUniverses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].Universe.ID)
	// 0.30 + 0.25*0.5 + 0.20 + 0.15 + 0.10*0.5
	assert.InDelta(t, 0.825, got[0].Score, 1e-9)
	assert.Equal(t, int64(1), got[1].Universe.ID)
	assert.Zero(t, got[1].Score)
}

func TestRefreshFreshness(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s, repo := newTestUniverseService(t, now)

	repo.EXPECT().GetUniverse(mock.Anything, int64(3)).Return(&domain.TargetUniverse{ID: 3, ActualSize: 10}, nil)
	repo.EXPECT().CountTargets(mock.Anything, int64(3)).Return(domain.TargetCounts{Actual: 120, Qualified: 150}, nil)
	repo.EXPECT().UpdateUniverseSize(mock.Anything, int64(3), domain.TargetCounts{Actual: 120, Qualified: 120}, now).Return(nil)

	u, err := s.RefreshFreshness(context.Background(), 3)
	require.NoError(t, err)
	assert.EqualValues(t, 120, u.ActualSize)
	assert.EqualValues(t, 120, u.QualifiedCount)
	require.NotNil(t, u.LastRefresh)
	assert.Equal(t, now, *u.LastRefresh)
}

func TestRefreshActive(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	s, repo := newTestUniverseService(t, now)

	broken := domain.GeographyConfig{Constraints: []domain.GeographicConstraint{
		{Level: domain.GeoCountry, Values: []string{"US"}},
		{Level: domain.GeoState, Values: []string{"TX"}},
	}}
	repo.EXPECT().ListActiveUniverses(mock.Anything).Return([]domain.TargetUniverse{
		{ID: 1, Geography: broken},
		{ID: 2},
	}, nil)
	for _, id := range []int64{1, 2} {
		repo.EXPECT().GetUniverse(mock.Anything, id).Return(&domain.TargetUniverse{ID: id}, nil)
		repo.EXPECT().CountTargets(mock.Anything, id).Return(domain.TargetCounts{Actual: 10, Qualified: 5}, nil)
		repo.EXPECT().UpdateUniverseSize(mock.Anything, id, domain.TargetCounts{Actual: 10, Qualified: 5}, now).Return(nil)
	}

	n, err := s.RefreshActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUniverseNotFound(t *testing.T) {
	s, repo := newTestUniverseService(t, time.Now())
	repo.EXPECT().GetUniverse(mock.Anything, int64(404)).Return(nil, nil)

	_, err := s.PriorityScore(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivateUniverse(t *testing.T) {
	ctx := context.Background()

	t.Run("active campaigns", func(t *testing.T) {
		s, repo := newTestUniverseService(t, time.Now())
		repo.EXPECT().GetUniverse(mock.Anything, int64(1)).Return(&domain.TargetUniverse{ID: 1, Active: true}, nil)
		repo.EXPECT().CountActiveCampaigns(mock.Anything, int64(1)).Return(2, nil)

		assert.ErrorIs(t, s.Deactivate(ctx, 1), domain.ErrUniverseInUse)
	})

	t.Run("campaign activated concurrently", func(t *testing.T) {
		s, repo := newTestUniverseService(t, time.Now())
		repo.EXPECT().GetUniverse(mock.Anything, int64(1)).Return(&domain.TargetUniverse{ID: 1, Active: true}, nil)
		repo.EXPECT().CountActiveCampaigns(mock.Anything, int64(1)).Return(0, nil)
		repo.EXPECT().DeactivateUniverse(mock.Anything, int64(1)).Return(false, nil)

		assert.ErrorIs(t, s.Deactivate(ctx, 1), domain.ErrUniverseInUse)
	})

	t.Run("idle", func(t *testing.T) {
		s, repo := newTestUniverseService(t, time.Now())
		repo.EXPECT().GetUniverse(mock.Anything, int64(1)).Return(&domain.TargetUniverse{ID: 1, Active: true}, nil)
		repo.EXPECT().CountActiveCampaigns(mock.Anything, int64(1)).Return(0, nil)
		repo.EXPECT().DeactivateUniverse(mock.Anything, int64(1)).Return(true, nil)

		assert.NoError(t, s.Deactivate(ctx, 1))
	})
}

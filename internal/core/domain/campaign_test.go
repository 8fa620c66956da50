package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignStatusTransitions(t *testing.T) {
	assert.True(t, CampaignRunning.CanTransitionTo(CampaignPaused))
	assert.True(t, CampaignPaused.CanTransitionTo(CampaignRunning))
	assert.True(t, CampaignDraft.CanTransitionTo(CampaignScheduled))
	assert.False(t, CampaignRunning.CanTransitionTo(CampaignDraft))
	assert.False(t, CampaignCompleted.CanTransitionTo(CampaignRunning))
	assert.False(t, CampaignCancelled.CanTransitionTo(CampaignRunning))
	assert.False(t, CampaignError.CanTransitionTo(CampaignRunning))

	c := Campaign{Status: CampaignRunning}
	require.NoError(t, c.TransitionTo(CampaignPaused, time.Now()))
	require.NoError(t, c.TransitionTo(CampaignRunning, time.Now()))
	require.NoError(t, c.TransitionTo(CampaignCompleted, time.Now()))
	assert.ErrorIs(t, c.TransitionTo(CampaignRunning, time.Now()), ErrInvalidCampaignTransition)
	assert.Equal(t, CampaignCompleted, c.Status)
}

func TestCampaignRates(t *testing.T) {
	c := Campaign{TotalTargets: 200, ContactedTargets: 100, RespondedTargets: 25, ConvertedTargets: 10}
	assert.InDelta(t, 0.05, c.ConversionRate(), 1e-9)
	assert.InDelta(t, 0.25, c.ResponseRate(), 1e-9)
	assert.Zero(t, Campaign{}.ConversionRate())
	assert.Zero(t, Campaign{}.ResponseRate())
}

func TestBatchSettingsDefaultsAndWindow(t *testing.T) {
	s := BatchSettings{BatchSize: 25}.WithDefaults(DefaultBatchSettings())
	require.NoError(t, s.Validate())
	assert.Equal(t, 25, s.BatchSize)
	assert.Equal(t, 5, s.MaxConcurrentBatches)
	assert.Equal(t, time.Minute, s.Delay())
	assert.Equal(t, MaxBatchRetries, s.Retries())

	start, end, err := s.Window()
	require.NoError(t, err)
	assert.Equal(t, 9*time.Hour, start)
	assert.Equal(t, 17*time.Hour, end)

	zero := 0
	s.RetryMax = &zero
	assert.Equal(t, 0, s.Retries())

	inverted := s
	inverted.AllowedHoursStart, inverted.AllowedHoursEnd = "18:00", "08:00"
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidBatchSettings)

	garbled := s
	garbled.AllowedHoursEnd = "5pm"
	assert.ErrorIs(t, garbled.Validate(), ErrInvalidBatchSettings)
}

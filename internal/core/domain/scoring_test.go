package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignPriority(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	fresh := Campaign{CreatedAt: now.Add(-48 * time.Hour)}
	assert.InDelta(t, 60, CampaignPriority(fresh, 500, now), 1e-9)
	assert.InDelta(t, 65, CampaignPriority(fresh, 5000, now), 1e-9)

	old := Campaign{
		CreatedAt:        now.Add(-30 * 24 * time.Hour),
		TotalTargets:     100,
		ContactedTargets: 50,
		RespondedTargets: 25,
		ConvertedTargets: 10,
	}
	// 50 + 30*0.1 + 20*0.5
	assert.InDelta(t, 63, CampaignPriority(old, 0, now), 1e-9)

	perfect := Campaign{
		CreatedAt:        now,
		TotalTargets:     10,
		ContactedTargets: 10,
		RespondedTargets: 10,
		ConvertedTargets: 10,
	}
	assert.Equal(t, 100.0, CampaignPriority(perfect, 2000, now))
}

func TestFreshnessScore(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	at := func(h float64) *time.Time {
		t := now.Add(-time.Duration(h * float64(time.Hour)))
		return &t
	}
	assert.Zero(t, FreshnessScore(nil, now))
	assert.InDelta(t, 1.0, FreshnessScore(at(0), now), 1e-9)
	assert.InDelta(t, 0.75, FreshnessScore(at(12), now), 1e-9)
	assert.InDelta(t, 0.5, FreshnessScore(at(24), now), 1e-9)
	assert.InDelta(t, 0.25, FreshnessScore(at(48), now), 1e-9)
	assert.Zero(t, FreshnessScore(at(120), now))
	assert.Zero(t, FreshnessScore(at(1000), now))
}

func TestFreshnessScoreIsMonotonic(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	prev := 2.0
	for m := 0; m <= 200*60; m += 7 {
		refreshed := now.Add(-time.Duration(m) * time.Minute)
		score := FreshnessScore(&refreshed, now)
		assert.LessOrEqual(t, score, prev, "age %dm", m)
		assert.GreaterOrEqual(t, score, 0.0)
		prev = score
	}
}

func TestUniversePriority(t *testing.T) {
	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	refreshed := now
	u := TargetUniverse{
		ActualSize:     10000,
		QualifiedCount: 5000,
		Verticals:      []string{"dental", "legal", "hvac", "roofing", "auto"},
		LastRefresh:    &refreshed,
	}
	campaigns := []Campaign{
		{TotalTargets: 100, ConvertedTargets: 20},
		{TotalTargets: 100, ConvertedTargets: 0},
	}
	// 0.3 + 0.25*0.5 + 0.2 + 0.15 + 0.1*0.1
	assert.InDelta(t, 0.785, UniversePriority(u, campaigns, now), 1e-9)
	assert.InDelta(t, 0.0, UniversePriority(TargetUniverse{}, nil, now), 1e-9)
}

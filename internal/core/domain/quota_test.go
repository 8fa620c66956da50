package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilizationFactor(t *testing.T) {
	p := DefaultUtilizationPolicy()
	days := func(units ...int64) []DailyUsage {
		out := make([]DailyUsage, len(units))
		for i, u := range units {
			out[i] = DailyUsage{Units: u}
		}
		return out
	}
	assert.Equal(t, 1.0, p.Factor(nil, 1000))
	assert.Equal(t, 0.9, p.Factor(days(500, 600, 650), 1000))
	assert.Equal(t, 1.0, p.Factor(days(800, 900, 700), 1000))
	assert.Equal(t, 1.1, p.Factor(days(1000, 990, 980), 1000))
	assert.Equal(t, 1.0, p.Factor(days(1000), 0))
}

func TestNewCampaignQuota(t *testing.T) {
	q := NewCampaignQuota(7, CampaignCeiling(1000, 0.4), 100)
	assert.Equal(t, 400, q.MaxQuota)
	assert.Equal(t, 300, q.Remaining)
	assert.InDelta(t, 25.0, q.PercentUsed, 1e-9)

	over := NewCampaignQuota(7, 100, 150)
	assert.Zero(t, over.Remaining)
	assert.Zero(t, NewCampaignQuota(7, 0, 0).PercentUsed)
}

func TestAllocateQuotaPriorityScenario(t *testing.T) {
	allocs := AllocateQuota(1000, []AllocationCandidate{
		{CampaignID: 2, Priority: 20, RemainingTargets: 1000, BatchSize: 100, Ceiling: 400},
		{CampaignID: 1, Priority: 80, RemainingTargets: 1000, BatchSize: 100, Ceiling: 400},
	})
	require.Len(t, allocs, 2)
	assert.Equal(t, int64(1), allocs[0].CampaignID)
	assert.Equal(t, 180, allocs[0].Quota)
	assert.Equal(t, 116, allocs[1].Quota)
	assert.GreaterOrEqual(t, allocs[0].Quota, allocs[1].Quota)
	assert.LessOrEqual(t, allocs[0].Quota+allocs[1].Quota, 1000)
}

func TestAllocateQuotaFairFloor(t *testing.T) {
	for n := 1; n <= 7; n++ {
		total := 1000
		ceiling := CampaignCeiling(total, 0.4)
		cands := make([]AllocationCandidate, n)
		for i := range cands {
			cands[i] = AllocationCandidate{CampaignID: int64(i + 1), RemainingTargets: 5000, BatchSize: 5000, Ceiling: ceiling}
		}
		allocs := AllocateQuota(total, cands)
		share := min(total/n, ceiling)
		sum := 0
		for _, a := range allocs {
			assert.InDelta(t, share, a.Quota, 1, "n=%d campaign %d", n, a.CampaignID)
			assert.Positive(t, a.Quota)
			sum += a.Quota
		}
		assert.LessOrEqual(t, sum, total)
	}
}

func TestAllocateQuotaEqualPrioritiesFavourFirstRanked(t *testing.T) {
	cands := make([]AllocationCandidate, 3)
	for i := range cands {
		cands[i] = AllocationCandidate{CampaignID: int64(i + 1), Priority: 50, RemainingTargets: 5000, BatchSize: 5000, Ceiling: 400}
	}
	allocs := AllocateQuota(1000, cands)

	// Each bonus is taken from what earlier campaigns left, so equal
	// priorities do not mean equal shares.
	got := make([]int, len(allocs))
	sum := 0
	for i, a := range allocs {
		assert.Equal(t, int64(i+1), a.CampaignID)
		got[i] = a.Quota
		sum += a.Quota
	}
	assert.Equal(t, []int{383, 338, 279}, got)
	assert.Equal(t, 1000, sum)
	assert.Greater(t, got[0]-got[2], 1)
}

func TestAllocateQuotaConservation(t *testing.T) {
	cands := []AllocationCandidate{
		{CampaignID: 1, Priority: 100, RemainingTargets: 10000, BatchSize: 10000, Ceiling: 400},
		{CampaignID: 2, Priority: 95, RemainingTargets: 10000, BatchSize: 10000, Ceiling: 400},
		{CampaignID: 3, Priority: 90, RemainingTargets: 10000, BatchSize: 10000, Ceiling: 400},
		{CampaignID: 4, Priority: 10, RemainingTargets: 3, BatchSize: 100, Ceiling: 400},
	}
	allocs := AllocateQuota(1000, cands)
	sum := 0
	for _, a := range allocs {
		assert.LessOrEqual(t, a.Quota, 400)
		sum += a.Quota
	}
	assert.LessOrEqual(t, sum, 1000)
	assert.Equal(t, 3, allocs[3].Quota)
}

func TestAllocateQuotaTiesKeepInputOrder(t *testing.T) {
	allocs := AllocateQuota(100, []AllocationCandidate{
		{CampaignID: 5, Priority: 50, RemainingTargets: 100, BatchSize: 100, Ceiling: 100},
		{CampaignID: 3, Priority: 50, RemainingTargets: 100, BatchSize: 100, Ceiling: 100},
		{CampaignID: 9, Priority: 50, RemainingTargets: 100, BatchSize: 100, Ceiling: 100},
	})
	assert.Equal(t, []int64{5, 3, 9}, []int64{allocs[0].CampaignID, allocs[1].CampaignID, allocs[2].CampaignID})
}

func TestAllocateQuotaNothingLeft(t *testing.T) {
	allocs := AllocateQuota(0, []AllocationCandidate{{CampaignID: 1, Priority: 90, RemainingTargets: 10, BatchSize: 10, Ceiling: 10}})
	require.Len(t, allocs, 1)
	assert.Zero(t, allocs[0].Quota)
}

package domain

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// UtilizationPolicy turns trailing usage into a quota multiplier.
type UtilizationPolicy struct {
	Low    float64
	High   float64
	Shrink float64
	Grow   float64
}

// DefaultUtilizationPolicy shrinks the quota by 10% under 70% average
// utilisation and grows it by 10% above 95%.
func DefaultUtilizationPolicy() UtilizationPolicy {
	return UtilizationPolicy{Low: 0.70, High: 0.95, Shrink: 0.9, Grow: 1.1}
}

// DailyUsage is the number of units processed on one calendar day.
type DailyUsage struct {
	Day   time.Time
	Units int64
}

// Factor averages units/base over the days in history. No history, or a
// non-positive base, yields 1.0.
func (p UtilizationPolicy) Factor(history []DailyUsage, base int) float64 {
	if len(history) == 0 || base <= 0 {
		return 1
	}
	var sum float64
	for _, d := range history {
		sum += float64(d.Units) / float64(base)
	}
	avg := sum / float64(len(history))
	switch {
	case avg < p.Low:
		return p.Shrink
	case avg > p.High:
		return p.Grow
	default:
		return 1
	}
}

// CampaignQuota is one campaign's share of a day's quota.
type CampaignQuota struct {
	CampaignID  int64
	MaxQuota    int
	Used        int
	Remaining   int
	PercentUsed float64
}

// NewCampaignQuota derives the remaining share from the ceiling and usage.
func NewCampaignQuota(campaignID int64, maxQuota, used int) CampaignQuota {
	q := CampaignQuota{
		CampaignID: campaignID,
		MaxQuota:   maxQuota,
		Used:       used,
		Remaining:  max(maxQuota-used, 0),
	}
	if maxQuota > 0 {
		q.PercentUsed = float64(used) / float64(maxQuota) * 100
	}
	return q
}

// CampaignCeiling is floor(dailyQuota * fraction).
func CampaignCeiling(dailyQuota int, fraction float64) int {
	return int(math.Floor(float64(dailyQuota) * fraction))
}

// priorityBonusFraction is the share of the remaining quota a priority-100
// campaign earns on top of its floor.
const priorityBonusFraction = 0.1

// AllocationCandidate is a campaign competing for the day's quota.
type AllocationCandidate struct {
	CampaignID       int64
	Priority         float64
	RemainingTargets int
	BatchSize        int
	// Ceiling caps the allocation regardless of priority.
	Ceiling int
}

// QuotaAllocation is a campaign's share for one scheduling pass.
type QuotaAllocation struct {
	CampaignID int64
	Priority   float64
	Quota      int
}

// AllocateQuota splits totalQuota between candidates. Candidates are
// ranked by priority (stable, so ties keep input order); each one gets a
// floor of min(batch size, remaining targets, an equal share of what is
// left) plus a priority bonus, bounded by its remaining targets, its
// ceiling and the quota left. The result is in ranked order and its sum
// never exceeds totalQuota.
func AllocateQuota(totalQuota int, candidates []AllocationCandidate) []QuotaAllocation {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, func(a, b AllocationCandidate) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	remaining := max(totalQuota, 0)
	out := make([]QuotaAllocation, 0, len(ranked))
	for i, c := range ranked {
		left := len(ranked) - i
		targets := max(c.RemainingTargets, 0)

		floor := min(c.BatchSize, targets, remaining/left)
		bonus := int(math.Floor(float64(remaining) * priorityBonusFraction * c.Priority / 100))
		allocated := min(targets, floor+bonus, remaining, max(c.Ceiling, 0))
		allocated = max(allocated, 0)

		remaining -= allocated
		out = append(out, QuotaAllocation{CampaignID: c.CampaignID, Priority: c.Priority, Quota: allocated})
	}
	return out
}

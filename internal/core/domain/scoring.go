package domain

import "time"

// CampaignPriority scores a campaign in [0,100]: base 50, +10 while the
// campaign is younger than a week, up to +30 for conversion rate, up to +20
// for response rate and +5 when its universe holds more than 1000 targets.
func CampaignPriority(c Campaign, universeActualSize int64, now time.Time) float64 {
	score := 50.0
	if now.Sub(c.CreatedAt) < 7*24*time.Hour {
		score += 10
	}
	score += 30 * c.ConversionRate()
	score += 20 * c.ResponseRate()
	if universeActualSize > 1000 {
		score += 5
	}
	return clamp(score, 0, 100)
}

// FreshnessScore decays linearly from 1.0 at refresh time to 0.5 after 24
// hours, then by a further 0.5 over the next 96 hours. A universe that was
// never refreshed scores 0.
func FreshnessScore(lastRefresh *time.Time, now time.Time) float64 {
	if lastRefresh == nil {
		return 0
	}
	hours := now.Sub(*lastRefresh).Hours()
	if hours <= 0 {
		return 1
	}
	if hours <= 24 {
		return 1 - 0.5*hours/24
	}
	return max(0, 0.5-(hours-24)/96)
}

// Universe score weights.
const (
	weightSize          = 0.30
	weightQualification = 0.25
	weightFreshness     = 0.20
	weightDiversity     = 0.15
	weightConversion    = 0.10
)

// UniversePriority scores a universe in [0,1] from its size, qualification
// rate, freshness, vertical diversity and the mean conversion rate of its
// campaigns.
func UniversePriority(u TargetUniverse, campaigns []Campaign, now time.Time) float64 {
	size := min(float64(u.ActualSize)/10000, 1)
	diversity := min(float64(len(u.Verticals))/5, 1)

	var conversion float64
	if len(campaigns) > 0 {
		for _, c := range campaigns {
			conversion += c.ConversionRate()
		}
		conversion /= float64(len(campaigns))
	}

	score := weightSize*max(size, 0) +
		weightQualification*u.QualificationRate() +
		weightFreshness*FreshnessScore(u.LastRefresh, now) +
		weightDiversity*diversity +
		weightConversion*conversion
	return clamp(score, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

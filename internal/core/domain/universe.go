package domain

import "time"

// TargetUniverse is a named, reusable targeting population. ActualSize,
// QualifiedCount and LastRefresh change only through a freshness refresh.
type TargetUniverse struct {
	ID             int64
	Name           string
	Verticals      []string
	Geography      GeographyConfig
	EstimatedSize  int64
	ActualSize     int64
	QualifiedCount int64
	LastRefresh    *time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QualificationRate is qualified/actual in [0,1].
func (u TargetUniverse) QualificationRate() float64 {
	if u.ActualSize <= 0 {
		return 0
	}
	return min(float64(u.QualifiedCount)/float64(u.ActualSize), 1)
}

// TargetCounts is the result of recounting a universe's members.
type TargetCounts struct {
	Actual    int64
	Qualified int64
}

// Normalize keeps Qualified within [0, Actual].
func (c TargetCounts) Normalize() TargetCounts {
	c.Actual = max(c.Actual, 0)
	c.Qualified = min(max(c.Qualified, 0), c.Actual)
	return c
}

// UniverseRanking pairs a universe with its priority score.
type UniverseRanking struct {
	Universe TargetUniverse
	Score    float64
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-scheduler/internal/core/domain"
)

func geo(cs ...domain.GeographicConstraint) domain.GeographyConfig {
	return domain.GeographyConfig{Constraints: cs}
}

func at(level domain.GeoLevel, values ...string) domain.GeographicConstraint {
	return domain.GeographicConstraint{Level: level, Values: values}
}

func TestDetectConflictsHierarchy(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(at(domain.GeoCountry, "US"), at(domain.GeoState, "CA")))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictHierarchy, conflicts[0].Type)
	assert.Equal(t, domain.SeverityError, conflicts[0].Severity)
	assert.Equal(t, []int{0, 1}, conflicts[0].AffectedConstraints)
	assert.True(t, domain.HasErrors(conflicts))
}

func TestDetectConflictsZipFormat(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(at(domain.GeoZipCode, "94105", "1234", "94105-1234")))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictFormat, conflicts[0].Type)
	assert.Equal(t, domain.SeverityError, conflicts[0].Severity)
	assert.Contains(t, conflicts[0].Message, "1234")
	assert.NotContains(t, conflicts[0].Message, "94105")
}

func TestDetectConflictsStateCodes(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(at(domain.GeoState, "CA", "dc", "ZZ")))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictFormat, conflicts[0].Type)
	assert.Contains(t, conflicts[0].Message, "ZZ")
}

func TestDetectConflictsOverlap(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(
		at(domain.GeoState, "CA", "TX"),
		at(domain.GeoState, "tx", "NY"),
	))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictOverlap, conflicts[0].Type)
	assert.Equal(t, domain.SeverityWarning, conflicts[0].Severity)
	assert.Equal(t, []int{0, 1}, conflicts[0].AffectedConstraints)
	assert.False(t, domain.HasErrors(conflicts))
}

func TestDetectConflictsCityInsideState(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(
		at(domain.GeoState, "TX"),
		at(domain.GeoCity, "Austin, TX", "Dallas"),
	))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictOverlap, conflicts[0].Type)
	assert.Contains(t, conflicts[0].Message, "Austin, TX")
}

func TestDetectConflictsContradiction(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(
		at(domain.GeoState, "CA"),
		at(domain.GeoCity, "Austin, Texas", "Fresno, CA"),
	))

	require.Len(t, conflicts, 2)
	var contradiction domain.Conflict
	for _, c := range conflicts {
		if c.Type == domain.ConflictContradiction {
			contradiction = c
		}
	}
	assert.Equal(t, domain.SeverityError, contradiction.Severity)
	assert.Equal(t, []int{0, 1}, contradiction.AffectedConstraints)
	assert.Contains(t, contradiction.Message, "Austin, Texas")
	assert.NotContains(t, contradiction.Message, "Fresno")
}

func TestDetectConflictsRadius(t *testing.T) {
	v := NewGeoValidator()
	radius := func(r float64, c *domain.GeoPoint) domain.GeographicConstraint {
		return domain.GeographicConstraint{Level: domain.GeoRadius, Radius: &r, Center: c}
	}

	assert.Empty(t, v.DetectConflicts(geo(radius(25, &domain.GeoPoint{Lat: 30.27, Lng: -97.74}))))

	tests := []struct {
		name string
		c    domain.GeographicConstraint
	}{
		{"zero radius", radius(0, &domain.GeoPoint{})},
		{"too wide", radius(1500, &domain.GeoPoint{})},
		{"no center", radius(10, nil)},
		{"latitude out of range", radius(10, &domain.GeoPoint{Lat: 91})},
		{"longitude out of range", radius(10, &domain.GeoPoint{Lng: -181})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := v.DetectConflicts(geo(tt.c))
			require.Len(t, conflicts, 1)
			assert.Equal(t, domain.ConflictFormat, conflicts[0].Type)
		})
	}
}

func TestDetectConflictsScope(t *testing.T) {
	v := NewGeoValidator()

	conflicts := v.DetectConflicts(geo(at(domain.GeoCountry, "US", "CA", "MX", "GB")))
	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictScope, conflicts[0].Type)
	assert.Equal(t, domain.SeverityWarning, conflicts[0].Severity)

	zips := make([]string, 101)
	for i := range zips {
		zips[i] = "10001"
	}
	conflicts = v.DetectConflicts(geo(at(domain.GeoZipCode, zips...)))
	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictScope, conflicts[0].Type)
}

func TestDetectConflictsUnknownLevel(t *testing.T) {
	conflicts := NewGeoValidator().DetectConflicts(geo(at("galaxy", "Milky Way")))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.SeverityCritical, conflicts[0].Severity)
}

func TestDetectConflictsMixedLevels(t *testing.T) {
	conflicts := NewGeoValidator().DetectConflicts(geo(
		at(domain.GeoState, "CA", "OR"),
		at(domain.GeoCity, "Seattle, WA"),
		at(domain.GeoZipCode, "97201"),
	))

	require.Len(t, conflicts, 1)
	assert.Equal(t, domain.ConflictContradiction, conflicts[0].Type)
	assert.Empty(t, NewGeoValidator().DetectConflicts(geo(at(domain.GeoState, "CA", "OR"))))
}

func TestResolveOverlaps(t *testing.T) {
	in := geo(
		at(domain.GeoState, "CA", "TX"),
		at(domain.GeoState, "TX", "NY"),
		at(domain.GeoState, "NY", "FL"),
		at(domain.GeoState, "WA"),
		at(domain.GeoCity, "Austin, TX"),
	)

	out := NewGeoValidator().ResolveOverlaps(in)

	require.Len(t, out.Constraints, 3)
	assert.Equal(t, []string{"CA", "TX", "NY", "FL"}, out.Constraints[0].Values)
	assert.Equal(t, []string{"WA"}, out.Constraints[1].Values)
	assert.Equal(t, domain.GeoCity, out.Constraints[2].Level)

	require.Len(t, in.Constraints, 5)
	assert.Equal(t, []string{"CA", "TX"}, in.Constraints[0].Values)
}

func TestResolveOverlapsKeepsRadius(t *testing.T) {
	r := 10.0
	c := domain.GeographicConstraint{Level: domain.GeoRadius, Radius: &r, Center: &domain.GeoPoint{}}

	out := NewGeoValidator().ResolveOverlaps(geo(c, c))

	assert.Len(t, out.Constraints, 2)
}

func TestValidateLocation(t *testing.T) {
	tests := []struct {
		in         string
		typ        domain.LocationType
		valid      bool
		verified   bool
		normalized string
	}{
		{"94105", domain.LocationZipCode, true, true, "94105"},
		{" 94105-1234 ", domain.LocationZipCode, true, true, "94105-1234"},
		{"ca", domain.LocationState, true, true, "CA"},
		{"Texas", domain.LocationState, true, true, "TX"},
		{"Austin,  TX", domain.LocationCityState, true, true, "Austin, TX"},
		{"Austin, texas", domain.LocationCityState, true, true, "Austin, TX"},
		{"London, UK", domain.LocationInternationalCity, true, false, "London, UK"},
		{"Springfield", domain.LocationCity, true, false, "Springfield"},
		{"test city", domain.LocationUnknown, false, false, "test city"},
		{"NULL", domain.LocationUnknown, false, false, "NULL"},
		{"", domain.LocationUnknown, false, false, ""},
		{"12345678", domain.LocationUnknown, false, false, "12345678"},
	}
	v := NewGeoValidator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := v.ValidateLocation(tt.in)
			assert.Equal(t, tt.in, got.Input)
			assert.Equal(t, tt.typ, got.Type)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.verified, got.Verified)
			assert.Equal(t, tt.normalized, got.Normalized)
			if !tt.valid {
				assert.NotEmpty(t, got.Reason)
			}
		})
	}
}

package domain

// GeoLevel is the granularity of a geographic constraint.
type GeoLevel string

const (
	GeoCountry      GeoLevel = "country"
	GeoState        GeoLevel = "state"
	GeoCounty       GeoLevel = "county"
	GeoCity         GeoLevel = "city"
	GeoZipCode      GeoLevel = "zipCode"
	GeoNeighborhood GeoLevel = "neighborhood"
	GeoRadius       GeoLevel = "radius"
)

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GeographicConstraint restricts a universe to a set of places at one
// level. Radius constraints carry a radius in miles and a center.
type GeographicConstraint struct {
	Level  GeoLevel  `json:"level"`
	Values []string  `json:"values"`
	Radius *float64  `json:"radius,omitempty"`
	Center *GeoPoint `json:"center,omitempty"`
}

// GeographyConfig is the unordered set of constraints of a universe.
type GeographyConfig struct {
	Constraints []GeographicConstraint `json:"constraints"`
}

// ConflictType classifies a geography problem.
type ConflictType string

const (
	ConflictHierarchy     ConflictType = "hierarchy_conflict"
	ConflictOverlap       ConflictType = "overlap"
	ConflictContradiction ConflictType = "contradiction"
	ConflictFormat        ConflictType = "format_error"
	ConflictScope         ConflictType = "scope_warning"
)

// Severity ranks a conflict.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Conflict is one detected inconsistency. AffectedConstraints holds
// indices into GeographyConfig.Constraints.
type Conflict struct {
	Type                ConflictType `json:"type"`
	Severity            Severity     `json:"severity"`
	Message             string       `json:"message"`
	AffectedConstraints []int        `json:"affected_constraints"`
	SuggestedResolution string       `json:"suggested_resolution"`
}

// HasErrors reports whether any conflict blocks the configuration.
func HasErrors(conflicts []Conflict) bool {
	for _, c := range conflicts {
		if c.Severity == SeverityError || c.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// LocationType is the classification of a free-text location.
type LocationType string

const (
	LocationZipCode           LocationType = "zip_code"
	LocationState             LocationType = "state"
	LocationCityState         LocationType = "city_state"
	LocationInternationalCity LocationType = "international_city"
	LocationCity              LocationType = "city"
	LocationUnknown           LocationType = "unknown"
)

// LocationValidation is the verdict on one free-text location.
type LocationValidation struct {
	Input      string       `json:"input"`
	Normalized string       `json:"normalized"`
	Type       LocationType `json:"type"`
	Valid      bool         `json:"valid"`
	Verified   bool         `json:"verified"`
	Reason     string       `json:"reason,omitempty"`
}

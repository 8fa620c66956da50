package usecase

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"campaign-scheduler/internal/core/domain"
)

// Scope limits.
const (
	maxCountryValues = 3
	maxZipValues     = 100
	maxRadiusMiles   = 1000.0
)

var (
	zipPattern       = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cityStatePattern = regexp.MustCompile(`^([^,]+),\s*([^,]+)$`)
)

// usStates maps the 50 state codes plus DC to their names.
var usStates = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas", "CA": "California",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware", "FL": "Florida", "GA": "Georgia",
	"HI": "Hawaii", "ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi", "MO": "Missouri",
	"MT": "Montana", "NE": "Nebraska", "NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey",
	"NM": "New Mexico", "NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
	"DC": "District of Columbia",
}

var stateCodesByName = func() map[string]string {
	m := make(map[string]string, len(usStates))
	for code, name := range usStates {
		m[strings.ToUpper(name)] = code
	}
	return m
}()

// suspiciousLocations are substrings that mark placeholder input.
var suspiciousLocations = []string{"test", "invalid", "null", "undefined", "n/a", "asdf", "xxx", "dummy", "placeholder", "sample"}

var subCountryLevels = []domain.GeoLevel{domain.GeoState, domain.GeoCounty, domain.GeoCity, domain.GeoZipCode, domain.GeoNeighborhood}

// GeoValidator implements port.GeoValidator. It is stateless and safe for
// concurrent use.
type GeoValidator struct{}

// NewGeoValidator returns a validator.
func NewGeoValidator() *GeoValidator { return &GeoValidator{} }

// DetectConflicts runs every geography check and returns the union of
// their findings. It never fails; an empty result means the
// configuration is consistent.
func (v *GeoValidator) DetectConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	var out []domain.Conflict
	out = append(out, hierarchyConflicts(cfg)...)
	out = append(out, overlapConflicts(cfg)...)
	out = append(out, contradictionConflicts(cfg)...)
	out = append(out, formatConflicts(cfg)...)
	out = append(out, scopeConflicts(cfg)...)
	return out
}

func hierarchyConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	countries := indicesAt(cfg, domain.GeoCountry)
	if len(countries) == 0 {
		return nil
	}
	sub := indicesAt(cfg, subCountryLevels...)
	if len(sub) == 0 {
		return nil
	}
	affected := append(slices.Clone(countries), sub...)
	slices.Sort(affected)
	return []domain.Conflict{{
		Type:                domain.ConflictHierarchy,
		Severity:            domain.SeverityError,
		Message:             "country constraint is combined with narrower state, county, city, zip code or neighborhood constraints",
		AffectedConstraints: affected,
		SuggestedResolution: "remove the country constraint or the narrower constraints",
	}}
}

func overlapConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	var out []domain.Conflict
	cs := cfg.Constraints
	for i := range cs {
		if cs[i].Level == domain.GeoRadius {
			continue
		}
		for j := i + 1; j < len(cs); j++ {
			if cs[j].Level != cs[i].Level {
				continue
			}
			shared := sharedValues(cs[i].Values, cs[j].Values)
			if len(shared) == 0 {
				continue
			}
			out = append(out, domain.Conflict{
				Type:                domain.ConflictOverlap,
				Severity:            domain.SeverityWarning,
				Message:             fmt.Sprintf("%s constraints share %s", cs[i].Level, strings.Join(shared, ", ")),
				AffectedConstraints: []int{i, j},
				SuggestedResolution: "merge the overlapping constraints",
			})
		}
	}

	for _, si := range indicesAt(cfg, domain.GeoState) {
		states := normalizedSet(cs[si].Values)
		for _, ci := range indicesAt(cfg, domain.GeoCity) {
			var covered []string
			for _, city := range cs[ci].Values {
				if st, ok := embeddedState(city); ok && states[st] {
					covered = append(covered, city)
				}
			}
			if len(covered) == 0 {
				continue
			}
			out = append(out, domain.Conflict{
				Type:                domain.ConflictOverlap,
				Severity:            domain.SeverityWarning,
				Message:             fmt.Sprintf("cities %s are already covered by a state constraint", strings.Join(covered, "; ")),
				AffectedConstraints: []int{si, ci},
				SuggestedResolution: "drop the redundant cities or the state",
			})
		}
	}
	return out
}

func contradictionConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	stateIdx := indicesAt(cfg, domain.GeoState)
	if len(stateIdx) == 0 {
		return nil
	}
	states := map[string]bool{}
	for _, i := range stateIdx {
		for st := range normalizedSet(cfg.Constraints[i].Values) {
			if code, ok := stateCode(st); ok {
				states[code] = true
			}
		}
	}

	var out []domain.Conflict
	for _, ci := range indicesAt(cfg, domain.GeoCity) {
		var outside []string
		for _, city := range cfg.Constraints[ci].Values {
			if st, ok := embeddedState(city); ok && !states[st] {
				outside = append(outside, city)
			}
		}
		if len(outside) == 0 {
			continue
		}
		affected := append([]int{ci}, stateIdx...)
		slices.Sort(affected)
		out = append(out, domain.Conflict{
			Type:                domain.ConflictContradiction,
			Severity:            domain.SeverityError,
			Message:             fmt.Sprintf("cities %s lie outside every targeted state", strings.Join(outside, "; ")),
			AffectedConstraints: affected,
			SuggestedResolution: "add their states or remove the cities",
		})
	}
	return out
}

func formatConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	var out []domain.Conflict
	add := func(i int, msg, fix string) {
		out = append(out, domain.Conflict{
			Type:                domain.ConflictFormat,
			Severity:            domain.SeverityError,
			Message:             msg,
			AffectedConstraints: []int{i},
			SuggestedResolution: fix,
		})
	}

	for i, c := range cfg.Constraints {
		switch c.Level {
		case domain.GeoZipCode:
			if bad := rejectValues(c.Values, func(v string) bool { return zipPattern.MatchString(strings.TrimSpace(v)) }); len(bad) > 0 {
				add(i, "invalid zip codes: "+strings.Join(bad, ", "), "use 5-digit or ZIP+4 codes")
			}
		case domain.GeoState:
			if bad := rejectValues(c.Values, isStateCode); len(bad) > 0 {
				add(i, "invalid state codes: "+strings.Join(bad, ", "), "use two-letter US state codes")
			}
		case domain.GeoRadius:
			if c.Radius == nil || *c.Radius <= 0 || *c.Radius > maxRadiusMiles {
				add(i, "radius must be greater than 0 and at most 1000 miles", "set a radius between 1 and 1000 miles")
			}
			if c.Center == nil {
				add(i, "radius constraint has no center", "set the center latitude and longitude")
			} else if c.Center.Lat < -90 || c.Center.Lat > 90 || c.Center.Lng < -180 || c.Center.Lng > 180 {
				add(i, fmt.Sprintf("center %.4f,%.4f is out of range", c.Center.Lat, c.Center.Lng), "latitude must be within ±90 and longitude within ±180")
			}
		case domain.GeoCountry, domain.GeoCounty, domain.GeoCity, domain.GeoNeighborhood:
		default:
			out = append(out, domain.Conflict{
				Type:                domain.ConflictFormat,
				Severity:            domain.SeverityCritical,
				Message:             fmt.Sprintf("unknown geographic level %q", c.Level),
				AffectedConstraints: []int{i},
				SuggestedResolution: "use country, state, county, city, zipCode, neighborhood or radius",
			})
			continue
		}
		if c.Level != domain.GeoRadius && len(c.Values) == 0 {
			add(i, fmt.Sprintf("%s constraint has no values", c.Level), "add values or remove the constraint")
		}
	}
	return out
}

func scopeConflicts(cfg domain.GeographyConfig) []domain.Conflict {
	var out []domain.Conflict
	countries, countryIdx := countValues(cfg, domain.GeoCountry)
	if countries > maxCountryValues {
		out = append(out, domain.Conflict{
			Type:                domain.ConflictScope,
			Severity:            domain.SeverityWarning,
			Message:             fmt.Sprintf("targeting %d countries is too broad", countries),
			AffectedConstraints: countryIdx,
			SuggestedResolution: fmt.Sprintf("target at most %d countries per universe", maxCountryValues),
		})
	}
	zips, zipIdx := countValues(cfg, domain.GeoZipCode)
	if zips > maxZipValues {
		out = append(out, domain.Conflict{
			Type:                domain.ConflictScope,
			Severity:            domain.SeverityWarning,
			Message:             fmt.Sprintf("targeting %d zip codes is too narrow", zips),
			AffectedConstraints: zipIdx,
			SuggestedResolution: "target cities or counties instead of individual zip codes",
		})
	}
	return out
}

// ResolveOverlaps merges same-level constraints that share values until no
// pair overlaps. Radius constraints are never merged. cfg is not modified.
func (v *GeoValidator) ResolveOverlaps(cfg domain.GeographyConfig) domain.GeographyConfig {
	cs := make([]domain.GeographicConstraint, len(cfg.Constraints))
	for i, c := range cfg.Constraints {
		c.Values = slices.Clone(c.Values)
		cs[i] = c
	}

	for merged := true; merged; {
		merged = false
	scan:
		for i := range cs {
			if cs[i].Level == domain.GeoRadius {
				continue
			}
			for j := i + 1; j < len(cs); j++ {
				if cs[j].Level != cs[i].Level || len(sharedValues(cs[i].Values, cs[j].Values)) == 0 {
					continue
				}
				cs[i].Values = unionValues(cs[i].Values, cs[j].Values)
				cs = slices.Delete(cs, j, j+1)
				merged = true
				break scan
			}
		}
	}
	return domain.GeographyConfig{Constraints: cs}
}

// ValidateLocation classifies a free-text location. Placeholder-looking
// input and input without letters or digits is invalid; anything that is
// not a zip code, state or "City, ST" passes as an unverified city.
func (v *GeoValidator) ValidateLocation(location string) domain.LocationValidation {
	in := strings.Join(strings.Fields(location), " ")
	res := domain.LocationValidation{Input: location, Normalized: in, Type: domain.LocationUnknown}

	if in == "" {
		res.Reason = "empty location"
		return res
	}
	lower := strings.ToLower(in)
	for _, s := range suspiciousLocations {
		if strings.Contains(lower, s) {
			res.Reason = fmt.Sprintf("suspicious value %q", s)
			return res
		}
	}

	switch {
	case zipPattern.MatchString(in):
		res.Type, res.Valid, res.Verified = domain.LocationZipCode, true, true
		return res
	case isStateCode(in):
		res.Type, res.Valid, res.Verified = domain.LocationState, true, true
		res.Normalized = strings.ToUpper(in)
		return res
	}
	if code, ok := stateCodesByName[strings.ToUpper(in)]; ok {
		res.Type, res.Valid, res.Verified = domain.LocationState, true, true
		res.Normalized = code
		return res
	}

	if !strings.ContainsFunc(in, unicode.IsLetter) {
		res.Reason = "no recognizable place name"
		return res
	}

	if m := cityStatePattern.FindStringSubmatch(in); m != nil {
		city := strings.TrimSpace(m[1])
		if code, ok := stateCode(m[2]); ok {
			res.Type, res.Valid, res.Verified = domain.LocationCityState, true, true
			res.Normalized = city + ", " + code
			return res
		}
		res.Type, res.Valid = domain.LocationInternationalCity, true
		res.Normalized = city + ", " + strings.TrimSpace(m[2])
		res.Reason = "international city not verified"
		return res
	}

	res.Type, res.Valid = domain.LocationCity, true
	res.Reason = "city name not verified"
	return res
}

func indicesAt(cfg domain.GeographyConfig, levels ...domain.GeoLevel) []int {
	var out []int
	for i, c := range cfg.Constraints {
		if slices.Contains(levels, c.Level) {
			out = append(out, i)
		}
	}
	return out
}

func countValues(cfg domain.GeographyConfig, level domain.GeoLevel) (int, []int) {
	n := 0
	idx := indicesAt(cfg, level)
	for _, i := range idx {
		n += len(cfg.Constraints[i].Values)
	}
	return n, idx
}

func normalizeValue(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), " "))
}

func normalizedSet(values []string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[normalizeValue(v)] = true
	}
	return out
}

func sharedValues(a, b []string) []string {
	inB := normalizedSet(b)
	var out []string
	seen := map[string]bool{}
	for _, v := range a {
		n := normalizeValue(v)
		if inB[n] && !seen[n] {
			seen[n] = true
			out = append(out, v)
		}
	}
	return out
}

func unionValues(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	seen := map[string]bool{}
	for _, v := range slices.Concat(a, b) {
		n := normalizeValue(v)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, v)
	}
	return out
}

func rejectValues(values []string, ok func(string) bool) []string {
	var bad []string
	for _, v := range values {
		if !ok(v) {
			bad = append(bad, v)
		}
	}
	return bad
}

func isStateCode(v string) bool {
	_, ok := usStates[normalizeValue(v)]
	return ok
}

// stateCode accepts a state code or a full state name.
func stateCode(v string) (string, bool) {
	n := normalizeValue(v)
	if _, ok := usStates[n]; ok {
		return n, true
	}
	code, ok := stateCodesByName[n]
	return code, ok
}

// embeddedState extracts the state from a "City, ST" value.
func embeddedState(city string) (string, bool) {
	i := strings.LastIndex(city, ",")
	if i < 0 {
		return "", false
	}
	return stateCode(city[i+1:])
}

package movie

import (
	"fmt"
	"strings"
)

// FilterSet is the structured form of a recommendation request.
type FilterSet struct {
	Genres        []string `json:"genres,omitempty"`
	YearStart     *int     `json:"year_start,omitempty"`
	YearEnd       *int     `json:"year_end,omitempty"`
	MinScore      *float64 `json:"min_score,omitempty"`
	MinRuntime    *int     `json:"min_runtime,omitempty"`
	MaxRuntime    *int     `json:"max_runtime,omitempty"`
	Certification *string  `json:"certification,omitempty"`
	IncludeAdult  bool     `json:"include_adult"`
}

// Int returns a pointer to v for populating optional filter fields.
func Int(v int) *int { return &v }

// Float returns a pointer to v for populating optional filter fields.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v for populating optional filter fields.
func String(v string) *string { return &v }

// IsEmpty reports whether no constraint is set.
func (f FilterSet) IsEmpty() bool {
	return len(f.Genres) == 0 &&
		f.YearStart == nil && f.YearEnd == nil &&
		f.MinScore == nil &&
		f.MinRuntime == nil && f.MaxRuntime == nil &&
		f.Certification == nil &&
		!f.IncludeAdult
}

// HasYearRange reports whether both year bounds are set.
func (f FilterSet) HasYearRange() bool {
	return f.YearStart != nil && f.YearEnd != nil
}

// Clone returns a deep copy so relaxations never alias the caller's values.
func (f FilterSet) Clone() FilterSet {
	out := FilterSet{IncludeAdult: f.IncludeAdult}
	if len(f.Genres) > 0 {
		out.Genres = append([]string(nil), f.Genres...)
	}
	out.YearStart = cloneInt(f.YearStart)
	out.YearEnd = cloneInt(f.YearEnd)
	out.MinRuntime = cloneInt(f.MinRuntime)
	out.MaxRuntime = cloneInt(f.MaxRuntime)
	if f.MinScore != nil {
		out.MinScore = Float(*f.MinScore)
	}
	if f.Certification != nil {
		out.Certification = String(*f.Certification)
	}
	return out
}

// Validate checks the range invariants of the filter set.
func (f FilterSet) Validate() error {
	if f.HasYearRange() && *f.YearStart > *f.YearEnd {
		return fmt.Errorf("year_start %d is after year_end %d", *f.YearStart, *f.YearEnd)
	}
	if f.MinScore != nil && (*f.MinScore < 0 || *f.MinScore > 10) {
		return fmt.Errorf("min_score %v must be between 0 and 10", *f.MinScore)
	}
	if f.MinRuntime != nil && *f.MinRuntime < 0 {
		return fmt.Errorf("min_runtime %d must be non-negative", *f.MinRuntime)
	}
	if f.MaxRuntime != nil && *f.MaxRuntime < 0 {
		return fmt.Errorf("max_runtime %d must be non-negative", *f.MaxRuntime)
	}
	if f.MinRuntime != nil && f.MaxRuntime != nil && *f.MinRuntime > *f.MaxRuntime {
		return fmt.Errorf("min_runtime %d exceeds max_runtime %d", *f.MinRuntime, *f.MaxRuntime)
	}
	return nil
}

// Summary renders the set constraints as a compact, human-readable string.
func (f FilterSet) Summary() string {
	parts := make([]string, 0, 7)
	if len(f.Genres) > 0 {
		parts = append(parts, "genres="+strings.Join(f.Genres, ","))
	}
	switch {
	case f.HasYearRange():
		parts = append(parts, fmt.Sprintf("years=%d-%d", *f.YearStart, *f.YearEnd))
	case f.YearStart != nil:
		parts = append(parts, fmt.Sprintf("year_start=%d", *f.YearStart))
	case f.YearEnd != nil:
		parts = append(parts, fmt.Sprintf("year_end=%d", *f.YearEnd))
	}
	if f.MinScore != nil {
		parts = append(parts, fmt.Sprintf("min_score=%g", *f.MinScore))
	}
	if f.MinRuntime != nil {
		parts = append(parts, fmt.Sprintf("min_runtime=%d", *f.MinRuntime))
	}
	if f.MaxRuntime != nil {
		parts = append(parts, fmt.Sprintf("max_runtime=%d", *f.MaxRuntime))
	}
	if f.Certification != nil {
		parts = append(parts, "certification="+*f.Certification)
	}
	if f.IncludeAdult {
		parts = append(parts, "include_adult")
	}
	if len(parts) == 0 {
		return "(no filters)"
	}
	return strings.Join(parts, " ")
}

// NormalizeGenres trims, drops blanks, and removes duplicate genre names while
// keeping first-seen order.
func NormalizeGenres(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}

package movie

import (
	"fmt"
	"strings"
)

// DecadeAny leaves the year range unset.
const DecadeAny = "Any"

type decadeRange struct {
	label      string
	start, end int
}

// The 2020s bucket stops at 2025 to match the catalog's current horizon.
var decadeTable = []decadeRange{
	{"1970s", 1970, 1979},
	{"1980s", 1980, 1989},
	{"1990s", 1990, 1999},
	{"2000s", 2000, 2009},
	{"2010s", 2010, 2019},
	{"2020s", 2020, 2025},
}

// Decades lists the selectable decade labels, "Any" first.
func Decades() []string {
	labels := make([]string, 0, len(decadeTable)+1)
	labels = append(labels, DecadeAny)
	for _, d := range decadeTable {
		labels = append(labels, d.label)
	}
	return labels
}

// DecadeRange maps a decade label to its year bounds. "Any" and the empty
// string return nil bounds.
func DecadeRange(label string) (*int, *int, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || strings.EqualFold(trimmed, DecadeAny) {
		return nil, nil, nil
	}
	for _, d := range decadeTable {
		if strings.EqualFold(d.label, trimmed) {
			return Int(d.start), Int(d.end), nil
		}
	}
	return nil, nil, fmt.Errorf("unknown decade %q (choose one of %s)", label, strings.Join(Decades(), ", "))
}

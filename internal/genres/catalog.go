package genres

import (
	"strings"

	"golang.org/x/text/cases"

	"moviescout/internal/tmdb"
)

// Catalog is an immutable bidirectional genre name/id mapping.
type Catalog struct {
	ordered []tmdb.Genre
	byName  map[string]int
	byID    map[int]string
}

// NewCatalog builds a Catalog from provider genres. Blank names, non-positive
// ids, and duplicate names or ids (after the first) are skipped.
func NewCatalog(list []tmdb.Genre) *Catalog {
	c := &Catalog{
		ordered: make([]tmdb.Genre, 0, len(list)),
		byName:  make(map[string]int, len(list)),
		byID:    make(map[int]string, len(list)),
	}
	for _, g := range list {
		name := strings.TrimSpace(g.Name)
		if name == "" || g.ID <= 0 {
			continue
		}
		key := foldName(name)
		if _, dup := c.byName[key]; dup {
			continue
		}
		if _, dup := c.byID[g.ID]; dup {
			continue
		}
		c.byName[key] = g.ID
		c.byID[g.ID] = name
		c.ordered = append(c.ordered, tmdb.Genre{ID: g.ID, Name: name})
	}
	return c
}

// Empty returns a catalog with no genres.
func Empty() *Catalog {
	return NewCatalog(nil)
}

// Len returns the number of genres.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ordered)
}

// Genres returns a copy of the genre list in provider order.
func (c *Catalog) Genres() []tmdb.Genre {
	if c == nil {
		return nil
	}
	return append([]tmdb.Genre(nil), c.ordered...)
}

// Names returns the genre names in provider order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.ordered))
	for _, g := range c.ordered {
		names = append(names, g.Name)
	}
	return names
}

// ID looks up a genre id by name, ignoring case.
func (c *Catalog) ID(name string) (int, bool) {
	if c == nil {
		return 0, false
	}
	id, ok := c.byName[foldName(name)]
	return id, ok
}

// Name looks up the canonical genre name for an id.
func (c *Catalog) Name(id int) (string, bool) {
	if c == nil {
		return "", false
	}
	name, ok := c.byID[id]
	return name, ok
}

// ResolveIDs maps names to ids in request order. Unknown names are dropped and
// duplicates collapse to their first occurrence.
func (c *Catalog) ResolveIDs(names []string) []int {
	if len(names) == 0 {
		return nil
	}
	ids := make([]int, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		id, ok := c.ID(name)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// MatchesAny reports whether any of genreIDs maps back to one of the wanted
// genre names.
func (c *Catalog) MatchesAny(genreIDs []int, wanted []string) bool {
	if c == nil || len(wanted) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(wanted))
	for _, name := range wanted {
		want[foldName(name)] = struct{}{}
	}
	for _, id := range genreIDs {
		name, ok := c.byID[id]
		if !ok {
			continue
		}
		if _, hit := want[foldName(name)]; hit {
			return true
		}
	}
	return false
}

// Canonical returns the catalog spelling of name, or name unchanged when the
// catalog does not know it.
func (c *Catalog) Canonical(name string) string {
	id, ok := c.ID(name)
	if !ok {
		return strings.TrimSpace(name)
	}
	canonical, _ := c.Name(id)
	return canonical
}

// foldName builds a fresh Caser per call; Casers are stateful and the catalog
// is read from multiple goroutines.
func foldName(name string) string {
	return cases.Fold().String(strings.Join(strings.Fields(name), " "))
}

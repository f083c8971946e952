package movie

import (
	"slices"
	"strconv"
	"strings"
)

// PosterBaseURL is the image CDN prefix for poster paths.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// Movie is a single catalog result.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterPath  string   `json:"poster_path,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	GenreIDs    []int    `json:"genre_ids,omitempty"`
	Popularity  float64  `json:"popularity"`
}

// ReleaseYear parses the year prefix of ReleaseDate.
func (m Movie) ReleaseYear() (int, bool) {
	date := strings.TrimSpace(m.ReleaseDate)
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

// PosterURL returns the full poster image URL, or "" when no poster is known.
func (m Movie) PosterURL() string {
	path := strings.TrimSpace(m.PosterPath)
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return PosterBaseURL + path
}

// ResultList is an ordered list of movies.
type ResultList []Movie

// SortByPopularity orders the list by descending popularity. Equal
// popularities keep provider order.
func (r ResultList) SortByPopularity() {
	slices.SortStableFunc(r, func(a, b Movie) int {
		switch {
		case a.Popularity > b.Popularity:
			return -1
		case a.Popularity < b.Popularity:
			return 1
		default:
			return 0
		}
	})
}

// Limit returns at most n entries; n <= 0 returns the list unchanged.
func (r ResultList) Limit(n int) ResultList {
	if n <= 0 || len(r) <= n {
		return r
	}
	return r[:n]
}

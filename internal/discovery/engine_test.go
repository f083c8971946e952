package discovery_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"moviescout/internal/discovery"
	"moviescout/internal/genres"
	"moviescout/internal/logging"
	"moviescout/internal/movie"
	"moviescout/internal/tmdb"
)

type stubLister struct {
	genres []tmdb.Genre
	err    error
}

func (s stubLister) MovieGenres(context.Context) ([]tmdb.Genre, error) {
	return s.genres, s.err
}

type stubPages struct {
	pages  map[int][]tmdb.Result
	failAt int
	calls  []int
	params []url.Values
}

func (s *stubPages) DiscoverMovies(_ context.Context, params url.Values, page int) (*tmdb.Response, error) {
	s.calls = append(s.calls, page)
	s.params = append(s.params, params)
	if s.failAt > 0 && page >= s.failAt {
		return nil, errors.New("tmdb discover returned 500")
	}
	return &tmdb.Response{Page: page, Results: s.pages[page]}, nil
}

func standardGenres() *genres.Cache {
	return genres.NewCache(stubLister{genres: []tmdb.Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
		{ID: 18, Name: "Drama"},
	}}, logging.NewNop())
}

func result(id int64, date string, popularity float64, genreIDs ...int) tmdb.Result {
	return tmdb.Result{ID: id, Title: "Movie " + strconv.FormatInt(id, 10), ReleaseDate: date, Popularity: popularity, GenreIDs: genreIDs}
}

func ids(list movie.ResultList) []int64 {
	out := make([]int64, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiscoverFetchesExactlyFivePages(t *testing.T) {
	pages := &stubPages{pages: map[int][]tmdb.Result{
		1: {result(1, "2001-01-01", 5)},
		6: {result(6, "2001-01-01", 99)},
	}}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{})
	if len(pages.calls) != discovery.MaxPages {
		t.Fatalf("expected %d page requests, got %v", discovery.MaxPages, pages.calls)
	}
	for i, page := range pages.calls {
		if page != i+1 {
			t.Fatalf("pages requested out of order: %v", pages.calls)
		}
	}
	if !equalIDs(ids(got), []int64{1}) {
		t.Fatalf("unexpected results %v", ids(got))
	}
}

func TestDiscoverShortCircuitsOnFailedPage(t *testing.T) {
	pages := &stubPages{
		pages: map[int][]tmdb.Result{
			1: {result(1, "2001-01-01", 1)},
			2: {result(2, "2001-01-01", 2)},
		},
		failAt: 3,
	}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{})
	if len(pages.calls) != 3 {
		t.Fatalf("expected paging to stop after the failed page, got %v", pages.calls)
	}
	if !equalIDs(ids(got), []int64{2, 1}) {
		t.Fatalf("expected earlier pages kept and ranked, got %v", ids(got))
	}
}

func TestDiscoverFirstPageFailureIsEmptyNotError(t *testing.T) {
	pages := &stubPages{failAt: 1}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())
	if got := engine.Discover(context.Background(), movie.FilterSet{}); len(got) != 0 {
		t.Fatalf("expected empty results, got %v", ids(got))
	}
}

func TestDiscoverYearPostFilter(t *testing.T) {
	pages := &stubPages{pages: map[int][]tmdb.Result{
		1: {
			result(1, "2015-06-01", 1),
			result(2, "", 2),
			result(3, "not-a-date", 3),
			result(4, "2010-01-01", 4),
			result(5, "2019-12-31", 5),
			result(6, "2020-01-01", 6),
		},
	}}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{YearStart: movie.Int(2010), YearEnd: movie.Int(2019)})
	if !equalIDs(ids(got), []int64{5, 4, 1}) {
		t.Fatalf("unexpected 2010s results %v", ids(got))
	}

	got = engine.Discover(context.Background(), movie.FilterSet{YearStart: movie.Int(2020), YearEnd: movie.Int(2025)})
	if !equalIDs(ids(got), []int64{6}) {
		t.Fatalf("unexpected 2020s results %v", ids(got))
	}

	got = engine.Discover(context.Background(), movie.FilterSet{YearStart: movie.Int(2020)})
	if len(got) != 6 {
		t.Fatalf("a single year bound must not filter, got %v", ids(got))
	}
}

func TestDiscoverGenrePostFilterUsesAnyMatch(t *testing.T) {
	pages := &stubPages{pages: map[int][]tmdb.Result{
		1: {
			result(1, "2001-01-01", 1, 28),
			result(2, "2001-01-01", 2, 18),
			result(3, "2001-01-01", 3, 35, 18),
			result(4, "2001-01-01", 4),
			result(5, "2001-01-01", 5, 999),
		},
	}}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{Genres: []string{"action", "Comedy", "Unknown"}})
	if !equalIDs(ids(got), []int64{3, 1}) {
		t.Fatalf("unexpected genre results %v", ids(got))
	}
	if with := pages.params[0].Get(discovery.ParamGenres); with != "28,35" {
		t.Fatalf("expected resolved genre ids, got %q", with)
	}
}

func TestDiscoverWithUnavailableCatalogMatchesNoGenres(t *testing.T) {
	pages := &stubPages{pages: map[int][]tmdb.Result{
		1: {result(1, "2001-01-01", 1, 35), result(2, "2001-01-01", 2, 28)},
	}}
	cache := genres.NewCache(stubLister{err: errors.New("boom")}, logging.NewNop())
	engine := discovery.New(pages, cache, "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{Genres: []string{"Action"}})
	if len(got) != 0 {
		t.Fatalf("expected no results without a catalog, got %v", ids(got))
	}
	if pages.params[0].Has(discovery.ParamGenres) {
		t.Fatal("expected no with_genres without a catalog")
	}

	got = engine.Discover(context.Background(), movie.FilterSet{})
	if !equalIDs(ids(got), []int64{2, 1}) {
		t.Fatalf("expected unfiltered results without a genre request, got %v", ids(got))
	}
}

func TestDiscoverRanksByPopularityStable(t *testing.T) {
	pages := &stubPages{pages: map[int][]tmdb.Result{
		1: {result(1, "", 3.2), result(2, "", 9.1)},
		2: {result(3, "", 9.1), result(4, "", 1.0)},
	}}
	engine := discovery.New(pages, standardGenres(), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{})
	if !equalIDs(ids(got), []int64{2, 3, 1, 4}) {
		t.Fatalf("unexpected order %v", ids(got))
	}
}

func TestDiscoverAgainstTMDBServer(t *testing.T) {
	var discoverQueries []url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/genre/movie/list":
			_ = json.NewEncoder(w).Encode(map[string]any{"genres": []map[string]any{{"id": 28, "name": "Action"}}})
		case "/discover/movie":
			discoverQueries = append(discoverQueries, r.URL.Query())
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			results := []map[string]any{}
			if page == 1 {
				results = append(results,
					map[string]any{"id": 10, "title": "Heat", "release_date": "1995-12-15", "popularity": 40.5, "genre_ids": []int{28}, "vote_average": 8.3},
					map[string]any{"id": 11, "title": "Speed", "release_date": "1994-06-10", "popularity": 55.1, "genre_ids": []int{28}},
				)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"page": page, "results": results, "total_pages": 1})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := tmdb.New("key", server.URL, "en-US", tmdb.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("tmdb.New: %v", err)
	}
	engine := discovery.New(client, genres.NewCache(client, logging.NewNop()), "US", logging.NewNop())

	got := engine.Discover(context.Background(), movie.FilterSet{
		Genres:        []string{"Action"},
		MinScore:      movie.Float(8),
		Certification: movie.String("R"),
	})
	if !equalIDs(ids(got), []int64{11, 10}) {
		t.Fatalf("unexpected results %v", ids(got))
	}
	if len(discoverQueries) != discovery.MaxPages {
		t.Fatalf("expected %d discover requests, got %d", discovery.MaxPages, len(discoverQueries))
	}
	first := discoverQueries[0]
	for key, want := range map[string]string{
		"api_key":               "key",
		"sort_by":               "popularity.desc",
		"vote_average.gte":      "8",
		"certification.lte":     "R",
		"certification_country": "US",
		"with_genres":           "28",
		"include_adult":         "false",
		"page":                  "1",
	} {
		if got := first.Get(key); got != want {
			t.Fatalf("param %s = %q, want %q", key, got, want)
		}
	}
	for _, key := range []string{"with_runtime.gte", "with_runtime.lte"} {
		if first.Has(key) {
			t.Fatalf("unset filter %s was sent", key)
		}
	}
}

package discovery

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"moviescout/internal/genres"
	"moviescout/internal/logging"
	"moviescout/internal/movie"
	"moviescout/internal/tmdb"
)

// MaxPages bounds how many discover pages are requested per search.
const MaxPages = 5

const component = "discovery"

// PageFetcher fetches one page of discover results.
type PageFetcher interface {
	DiscoverMovies(ctx context.Context, params url.Values, page int) (*tmdb.Response, error)
}

// Engine executes catalog searches.
type Engine struct {
	pages                PageFetcher
	genres               *genres.Cache
	certificationCountry string
	logger               *slog.Logger
}

// New constructs an Engine. certificationCountry accompanies any certification
// filter sent to the provider.
func New(pages PageFetcher, genreCache *genres.Cache, certificationCountry string, logger *slog.Logger) *Engine {
	return &Engine{
		pages:                pages,
		genres:               genreCache,
		certificationCountry: certificationCountry,
		logger:               logging.NewComponentLogger(logger, component),
	}
}

// Discover returns the movies matching filters, most popular first.
func (e *Engine) Discover(ctx context.Context, filters movie.FilterSet) movie.ResultList {
	logger := logging.WithContext(ctx, e.logger)
	catalog := e.catalog(ctx)

	// An unavailable catalog resolves no ids and matches nothing, so a genre
	// request against it yields no results.
	genreFilter := len(filters.Genres) > 0
	var genreIDs []int
	if genreFilter {
		genreIDs = catalog.ResolveIDs(filters.Genres)
		if len(genreIDs) < len(filters.Genres) {
			logger.Debug("some requested genres are unknown",
				logging.Int("requested", len(filters.Genres)),
				logging.Int("resolved", len(genreIDs)),
			)
		}
	}

	params := BuildParams(filters, genreIDs, e.certificationCountry)
	fetched, pages := e.fetchPages(ctx, logger, params)

	results := make(movie.ResultList, 0, len(fetched))
	droppedYear, droppedGenre := 0, 0
	for _, m := range fetched {
		if filters.HasYearRange() && !inYearRange(m, *filters.YearStart, *filters.YearEnd) {
			droppedYear++
			continue
		}
		if genreFilter && !catalog.MatchesAny(m.GenreIDs, filters.Genres) {
			droppedGenre++
			continue
		}
		results = append(results, m)
	}
	results.SortByPopularity()

	logger.Debug("discover complete",
		logging.String("filters", filters.Summary()),
		logging.Int("pages", pages),
		logging.Int("fetched", len(fetched)),
		logging.Int("dropped_year", droppedYear),
		logging.Int("dropped_genre", droppedGenre),
		logging.Int("results", len(results)),
	)
	return results
}

func (e *Engine) catalog(ctx context.Context) *genres.Catalog {
	if e.genres == nil {
		return genres.Empty()
	}
	return e.genres.CatalogOrEmpty(ctx)
}

// fetchPages requests pages 1..MaxPages in order and stops at the first
// failure, keeping what was already collected.
func (e *Engine) fetchPages(ctx context.Context, logger *slog.Logger, params url.Values) (movie.ResultList, int) {
	var collected movie.ResultList
	if e.pages == nil {
		return collected, 0
	}
	fetched := 0
	for page := 1; page <= MaxPages; page++ {
		started := time.Now()
		resp, err := e.pages.DiscoverMovies(ctx, params, page)
		if err != nil {
			logging.WarnWithContext(logger, "discover page failed", "discover_page_failed",
				logging.Int("page", page),
				logging.Int("movies_kept", len(collected)),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check tmdb.api_key and network access"),
				logging.String(logging.FieldImpact, "results limited to earlier pages"),
			)
			break
		}
		fetched++
		movies := resp.Movies()
		collected = append(collected, movies...)
		logger.Debug("discover page fetched",
			logging.Int("page", page),
			logging.Int("movies", len(movies)),
			logging.Duration("latency", time.Since(started)),
		)
	}
	return collected, fetched
}

func inYearRange(m movie.Movie, start, end int) bool {
	year, ok := m.ReleaseYear()
	if !ok {
		return false
	}
	return year >= start && year <= end
}

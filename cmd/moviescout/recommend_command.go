package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moviescout/internal/genres"
	"moviescout/internal/logging"
	"moviescout/internal/movie"
	"moviescout/internal/recommend"
	"moviescout/internal/services"
)

const defaultResultLimit = 20

type recommendOptions struct {
	genres       []string
	decade       string
	criticsOnly  bool
	includeAdult bool
	jsonOutput   bool
	limit        int
}

func newRecommendCommand(ctx *commandContext) *cobra.Command {
	opts := recommendOptions{decade: movie.DecadeAny, limit: defaultResultLimit}

	cmd := &cobra.Command{
		Use:   "recommend [request...]",
		Short: "Recommend movies from filters and an optional plain-language request",
		Example: `  moviescout recommend --genre Action --decade 1990s --critics-only
  moviescout recommend "a short feel-good comedy from the 80s"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, ctx, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringArrayVarP(&opts.genres, "genre", "g", nil, "Genre to include (repeatable)")
	cmd.Flags().StringVarP(&opts.decade, "decade", "d", movie.DecadeAny, "Release decade: "+strings.Join(movie.Decades(), ", "))
	cmd.Flags().BoolVar(&opts.criticsOnly, "critics-only", false, fmt.Sprintf("Only movies rated %.1f or higher", movie.CriticScoreThreshold))
	cmd.Flags().BoolVar(&opts.includeAdult, "include-adult", false, "Include adult titles")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", defaultResultLimit, "Maximum movies to show (0 for all)")
	return cmd
}

// recommendReport is the JSON shape of a recommend run.
type recommendReport struct {
	RunID    string              `json:"run_id"`
	Stage    recommend.Stage     `json:"stage"`
	Filters  movie.FilterSet     `json:"filters"`
	Attempts []recommend.Attempt `json:"attempts"`
	Notices  []string            `json:"notices,omitempty"`
	Total    int                 `json:"total"`
	Results  []movieView         `json:"results"`
}

func runRecommend(cmd *cobra.Command, ctx *commandContext, opts recommendOptions, query string) error {
	manual, err := movie.ManualSelection{
		Genres:       titleCaseGenres(opts.genres),
		Decade:       opts.decade,
		CriticsOnly:  opts.criticsOnly,
		IncludeAdult: opts.includeAdult,
	}.Filters()
	if err != nil {
		return fmt.Errorf("%w: %w", services.ErrValidation, err)
	}

	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	p, err := ctx.ensurePipeline(cmd.Context())
	if err != nil {
		return err
	}

	status := newStatusPrinter(cmd.ErrOrStderr(), "Interpreter")
	var notices []string

	interpreted, err := p.interpreter.Interpret(cmd.Context(), query)
	if err != nil {
		notice := services.UserNotice(err)
		notices = append(notices, notice)
		logging.WarnWithContext(logger, "query interpretation failed", "interpret_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "reword the request or check the [llm] config"),
			logging.String(logging.FieldImpact, "continuing with manual filters only"),
		)
		status.line("Interpreter", statusWarn, notice)
	}
	filters := movie.Merge(manual, interpreted)
	logger.Info("filters merged", logging.String("filters", filters.Summary()))

	observer := recommend.ObserverFunc(func(stage recommend.Stage, message string) {
		kind := statusInfo
		if stage == recommend.StageExhausted {
			kind = statusWarn
		}
		status.line("Search", kind, message)
	})
	controller := recommend.NewController(p.engine, logger, recommend.WithObserver(observer))
	outcome := controller.Run(cmd.Context(), filters)

	catalog := genreCatalogForDisplay(cmd.Context(), p.genres)
	shown := outcome.Results.Limit(opts.limit)

	if opts.jsonOutput {
		return writeJSON(cmd, recommendReport{
			RunID:    outcome.RunID,
			Stage:    outcome.Stage,
			Filters:  outcome.Filters,
			Attempts: outcome.Attempts,
			Notices:  notices,
			Total:    len(outcome.Results),
			Results:  movieViews(shown, catalog),
		})
	}

	out := cmd.OutOrStdout()
	if !outcome.Found() {
		fmt.Fprintln(out, recommend.ExhaustedMessage)
		return nil
	}
	renderResults(out, outcome, shown, catalog)
	return nil
}

func renderResults(out io.Writer, outcome recommend.Outcome, shown movie.ResultList, catalog *genres.Catalog) {
	fmt.Fprintf(out, "Filters: %s\n", outcome.Filters.Summary())
	if outcome.Stage != recommend.StageFull {
		fmt.Fprintf(out, "Relaxed to: %s\n", outcome.Stage)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, renderMovieTable(movieViews(shown, catalog)))
	fmt.Fprintln(out)
	if len(shown) < len(outcome.Results) {
		fmt.Fprintf(out, "Showing %d of %d movies (use --limit 0 for all)\n", len(shown), len(outcome.Results))
	}
}

// genreCatalogForDisplay returns whatever catalog is available; a failed load
// was already reported by the discovery engine.
func genreCatalogForDisplay(ctx context.Context, cache *genres.Cache) *genres.Catalog {
	catalog, err := cache.Catalog(ctx)
	if err != nil {
		return genres.Empty()
	}
	return catalog
}

func titleCaseGenres(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	caser := cases.Title(language.English)
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, caser.String(trimmed))
			}
		}
	}
	return out
}

package interpreter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"moviescout/internal/logging"
	"moviescout/internal/movie"
	"moviescout/internal/services"
	"moviescout/internal/services/llm"
)

const component = "interpreter"

// Interpreter asks a language model to turn free text into filters.
type Interpreter struct {
	completer llm.Completer
	logger    *slog.Logger
}

// New constructs an Interpreter. A nil completer makes every non-empty query
// fail with services.ErrProviderUnavailable.
func New(completer llm.Completer, logger *slog.Logger) *Interpreter {
	return &Interpreter{
		completer: completer,
		logger:    logging.NewComponentLogger(logger, component),
	}
}

// Interpret returns the filters extracted from query. On failure it returns an
// empty FilterSet and an error the caller can surface with services.UserNotice.
func (i *Interpreter) Interpret(ctx context.Context, query string) (movie.FilterSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return movie.FilterSet{}, nil
	}
	logger := logging.WithContext(ctx, i.logger)
	if i.completer == nil {
		return movie.FilterSet{}, services.Wrap(services.ErrProviderUnavailable, component, "complete", "no language model configured", nil)
	}

	started := time.Now()
	reply, err := i.completer.Complete(ctx, BuildPrompt(query))
	if err != nil {
		return movie.FilterSet{}, services.Wrap(services.ErrProviderUnavailable, component, "complete", "model request failed", err)
	}
	logger.Debug("model reply received",
		logging.Duration("latency", time.Since(started)),
		logging.String("reply", llm.SummarizePayload(reply)),
	)

	filters, issues, err := ParseReply(reply)
	if err != nil {
		return movie.FilterSet{}, services.Wrap(services.ErrUnparsableModelOutput, component, "parse", "reply snippet: "+llm.SummarizePayload(reply), err)
	}
	for _, issue := range issues {
		logger.Debug("ignored model field",
			logging.String("field", issue.Field),
			logging.Error(issue.Err),
		)
	}
	logger.Info("query interpreted", logging.String("filters", filters.Summary()))
	return filters, nil
}

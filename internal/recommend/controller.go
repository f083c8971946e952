package recommend

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"moviescout/internal/logging"
	"moviescout/internal/movie"
	"moviescout/internal/services"
)

const component = "recommend"

// Discoverer runs one catalog search.
type Discoverer interface {
	Discover(ctx context.Context, filters movie.FilterSet) movie.ResultList
}

// Observer receives a status signal for every stage entered.
type Observer interface {
	StageEntered(stage Stage, message string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stage Stage, message string)

// StageEntered calls f.
func (f ObserverFunc) StageEntered(stage Stage, message string) { f(stage, message) }

// Attempt records one discover call.
type Attempt struct {
	Stage   Stage           `json:"stage"`
	Filters movie.FilterSet `json:"filters"`
	Results int             `json:"results"`
}

// Outcome is the result of a full fallback run.
type Outcome struct {
	RunID    string           `json:"run_id"`
	Stage    Stage            `json:"stage"`
	Filters  movie.FilterSet  `json:"filters"`
	Results  movie.ResultList `json:"results"`
	Attempts []Attempt        `json:"attempts"`
}

// Found reports whether any stage produced results.
func (o Outcome) Found() bool {
	return o.Stage != StageExhausted && len(o.Results) > 0
}

// Controller applies the relaxation steps against a Discoverer.
type Controller struct {
	discoverer Discoverer
	steps      []Step
	observer   Observer
	logger     *slog.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithObserver registers the status observer.
func WithObserver(observer Observer) Option {
	return func(c *Controller) {
		c.observer = observer
	}
}

// WithSteps replaces the relaxation sequence.
func WithSteps(steps []Step) Option {
	return func(c *Controller) {
		if len(steps) > 0 {
			c.steps = steps
		}
	}
}

// NewController constructs a Controller using Steps.
func NewController(discoverer Discoverer, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		discoverer: discoverer,
		steps:      Steps(),
		logger:     logging.NewComponentLogger(logger, component),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Recommend returns the first non-empty result list produced by the
// relaxation sequence, or an empty list when every step comes back empty.
func (c *Controller) Recommend(ctx context.Context, filters movie.FilterSet) movie.ResultList {
	return c.Run(ctx, filters).Results
}

// Run executes the relaxation sequence and reports how it ended.
func (c *Controller) Run(ctx context.Context, filters movie.FilterSet) Outcome {
	runID, ok := services.RequestIDFromContext(ctx)
	if !ok {
		runID = uuid.NewString()
		ctx = services.WithRequestID(ctx, runID)
	}
	outcome := Outcome{RunID: runID}

	current := filters.Clone()
	for _, step := range c.steps {
		if !step.Applies(current) {
			c.logDecision(ctx, step.Stage, "skipped", "step does not apply to current filters")
			continue
		}
		current = step.Relax(current)
		stageCtx := services.WithStage(ctx, string(step.Stage))
		c.enter(stageCtx, step.Stage, step.Message)

		results := c.discoverer.Discover(stageCtx, current)
		outcome.Attempts = append(outcome.Attempts, Attempt{Stage: step.Stage, Filters: current, Results: len(results)})
		if len(results) > 0 {
			outcome.Stage = step.Stage
			outcome.Filters = current
			outcome.Results = results
			c.logDecision(stageCtx, step.Stage, "found", "discover returned results")
			return outcome
		}
	}

	outcome.Stage = StageExhausted
	outcome.Filters = current
	outcome.Results = movie.ResultList{}
	c.enter(services.WithStage(ctx, string(StageExhausted)), StageExhausted, ExhaustedMessage)
	return outcome
}

func (c *Controller) enter(ctx context.Context, stage Stage, message string) {
	logging.WithContext(ctx, c.logger).Info("fallback stage entered", logging.String("status", message))
	if c.observer != nil {
		c.observer.StageEntered(stage, message)
	}
}

func (c *Controller) logDecision(ctx context.Context, stage Stage, result, reason string) {
	attrs := logging.DecisionAttrs("fallback_"+string(stage), result, reason)
	logging.WithContext(ctx, c.logger).Debug("fallback decision", logging.Args(attrs...)...)
}

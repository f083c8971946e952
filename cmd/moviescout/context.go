package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"moviescout/internal/config"
	"moviescout/internal/discovery"
	"moviescout/internal/genres"
	"moviescout/internal/interpreter"
	"moviescout/internal/logging"
	"moviescout/internal/services/llm"
	"moviescout/internal/tmdb"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	pipelineOnce sync.Once
	pipeline     *pipeline
	pipelineErr  error
}

// pipeline holds the clients shared by the commands of one invocation.
type pipeline struct {
	catalog     *tmdb.Client
	completer   llm.Completer
	genres      *genres.Cache
	engine      *discovery.Engine
	interpreter *interpreter.Interpreter
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) ensurePipeline(ctx context.Context) (*pipeline, error) {
	c.pipelineOnce.Do(func() {
		c.pipeline, c.pipelineErr = c.buildPipeline(ctx)
	})
	return c.pipeline, c.pipelineErr
}

func (c *commandContext) buildPipeline(ctx context.Context) (*pipeline, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	catalog, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithTimeout(cfg.TMDBTimeout()))
	if err != nil {
		return nil, fmt.Errorf("tmdb client: %w", err)
	}
	genreCache := genres.NewCache(catalog, logger)

	var completer llm.Completer
	if cfg.LLMEnabled() {
		completer, err = llm.NewFromConfig(ctx, cfg.GetLLM())
		if err != nil {
			logging.WarnWithContext(logger, "language model unavailable", "llm_init_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the [llm] section of the config"),
				logging.String(logging.FieldImpact, "free-text requests are ignored"),
			)
		}
	}

	return &pipeline{
		catalog:     catalog,
		completer:   completer,
		genres:      genreCache,
		engine:      discovery.New(catalog, genreCache, cfg.TMDB.CertificationCountry, logger),
		interpreter: interpreter.New(completer, logger),
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

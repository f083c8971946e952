package config

import (
	"errors"
	"fmt"
	"strings"
)

// MaxLLMTokens is the largest accepted llm.max_tokens.
const MaxLLMTokens = 65536

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateLLM(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var, add it to .env, or edit %s (create with 'moviescout config init')", defaultPath)
	}
	if strings.TrimSpace(c.TMDB.BaseURL) == "" {
		return errors.New("tmdb.base_url must be set")
	}
	if c.TMDB.TimeoutSeconds <= 0 {
		return errors.New("tmdb.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case ProviderOpenRouter:
		if strings.TrimSpace(c.LLM.BaseURL) == "" {
			return errors.New("llm.base_url must be set when llm.provider is openrouter")
		}
	case ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q is not supported (use %q or %q)", c.LLM.Provider, ProviderOpenRouter, ProviderGemini)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model must be set")
	}
	if c.LLM.TimeoutSeconds <= 0 {
		return errors.New("llm.timeout_seconds must be positive")
	}
	if c.LLM.MaxTokens <= 0 || c.LLM.MaxTokens > MaxLLMTokens {
		return fmt.Errorf("llm.max_tokens must be between 1 and %d", MaxLLMTokens)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not supported (use debug, info, warn, or error)", c.Logging.Level)
	}
}

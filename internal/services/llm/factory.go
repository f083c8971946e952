package llm

import (
	"context"
	"fmt"
	"strings"

	"moviescout/internal/config"
)

// NewFromConfig builds the completion backend selected by cfg.Provider.
func NewFromConfig(ctx context.Context, cfg config.LLMConfig, opts ...Option) (Completer, error) {
	clientConfig := Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		Referer:        cfg.Referer,
		Title:          cfg.Title,
		TimeoutSeconds: cfg.TimeoutSeconds,
		MaxTokens:      cfg.MaxTokens,
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", config.ProviderOpenRouter:
		return NewClient(clientConfig, opts...), nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, clientConfig)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q", cfg.Provider)
	}
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli       *genai.Client
	model     string
	maxTokens int32
}

// NewGeminiClient constructs a Gemini backend. BaseURL is optional and only
// overrides the API endpoint.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini client: api key required")
	}
	maxTokens := cfg.maxTokens()
	if maxTokens > math.MaxInt32 {
		return nil, fmt.Errorf("gemini client: max tokens %d out of range", maxTokens)
	}
	clientConfig := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.timeout()},
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	cli, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{
		cli:       cli,
		model:     strings.TrimSpace(cfg.Model),
		maxTokens: int32(maxTokens),
	}, nil
}

// Complete sends prompt and returns the text of the first candidate.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("gemini complete: prompt required")
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{MaxOutputTokens: g.maxTokens},
	)
	if err != nil {
		return "", fmt.Errorf("gemini complete: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini complete: empty candidates")
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	content := strings.TrimSpace(text.String())
	if content == "" {
		return "", fmt.Errorf("gemini complete: empty content (finish_reason=%q)", resp.Candidates[0].FinishReason)
	}
	return content, nil
}

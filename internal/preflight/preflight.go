package preflight

import (
	"context"
	"path/filepath"
	"strings"

	"moviescout/internal/config"
	"moviescout/internal/services/llm"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail"`
}

// Failed reports whether the check ran and did not pass.
func (r Result) Failed() bool {
	return !r.Passed && !r.Skipped
}

// RunAll executes all applicable preflight checks for the given config.
// completer is nil when the language model is disabled or failed to initialise.
func RunAll(ctx context.Context, cfg *config.Config, catalog GenreLister, completer llm.Completer) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckTMDB(ctx, catalog)}

	if cfg.LLMEnabled() {
		llmCfg := cfg.GetLLM()
		results = append(results, CheckLLM(ctx, "Language model ("+llmCfg.Provider+")", completer))
	} else {
		results = append(results, Result{Name: "Language model", Skipped: true, Detail: "Disabled (no api key); free-text requests are ignored"})
	}

	if file := strings.TrimSpace(cfg.Logging.File); file != "" {
		results = append(results, CheckDirectoryAccess("Log directory", filepath.Dir(file)))
	}

	return results
}

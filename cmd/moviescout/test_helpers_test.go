package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeProviders serves the TMDB and chat completion endpoints used by the CLI.
type fakeProviders struct {
	server *httptest.Server

	mu            sync.Mutex
	llmReply      string
	discoverCalls []string
	// emptyWhen lists discover parameters whose presence yields no results.
	emptyWhen []string
}

func newFakeProviders(t *testing.T) *fakeProviders {
	t.Helper()
	f := &fakeProviders{}
	mux := http.NewServeMux()
	mux.HandleFunc("/3/genre/movie/list", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{"genres": []map[string]any{
			{"id": 28, "name": "Action"},
			{"id": 35, "name": "Comedy"},
			{"id": 18, "name": "Drama"},
		}})
	})
	mux.HandleFunc("/3/discover/movie", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		f.mu.Lock()
		f.discoverCalls = append(f.discoverCalls, query.Encode())
		emptyWhen := append([]string(nil), f.emptyWhen...)
		f.mu.Unlock()

		page, _ := strconv.Atoi(query.Get("page"))
		results := []map[string]any{}
		empty := page != 1
		for _, key := range emptyWhen {
			if query.Has(key) {
				empty = true
			}
		}
		if !empty {
			results = append(results,
				map[string]any{"id": 1, "title": "Die Hard", "release_date": "1988-07-15", "popularity": 30.5, "vote_average": 7.8, "genre_ids": []int{28}, "poster_path": "/diehard.jpg"},
				map[string]any{"id": 2, "title": "Airplane!", "release_date": "1980-07-02", "popularity": 12.25, "vote_average": 7.2, "genre_ids": []int{35}},
				map[string]any{"id": 3, "title": "Speed", "release_date": "1994-06-10", "popularity": 45.0, "vote_average": 7.3, "genre_ids": []int{28, 18}},
			)
		}
		writeTestJSON(t, w, map[string]any{"page": page, "results": results, "total_pages": 1})
	})
	mux.HandleFunc("/llm", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		reply := f.llmReply
		f.mu.Unlock()
		writeTestJSON(t, w, map[string]any{"choices": []any{map[string]any{"message": map[string]any{"content": reply}}}})
	})
	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeProviders) setLLMReply(reply string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llmReply = reply
}

func (f *fakeProviders) setEmptyWhen(params ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emptyWhen = params
}

func (f *fakeProviders) discoverRequests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.discoverCalls...)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// setupCLIEnv isolates HOME, the working directory, and credentials, then
// writes a config pointing at the fake providers.
func setupCLIEnv(t *testing.T, providers *fakeProviders, withLLM bool) string {
	t.Helper()
	for _, key := range []string{"TMDB_API_KEY", "OPENROUTER_API_KEY", "LLM_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		t.Setenv(key, "")
	}
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Chdir(base)

	llmKey := ""
	if withLLM {
		llmKey = "llm-key"
	}
	content := fmt.Sprintf(`[tmdb]
api_key = "tmdb-key"
base_url = %q

[llm]
provider = "openrouter"
api_key = %q
base_url = %q
model = "test-model"

[logging]
level = "error"
`, providers.server.URL+"/3", llmKey, providers.server.URL+"/llm")
	configPath := filepath.Join(base, "moviescout.toml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n---\n%s", needle, haystack)
	}
}

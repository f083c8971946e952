package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecommendRelaxesScoreAndRendersJSON(t *testing.T) {
	providers := newFakeProviders(t)
	providers.setEmptyWhen("vote_average.gte")
	configPath := setupCLIEnv(t, providers, false)

	out, stderr, err := runCLI(t, "--config", configPath, "recommend", "--genre", "action", "--critics-only", "--json")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	var report recommendReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.Stage != "drop_score" {
		t.Fatalf("expected drop_score stage, got %s", report.Stage)
	}
	if len(report.Attempts) != 2 {
		t.Fatalf("expected two attempts, got %+v", report.Attempts)
	}
	if report.Filters.MinScore != nil {
		t.Fatal("expected min_score relaxed in final filters")
	}
	if len(report.Results) != 2 || report.Results[0].Title != "Speed" || report.Results[1].Title != "Die Hard" {
		t.Fatalf("unexpected results %+v", report.Results)
	}
	if report.Results[1].PosterURL != "https://image.tmdb.org/t/p/w500/diehard.jpg" {
		t.Fatalf("unexpected poster url %q", report.Results[1].PosterURL)
	}
	if strings.Join(report.Results[0].Genres, ",") != "Action,Drama" {
		t.Fatalf("unexpected genre names %v", report.Results[0].Genres)
	}
	if report.RunID == "" {
		t.Fatal("expected run id")
	}
	requireContains(t, stderr, "Trying without critic score")

	requests := providers.discoverRequests()
	if len(requests) != 10 {
		t.Fatalf("expected 5 pages per attempt, got %d requests", len(requests))
	}
	requireContains(t, requests[0], "with_genres=28")
	requireContains(t, requests[0], "vote_average.gte=7")
}

func TestRecommendTableWithDecade(t *testing.T) {
	providers := newFakeProviders(t)
	configPath := setupCLIEnv(t, providers, false)

	out, _, err := runCLI(t, "--config", configPath, "recommend", "--decade", "1980s")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, out, "Filters: years=1980-1989")
	requireContains(t, out, "Die Hard")
	requireContains(t, out, "Airplane!")
	if strings.Contains(out, "Speed") {
		t.Fatalf("1994 release should be filtered out:\n%s", out)
	}
	if strings.Index(out, "Die Hard") > strings.Index(out, "Airplane!") {
		t.Fatalf("expected popularity order:\n%s", out)
	}
}

func TestRecommendUsesInterpretedFilters(t *testing.T) {
	providers := newFakeProviders(t)
	providers.setLLMReply("```json\n{\"genres\": [\"Comedy\"], \"year_start\": 1980, \"year_end\": 1989, \"max_runtime\": 100}\n```")
	configPath := setupCLIEnv(t, providers, true)

	out, _, err := runCLI(t, "--config", configPath, "recommend", "--json", "an", "80s", "comedy")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	var report recommendReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if got := report.Filters.Summary(); got != "genres=Comedy years=1980-1989 max_runtime=100" {
		t.Fatalf("unexpected filters %q", got)
	}
	if len(report.Results) != 1 || report.Results[0].Title != "Airplane!" {
		t.Fatalf("unexpected results %+v", report.Results)
	}
	requireContains(t, providers.discoverRequests()[0], "with_runtime.lte=100")
}

func TestRecommendContinuesAfterUnparsableReply(t *testing.T) {
	providers := newFakeProviders(t)
	providers.setLLMReply("Sorry, I cannot help.")
	configPath := setupCLIEnv(t, providers, true)

	out, stderr, err := runCLI(t, "--config", configPath, "recommend", "--genre", "Drama", "something")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, stderr, "couldn't be parsed")
	requireContains(t, out, "Speed")
}

func TestRecommendExhausted(t *testing.T) {
	providers := newFakeProviders(t)
	providers.setEmptyWhen("sort_by")
	configPath := setupCLIEnv(t, providers, false)

	out, stderr, err := runCLI(t, "--config", configPath, "recommend", "--genre", "Action", "--genre", "Comedy")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	requireContains(t, out, "No results found at all")
	requireContains(t, stderr, "Trying again with only one genre")
	if got := len(providers.discoverRequests()); got != 4*5 {
		t.Fatalf("expected four attempts of five pages, got %d requests", got)
	}
}

func TestRecommendRejectsUnknownDecade(t *testing.T) {
	providers := newFakeProviders(t)
	configPath := setupCLIEnv(t, providers, false)

	_, _, err := runCLI(t, "--config", configPath, "recommend", "--decade", "1950s")
	if err == nil {
		t.Fatal("expected error for unknown decade")
	}
	requireContains(t, err.Error(), "unknown decade")
	if len(providers.discoverRequests()) != 0 {
		t.Fatal("expected no catalog calls for invalid input")
	}
}

func TestTitleCaseGenres(t *testing.T) {
	got := titleCaseGenres([]string{"science fiction", " ", "action,comedy"})
	if strings.Join(got, "|") != "Science Fiction|Action|Comedy" {
		t.Fatalf("unexpected genres %q", got)
	}
}

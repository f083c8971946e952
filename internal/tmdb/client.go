package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moviescout/internal/movie"
)

const defaultTimeout = 10 * time.Second

// Genre is a single entry of the TMDB movie genre list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type genreListResponse struct {
	Genres []Genre `json:"genres"`
}

// Result represents a single movie returned by the discover endpoint.
type Result struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	PosterPath  string   `json:"poster_path"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
	Runtime     *int     `json:"runtime"`
	Overview    string   `json:"overview"`
	GenreIDs    []int    `json:"genre_ids"`
	Popularity  float64  `json:"popularity"`
}

// Movie converts the wire record into the pipeline's movie type.
func (r Result) Movie() movie.Movie {
	m := movie.Movie{
		ID:          r.ID,
		Title:       r.Title,
		PosterPath:  strings.TrimSpace(r.PosterPath),
		ReleaseDate: strings.TrimSpace(r.ReleaseDate),
		VoteAverage: r.VoteAverage,
		Runtime:     r.Runtime,
		Overview:    r.Overview,
		Popularity:  r.Popularity,
	}
	if len(r.GenreIDs) > 0 {
		m.GenreIDs = append([]int(nil), r.GenreIDs...)
	}
	return m
}

// Response models a TMDB paginated discover response.
type Response struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalPages   int      `json:"total_pages"`
	TotalResults int      `json:"total_results"`
}

// Movies converts every result on the page, preserving provider order.
func (r *Response) Movies() movie.ResultList {
	if r == nil || len(r.Results) == 0 {
		return nil
	}
	out := make(movie.ResultList, 0, len(r.Results))
	for _, result := range r.Results {
		out = append(out, result.Movie())
	}
	return out
}

// Catalog defines the TMDB operations used by the recommendation pipeline.
type Catalog interface {
	MovieGenres(ctx context.Context) ([]Genre, error)
	DiscoverMovies(ctx context.Context, params url.Values, page int) (*Response, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Catalog = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a TMDB client.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// MovieGenres fetches the full movie genre list in provider order.
func (c *Client) MovieGenres(ctx context.Context) ([]Genre, error) {
	var payload genreListResponse
	if err := c.get(ctx, "/genre/movie/list", url.Values{}, "genre list", &payload); err != nil {
		return nil, err
	}
	return payload.Genres, nil
}

// DiscoverMovies fetches one page of the discover endpoint. Page numbers are
// 1-indexed. params is not modified.
func (c *Client) DiscoverMovies(ctx context.Context, params url.Values, page int) (*Response, error) {
	if page <= 0 {
		return nil, errors.New("page must be positive")
	}
	query := url.Values{}
	for key, values := range params {
		query[key] = append([]string(nil), values...)
	}
	query.Set("page", strconv.Itoa(page))

	var payload Response
	if err := c.get(ctx, "/discover/movie", query, "discover", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, op string, target any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb %s returned %d (latency=%v)", op, resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode tmdb %s response: %w", op, err)
	}
	return nil
}

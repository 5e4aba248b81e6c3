package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jessedye/jellyfin-suggested/internal/metadata"
)

const defaultBaseURL = "https://api.themoviedb.org"
const defaultCacheTTL = 24 * time.Hour

// ErrNotFound is returned when a title doesn't exist in TMDB.
var ErrNotFound = errors.New("title not found")

// Client is a TMDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      metadata.Cache
	cacheTTL   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache sets the response cache backend and entry TTL.
func WithCache(cache metadata.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a new TMDB client. Responses are cached in memory
// unless WithCache supplies another backend.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:    metadata.NewMemoryCache(),
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Similar fetches titles similar to the given TMDB id, in TMDB's
// relevance order, with rating and vote-count metadata.
func (c *Client) Similar(ctx context.Context, tmdbID int64, mediaType MediaType) ([]Title, error) {
	path := fmt.Sprintf("/3/%s/%d/similar", mediaType, tmdbID)
	key := fmt.Sprintf("tmdb:similar:%s:%d", mediaType, tmdbID)

	body, err := c.fetch(ctx, path, nil, key)
	if err != nil {
		return nil, err
	}

	var page resultsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return page.Results, nil
}

// Search resolves a title string to its best TMDB match (the first
// search result). Returns ErrNotFound when nothing matches.
func (c *Client) Search(ctx context.Context, query string, mediaType MediaType) (*Title, error) {
	path := fmt.Sprintf("/3/search/%s", mediaType)
	params := url.Values{"query": {query}}
	key := fmt.Sprintf("tmdb:search:%s:%s", mediaType, query)

	body, err := c.fetch(ctx, path, params, key)
	if err != nil {
		return nil, err
	}

	var page resultsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(page.Results) == 0 {
		return nil, ErrNotFound
	}
	return &page.Results[0], nil
}

// fetch performs a GET against the API with the cache consulted first.
// Successful response bodies are cached under key.
func (c *Client) fetch(ctx context.Context, path string, params url.Values, key string) ([]byte, error) {
	if body, ok := c.cache.Get(ctx, key); ok {
		return body, nil
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB API error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		// A cache write failure is not a lookup failure.
		return body, nil
	}
	return body, nil
}

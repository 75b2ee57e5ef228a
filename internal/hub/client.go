package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/egoavara/spin-hub/internal/log"
)

const (
	// DefaultBaseURL is the Hub site the index is served from
	DefaultBaseURL = "https://developer.fermyon.com"
	// IndexPath is the index endpoint relative to the base URL
	IndexPath = "api/hub/get_list"

	DefaultCacheTTL = 10 * time.Minute
)

var (
	// ErrCatalogFetch is returned when the index cannot be retrieved
	ErrCatalogFetch = errors.New("failed to fetch hub index")
	// ErrCatalogParse is returned when the index body is not valid JSON
	ErrCatalogParse = errors.New("failed to parse hub index")
)

// StatusError reports an unsuccessful HTTP response from the Hub
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unsuccessful response from API: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Client fetches the Hub index
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	cache      *gocache.Cache
	cacheFile  string
}

// Option configures a Client
type Option func(*Client)

// WithCacheFile keeps the index cache in path between runs
func WithCacheFile(path string) Option {
	return func(c *Client) {
		c.cacheFile = path
	}
}

// NewClient creates a new index client. A zero ttl disables caching.
func NewClient(baseURL string, ttl time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case ttl <= 0:
	case c.cacheFile != "":
		c.cache = loadCache(c.cacheFile, ttl)
	default:
		c.cache = gocache.New(ttl, 2*ttl)
	}
	return c
}

// IndexURL returns the full index endpoint URL
func (c *Client) IndexURL() (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base URL %q: %v", ErrCatalogFetch, c.BaseURL, err)
	}
	if base.Path == "" {
		base.Path = "/"
	}
	ref, _ := url.Parse(IndexPath)
	return base.ResolveReference(ref).String(), nil
}

// Index returns every entry published on the Hub
func (c *Client) Index(ctx context.Context) ([]Entry, error) {
	indexURL, err := c.IndexURL()
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if cached, found := c.cache.Get(indexURL); found {
			if entries, ok := cached.([]Entry); ok {
				log.Debug(log.CatHub, "cache hit", "url", indexURL)
				return entries, nil
			}
		}
	}

	entries, err := c.fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.SetDefault(indexURL, entries)
		if c.cacheFile != "" {
			if err := saveCache(c.cacheFile, c.cache); err != nil {
				log.Warn(log.CatHub, "cannot write cache file", "path", c.cacheFile, "error", err)
			}
		}
	}
	return entries, nil
}

func (c *Client) fetch(ctx context.Context, indexURL string) ([]Entry, error) {
	log.Debug(log.CatHub, "fetching index", "url", indexURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, indexURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn(log.CatHub, "unsuccessful response", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %w", ErrCatalogFetch, &StatusError{StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogFetch, err)
	}

	var entries []Entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}

	log.Info(log.CatHub, "index loaded", "entries", len(entries))
	return entries, nil
}

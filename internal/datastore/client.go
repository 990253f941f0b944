package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mojorewards/internal/pkg/caching"

	"github.com/gojek/heimdall/v7/httpclient"
)

const (
	DEFAULT_TIMEOUT   = 10 * time.Second
	DEFAULT_CACHE_TTL = 30 * time.Second

	maxErrorBody = 1 << 10
)

type doer interface {
	Do(*http.Request) (*http.Response, error)
}

// StatusError is returned when the records API answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// Client is the typed client of the rewards records API. Reads go through
// the query cache keyed by endpoint path.
type Client struct {
	baseURL  string
	http     doer
	cache    caching.Cache
	cacheTTL time.Duration
	timeout  time.Duration
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCache enables the query cache. A nil cache or non-positive ttl
// disables it.
func WithCache(cache caching.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

func WithHTTPClient(client doer) Option {
	return func(c *Client) {
		c.http = client
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("records api url is required")
	}

	c := &Client{
		baseURL:  baseURL,
		timeout:  DEFAULT_TIMEOUT,
		cacheTTL: DEFAULT_CACHE_TTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cacheTTL <= 0 {
		c.cache = nil
	}

	if c.http == nil {
		// a request resolves or rejects once, no retries
		c.http = httpclient.NewClient(
			httpclient.WithHTTPTimeout(c.timeout),
			httpclient.WithRetryCount(0),
		)
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Invalidate drops the cached response of an endpoint path.
func (c *Client) Invalidate(ctx context.Context, path string) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Delete(ctx, path)
}

// Refresh fetches path past the cache and stores the response. The cached
// copy is left alone when the fetch fails.
func (c *Client) Refresh(ctx context.Context, path string) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if !json.Valid(body) {
		return fmt.Errorf("decode %s: invalid json", path)
	}

	if c.cache == nil {
		return nil
	}
	return c.cache.Set(ctx, path, body, c.cacheTTL)
}

func (c *Client) do(ctx context.Context, method string, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// a 5xx may come back together with an error, the status wins
	res, err := c.http.Do(req)
	if res == nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		return nil, &StatusError{method, path, res.StatusCode, strings.TrimSpace(string(data))}
	}

	return data, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var v T
	body, err := caching.UseCache(ctx, c.cache, path, c.cacheTTL, func() ([]byte, error) {
		return c.do(ctx, http.MethodGet, path, nil)
	})
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

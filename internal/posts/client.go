package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/postview/internal/logging"
)

// DefaultEndpoint is the public collection postview browses by default.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// Fetch errors.
var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecode           = errors.New("failed to decode posts")
)

// Fetcher retrieves the full post collection.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]Post, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]Post, error)

// FetchAll calls f(ctx).
func (f FetcherFunc) FetchAll(ctx context.Context) ([]Post, error) {
	return f(ctx)
}

// Client fetches posts over HTTP.
type Client struct {
	// Endpoint is the URL of the JSON array of posts.
	Endpoint string

	// HTTPClient performs the request. Tests swap it for an httptest client.
	HTTPClient *http.Client
}

// NewClient creates a Client for endpoint with the given request timeout.
// An empty endpoint selects DefaultEndpoint and a non-positive timeout selects DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// FetchAll issues one GET against the endpoint and decodes the whole collection.
// A JSON null body yields an empty, non-nil slice.
func (c *Client) FetchAll(ctx context.Context) ([]Post, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching posts from %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var result []Post
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&result); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, decodeErr)
	}
	if result == nil {
		result = []Post{}
	}

	log.Debug().
		Str("component", "posts").
		Str("endpoint", c.Endpoint).
		Int("count", len(result)).
		Dur("elapsed", time.Since(start)).
		Msg("posts fetched")

	return result, nil
}

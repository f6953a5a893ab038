// Package fetch retrieves pages for link analysis. Retrieval is bounded by
// an explicit timeout and a response size cap, guarded against SSRF, and
// single-attempt: a failed fetch is fatal to that analysis and is never
// retried.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jobshield/jobshield/internal/metrics"
	"github.com/jobshield/jobshield/internal/security"
	"github.com/jobshield/jobshield/internal/traces"
)

const userAgent = "jobshield/0.1 (+https://github.com/jobshield/jobshield)"

// Client fetches page bodies over HTTP(S).
type Client struct {
	http     *http.Client
	maxBytes int64

	// allowPrivate disables the SSRF guard. Only for tests and local
	// development against httptest servers.
	allowPrivate bool
}

// Option configures the client.
type Option func(*Client)

// WithAllowPrivateHosts disables the private-address guard.
func WithAllowPrivateHosts() Option {
	return func(c *Client) {
		c.allowPrivate = true
	}
}

// NewClient creates a fetch client with a hard timeout and response size cap.
func NewClient(timeout time.Duration, maxBytes int64, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the body at rawURL. Timeouts, refused connections, blocked
// targets, and non-2xx statuses all return an error; the caller decides how
// that maps onto its own failure mode.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, span := traces.StartSpan(ctx, "fetch.page")
	defer span.End()

	if !c.allowPrivate {
		if err := security.ValidateTargetURL(rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

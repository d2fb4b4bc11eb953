// Package fetch implements the Fetcher and ByteFetcher interfaces.
// It performs HTTP GET requests with sensible defaults for fetching
// encyclopedia articles and their images.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/wikibook/core"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "wikibook/1.0 (https://github.com/gaurav-prasanna/wikibook)"
)

// Ensure HTTPFetcher implements both fetch collaborators at compile time.
var (
	_ core.Fetcher     = (*HTTPFetcher)(nil)
	_ core.ByteFetcher = (*HTTPFetcher)(nil)
)

// HTTPFetcher fetches web pages and images via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithRate limits requests to rps per second. Zero or less means unlimited.
func WithRate(rps float64) Option {
	return func(f *HTTPFetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithClient replaces the underlying HTTP client. The timeout option is
// ignored when a client is supplied.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch retrieves the HTML content of the given article URL. The URL is
// escaped first; an unescapable URL is a fetch error.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	escaped, err := EscapeURL(rawURL)
	if err != nil {
		return nil, core.Wrap(core.KindFetch, rawURL, err)
	}

	status, body, err := f.get(ctx, escaped, "text/html,application/xhtml+xml")
	if err != nil {
		return nil, core.Wrap(core.KindFetch, rawURL, err)
	}

	return &core.FetchResult{
		URL:        escaped,
		StatusCode: status,
		HTML:       string(body),
	}, nil
}

// FetchBytes retrieves the raw bytes of an image URL.
func (f *HTTPFetcher) FetchBytes(ctx context.Context, rawURL string) ([]byte, error) {
	_, body, err := f.get(ctx, rawURL, "image/*,*/*")
	if err != nil {
		return nil, core.Wrap(core.KindImageFetch, rawURL, err)
	}
	return body, nil
}

func (f *HTTPFetcher) get(ctx context.Context, url, accept string) (int, []byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

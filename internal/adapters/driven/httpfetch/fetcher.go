// Package httpfetch implements the driven Fetcher port over net/http.
// Outgoing requests are throttled with a token bucket and responses are
// decoded as JSON documents.
package httpfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
)

const (
	// maxBodySize bounds the response body read (4 MiB).
	maxBodySize = 4 << 20

	// headerRetryAfter is the retry-after header (seconds).
	headerRetryAfter = "Retry-After"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves JSON documents over HTTP with proactive throttling.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a fetcher from fetch settings. A zero timeout falls
// back to the default; a zero rate disables throttling.
func NewFetcher(settings domain.FetchSettings) *Fetcher {
	timeout := settings.Timeout
	if timeout == 0 {
		timeout = domain.DefaultFetchTimeout
	}

	var limiter *rate.Limiter
	if settings.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(settings.RatePerSec), 1)
	}

	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// NewFetcherWithClient creates a fetcher with a custom HTTP client.
// Useful for testing.
func NewFetcherWithClient(client *http.Client, ratePerSec float64) *Fetcher {
	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}
	return &Fetcher{client: client, limiter: limiter}
}

// Fetch performs a GET against url and decodes the JSON response body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*domain.FetchResult, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: retry after %s", domain.ErrRateLimited, retryAfter(resp))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	var body map[string]any
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize))
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding body: %v", domain.ErrFetchFailed, err)
	}

	return &domain.FetchResult{
		URL:    url,
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}

// retryAfter parses the Retry-After header, defaulting to one second.
func retryAfter(resp *http.Response) time.Duration {
	if header := resp.Header.Get(headerRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Second
}

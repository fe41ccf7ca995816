package driven

import (
	"context"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// Fetcher retrieves JSON documents over HTTP.
// Implementations are expected to rate-limit outgoing requests.
type Fetcher interface {
	// Fetch performs a GET against url and decodes the JSON response body.
	Fetch(ctx context.Context, url string) (*domain.FetchResult, error)
}

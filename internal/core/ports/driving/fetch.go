package driving

import (
	"context"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// FetchService retrieves JSON documents relative to the configured base URL.
type FetchService interface {
	// Fetch joins path onto the configured base URL and returns the
	// decoded JSON response.
	Fetch(ctx context.Context, path string) (*domain.FetchResult, error)
}

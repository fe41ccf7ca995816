package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
	"github.com/custodia-labs/tally-cli/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.FetchService = (*FetchService)(nil)

// FetchService retrieves JSON documents relative to a configured base URL.
type FetchService struct {
	fetcher driven.Fetcher
	baseURL string
}

// NewFetchService creates a fetch service. The fetcher may be nil, in
// which case Fetch returns domain.ErrFetchUnavailable.
func NewFetchService(fetcher driven.Fetcher, settings domain.FetchSettings) *FetchService {
	return &FetchService{
		fetcher: fetcher,
		baseURL: settings.BaseURL,
	}
}

// Fetch joins path onto the base URL and returns the decoded JSON response.
func (s *FetchService) Fetch(ctx context.Context, path string) (*domain.FetchResult, error) {
	if s.fetcher == nil {
		return nil, domain.ErrFetchUnavailable
	}
	if s.baseURL == "" {
		return nil, fmt.Errorf("%w: fetch base URL not configured", domain.ErrInvalidInput)
	}

	full, err := url.JoinPath(s.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("%w: joining %q onto %q: %v",
			domain.ErrInvalidInput, path, s.baseURL, err)
	}

	logger.Section("Fetch")
	logger.Debug("GET %s", full)

	result, err := s.fetcher.Fetch(ctx, full)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", full, err)
	}

	logger.Debug("Status: %d, keys: %d", result.Status, len(result.Body))
	return result, nil
}

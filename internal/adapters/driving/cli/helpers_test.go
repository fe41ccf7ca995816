package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/tally-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/services"
)

// stubFetcher implements driven.Fetcher for testing.
type stubFetcher struct {
	result *domain.FetchResult
	err    error
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*domain.FetchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		result := *f.result
		result.URL = url
		return &result, nil
	}
	return &domain.FetchResult{
		URL:    url,
		Status: 200,
		Body:   map[string]any{"ok": true},
	}, nil
}

// setupTestServices wires real services over in-memory adapters and a
// fixed clock. The returned cleanup resets the injected ports.
func setupTestServices() func() {
	fixed := &clock.Fixed{Time: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)}
	settings := domain.DefaultAppSettings()
	settings.Fetch.BaseURL = "https://api.example.com"

	configStore := memory.NewConfigStore()
	settingsService := services.NewSettingsService(configStore)

	SetServices(Services{
		Calculator: services.NewCalculatorService(settings.Calculator, memory.NewHistoryStore(), fixed),
		Time:       services.NewTimeKeeper(fixed, settings.Clock.DayOffset),
		Fetch:      services.NewFetchService(&stubFetcher{}, settings.Fetch),
		Settings:   settingsService,
	})

	return func() {
		SetServices(Services{})
	}
}

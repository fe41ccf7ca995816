// Command tally is an operation-logging calculator workbench.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/tally-cli/internal/adapters/driven/clock"
	"github.com/custodia-labs/tally-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tally-cli/internal/adapters/driven/httpfetch"
	"github.com/custodia-labs/tally-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tally-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tally-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	systemClock := clock.NewSystem()
	historyStore := memory.NewHistoryStore()

	calculatorService := services.NewCalculatorService(settings.Calculator, historyStore, systemClock)
	timeService := services.NewTimeKeeper(systemClock, settings.Clock.DayOffset)

	// Without a base URL the fetch port stays nil and the service
	// reports domain.ErrFetchUnavailable.
	var fetcher driven.Fetcher
	if settings.Fetch.IsConfigured() {
		fetcher = httpfetch.NewFetcher(settings.Fetch)
	}
	fetchService := services.NewFetchService(fetcher, settings.Fetch)

	cli.SetServices(cli.Services{
		Calculator: calculatorService,
		Time:       timeService,
		Fetch:      fetchService,
		Settings:   settingsService,
	})
	cli.SetConfigPath(configStore.Path())
	cli.SetVersion(version)

	return cli.Execute()
}

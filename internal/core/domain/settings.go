package domain

import "time"

// CalculatorSettings holds calculator behaviour configuration.
type CalculatorSettings struct {
	// Name is the display name used in logs and history output.
	Name string

	// LogOperations controls whether each call is logged.
	LogOperations bool
}

// FetchSettings holds remote fetch configuration.
type FetchSettings struct {
	// BaseURL is the endpoint that relative fetch paths are joined onto.
	BaseURL string

	// Timeout bounds a single fetch request.
	Timeout time.Duration

	// RatePerSec is the proactive request throttle. Zero disables throttling.
	RatePerSec float64
}

// IsConfigured returns true if fetching is set up.
func (f FetchSettings) IsConfigured() bool {
	return f.BaseURL != ""
}

// ClockSettings holds time helper configuration.
type ClockSettings struct {
	// DayOffset is added to the current time by the tomorrow helper.
	DayOffset time.Duration
}

// AppSettings aggregates all application settings.
type AppSettings struct {
	Calculator CalculatorSettings
	Fetch      FetchSettings
	Clock      ClockSettings
}

// Default configuration values.
const (
	// DefaultCalculatorName is used when no name is configured.
	DefaultCalculatorName = "main"

	// DefaultFetchTimeout bounds a fetch request when none is configured.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultFetchRate is the proactive fetch throttle (requests per second).
	DefaultFetchRate = 1.2

	// DefaultDayOffset is one day, matching the tomorrow helper.
	DefaultDayOffset = 24 * time.Hour
)

// DefaultAppSettings returns the default settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Calculator: CalculatorSettings{
			Name:          DefaultCalculatorName,
			LogOperations: true,
		},
		Fetch: FetchSettings{
			Timeout:    DefaultFetchTimeout,
			RatePerSec: DefaultFetchRate,
		},
		Clock: ClockSettings{
			DayOffset: DefaultDayOffset,
		},
	}
}

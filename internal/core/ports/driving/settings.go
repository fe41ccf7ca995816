package driving

import (
	"time"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetCalculatorName updates the calculator display name.
	SetCalculatorName(name string) error

	// SetFetchBaseURL updates the fetch base URL.
	SetFetchBaseURL(url string) error

	// SetDayOffset updates the tomorrow helper offset.
	SetDayOffset(offset time.Duration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCalcName   = "calculator.name"
	keyCalcLogOps = "calculator.log_operations"
	keyFetchBase  = "fetch.base_url"
	keyFetchTime  = "fetch.timeout"
	keyFetchRate  = "fetch.rate_per_sec"
	keyDayOffset  = "clock.day_offset"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Calculator: domain.CalculatorSettings{
			Name:          s.getString(keyCalcName, defaults.Calculator.Name),
			LogOperations: s.getBool(keyCalcLogOps, defaults.Calculator.LogOperations),
		},
		Fetch: domain.FetchSettings{
			BaseURL:    s.configStore.GetString(keyFetchBase), // No default - empty disables fetch
			Timeout:    s.getDuration(keyFetchTime, defaults.Fetch.Timeout),
			RatePerSec: s.getFloat(keyFetchRate, defaults.Fetch.RatePerSec),
		},
		Clock: domain.ClockSettings{
			DayOffset: s.getDuration(keyDayOffset, defaults.Clock.DayOffset),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyCalcName, settings.Calculator.Name); err != nil {
		return fmt.Errorf("save calculator name: %w", err)
	}
	if err := s.configStore.Set(keyCalcLogOps, settings.Calculator.LogOperations); err != nil {
		return fmt.Errorf("save calculator log_operations: %w", err)
	}
	if err := s.configStore.Set(keyFetchBase, settings.Fetch.BaseURL); err != nil {
		return fmt.Errorf("save fetch base_url: %w", err)
	}
	if err := s.configStore.Set(keyFetchTime, settings.Fetch.Timeout.String()); err != nil {
		return fmt.Errorf("save fetch timeout: %w", err)
	}
	if err := s.configStore.Set(keyFetchRate, settings.Fetch.RatePerSec); err != nil {
		return fmt.Errorf("save fetch rate_per_sec: %w", err)
	}
	if err := s.configStore.Set(keyDayOffset, settings.Clock.DayOffset.String()); err != nil {
		return fmt.Errorf("save clock day_offset: %w", err)
	}
	return nil
}

// SetCalculatorName updates the calculator display name.
func (s *SettingsService) SetCalculatorName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: calculator name must not be empty", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Calculator.Name = name
	return s.Save(settings)
}

// SetFetchBaseURL updates the fetch base URL. An empty URL disables fetching.
func (s *SettingsService) SetFetchBaseURL(url string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Fetch.BaseURL = url
	return s.Save(settings)
}

// SetDayOffset updates the tomorrow helper offset.
func (s *SettingsService) SetDayOffset(offset time.Duration) error {
	if offset <= 0 {
		return fmt.Errorf("%w: day offset must be positive", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Clock.DayOffset = offset
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

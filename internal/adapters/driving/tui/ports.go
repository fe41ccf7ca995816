package tui

import (
	"errors"

	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
)

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator performs recorded arithmetic.
	Calculator driving.CalculatorService

	// Settings reads application settings for live reload.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	// Settings is optional; without it config changes are not picked up.
	return nil
}

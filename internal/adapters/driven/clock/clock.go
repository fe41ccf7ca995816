// Package clock provides the system implementation of the driven Clock port.
package clock

import (
	"time"

	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clock = (*System)(nil)

// System reads the wall clock.
type System struct{}

// NewSystem creates a system clock.
func NewSystem() *System {
	return &System{}
}

// Now returns the current time.
func (*System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Useful for testing.
type Fixed struct {
	// Time is the instant to report.
	Time time.Time
}

// Now returns the fixed instant.
func (f *Fixed) Now() time.Time {
	return f.Time
}

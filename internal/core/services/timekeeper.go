package services

import (
	"time"

	"github.com/custodia-labs/tally-cli/internal/core/domain"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driven"
	"github.com/custodia-labs/tally-cli/internal/core/ports/driving"
)

// Ensure TimeKeeper implements the interface.
var _ driving.TimeService = (*TimeKeeper)(nil)

// TimeKeeper provides offset date arithmetic on the wall clock.
type TimeKeeper struct {
	clock  driven.Clock
	offset time.Duration
}

// NewTimeKeeper creates a time keeper. A zero offset falls back to the
// default of one day.
func NewTimeKeeper(clock driven.Clock, offset time.Duration) *TimeKeeper {
	if offset == 0 {
		offset = domain.DefaultDayOffset
	}
	return &TimeKeeper{clock: clock, offset: offset}
}

// Tomorrow returns the current time plus the configured day offset.
func (t *TimeKeeper) Tomorrow() time.Time {
	return t.clock.Now().Add(t.offset)
}

// Offset returns the configured day offset.
func (t *TimeKeeper) Offset() time.Duration {
	return t.offset
}

package driving

import "time"

// TimeService provides offset date arithmetic on the current time.
type TimeService interface {
	// Tomorrow returns the current time plus the configured day offset.
	Tomorrow() time.Time

	// Offset returns the configured day offset.
	Offset() time.Duration
}

package driven

import "time"

// Clock abstracts the wall clock so time-dependent behaviour is testable.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

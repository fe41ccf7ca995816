package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownOperation indicates an operation kind that is not supported.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrRateLimited indicates the fetch rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrFetchFailed indicates a remote fetch returned a non-success status.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrFetchUnavailable indicates no fetcher is configured.
	// The fetch command and tool are disabled without one.
	ErrFetchUnavailable = errors.New("fetch service unavailable")
)

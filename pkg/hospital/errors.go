package hospital

import (
	"errors"
	"fmt"
)

// Error taxonomy for the core. Callers branch with errors.Is; the HTTP layer
// maps these onto status codes.
var (
	// ErrValidation marks missing or malformed caller input. Not retryable.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a reference to a display or alert that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable marks a failing persistence collaborator on a
	// mutating path. Safe to retry with backoff at the caller's discretion.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInternal marks a violated transition invariant. Should not occur.
	ErrInternal = errors.New("internal inconsistency")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func upstreamErr(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, cause)
}

package directions

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a client without an API key attempts
// a route request. The request is never sent.
var ErrMissingAPIKey = errors.New("directions: API key is not configured")

// TransportError reports a failed HTTP exchange with the routes service:
// either a non-success status or a network-level failure.
type TransportError struct {
	StatusCode int    // zero for network-level failures
	Status     string // reason phrase
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("directions: routes request failed: HTTP %d %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("directions: routes request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ShapeError reports a response document whose required top-level
// structure is missing or malformed. No partial result accompanies it.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("directions: malformed response: %s: %s", e.Field, e.Reason)
}

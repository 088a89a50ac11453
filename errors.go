package wealthdash

import (
	"errors"
	"fmt"
)

// The error taxonomy. Errors surface next to the operation that caused them
// and never take the whole dashboard down:
//
//   - ValidationError: malformed user input, shown inline by the caller.
//   - NotFoundError: an operation referenced an unknown account.
//   - ParseError: an unreadable statement file or an empty extraction;
//     returns the import pipeline to idle.
//   - OracleError: an extraction-service failure; rate limits are retried,
//     anything else is terminal for the attempt.
//
// Persistence failures are deliberately not part of the taxonomy: the store
// logs them and moves on.

// ValidationError reports malformed user input.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg) }

// NotFoundError reports a reference to an unknown account.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("no account with id %q", e.ID) }

// ParseError reports an unreadable or empty statement.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// OracleError reports a failure of the external extraction service.
type OracleError struct {
	RateLimited bool
	Err         error
}

func (e *OracleError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("extraction service rate limited: %v", e.Err)
	}
	return fmt.Sprintf("extraction service failed: %v", e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// IsRateLimited reports whether err is an OracleError caused by rate limiting.
func IsRateLimited(err error) bool {
	var oe *OracleError
	return errors.As(err, &oe) && oe.RateLimited
}

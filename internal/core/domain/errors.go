package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Remote-call errors. The Perplexity client wraps every failure in
	// exactly one of these so callers can match with errors.Is.

	// ErrAuthFailed indicates the API rejected the credential.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates the outbound request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrUpstream indicates the API returned a server error or a
	// response the client could not interpret.
	ErrUpstream = errors.New("upstream error")
)

// ValidationError describes a single argument-shape violation:
// which field failed and why. It unwraps to ErrInvalidInput.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

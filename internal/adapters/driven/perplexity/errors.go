package perplexity

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// APIError represents a non-2xx response from the Perplexity API.
// It unwraps to the matching domain sentinel so callers can match the
// error kind with errors.Is without importing this package.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("perplexity: API error %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return domain.ErrAuthFailed
	case e.StatusCode == 429:
		return domain.ErrRateLimited
	default:
		return domain.ErrUpstream
	}
}

// RateLimitError is a 429 response carrying the reset time, when the
// API reported one via Retry-After.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetAt.IsZero() {
		return "perplexity: rate limit exceeded"
	}
	return fmt.Sprintf("perplexity: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// wrapTransportError maps transport-level failures from the HTTP round
// trip to the domain taxonomy. Deadline expiry, from either the request
// context or the client timeout, becomes domain.ErrTimeout.
func wrapTransportError(err error, timeout time.Duration) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w after %s: %v", domain.ErrTimeout, timeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, domain.ErrRateLimited)
}

// IsAuthFailed checks if the error indicates a rejected credential.
func IsAuthFailed(err error) bool {
	return errors.Is(err, domain.ErrAuthFailed)
}

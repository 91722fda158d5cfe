package perplexity

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// proactiveRate is the client-side throttle rate (requests/second).
	// The API does not publish quota headers, so throttling is purely
	// proactive; a 429 still surfaces as a RateLimitError.
	proactiveRate = 2.0

	// burstSize allows a single immediate request after idle.
	burstSize = 1

	// headerRetryAfter is the retry-after header (seconds).
	headerRetryAfter = "Retry-After"
)

// newLimiter creates the proactive token-bucket throttle shared by all
// requests on one client.
func newLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(proactiveRate), burstSize)
}

// retryAfter parses the Retry-After header into a reset time.
// Returns the zero time when the header is absent or malformed.
func retryAfter(resp *http.Response) time.Time {
	v := resp.Header.Get(headerRetryAfter)
	if v == "" {
		return time.Time{}
	}
	seconds, err := strconv.Atoi(v)
	if err != nil {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(seconds) * time.Second)
}

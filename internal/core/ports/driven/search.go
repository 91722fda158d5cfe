package driven

import (
	"context"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// SearchClient is the outbound port to the remote Perplexity search API.
//
// Every call is a fresh network round trip: no retries, no caching.
// Implementations must be safe for concurrent use.
type SearchClient interface {
	// Query sends one chat-completion request. The request is expected
	// to be validated and default-filled by the caller; the client maps
	// HTTP failures to the domain error taxonomy.
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error)

	// SimpleQuery sends a query with all parameters taken from the
	// configured defaults and no system message.
	SimpleQuery(ctx context.Context, message string) (*domain.QueryResult, error)

	// Ping validates the API is reachable and the credential is valid
	// by making a minimal test request. Diagnostics only.
	Ping(ctx context.Context) error
}

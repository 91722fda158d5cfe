package driving

import (
	"context"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// AnswerService answers questions through the remote search API on
// behalf of external actors (the MCP server, the CLI).
type AnswerService interface {
	// Query validates the request against the declared argument shape,
	// fills configuration defaults, and dispatches it. Shape violations
	// return a *domain.ValidationError without touching the network.
	Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error)

	// SimpleQuery answers a bare question with all defaults.
	SimpleQuery(ctx context.Context, query string) (*domain.QueryResult, error)

	// HealthCheck reports API reachability and credential validity.
	HealthCheck(ctx context.Context) error
}

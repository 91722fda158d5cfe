package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexity-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/perplexity-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/perplexity-mcp/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// AnswerService is the dispatch core: it validates query arguments
// against their declared shape, fills configuration defaults, and hands
// the request to the search client. Requests are processed one at a
// time per caller; the service itself holds no mutable state.
type AnswerService struct {
	cfg    domain.Config
	client driven.SearchClient
}

// NewAnswerService creates a new answer service. The configuration is
// read-only and shared with the client.
func NewAnswerService(cfg domain.Config, client driven.SearchClient) *AnswerService {
	return &AnswerService{
		cfg:    cfg,
		client: client,
	}
}

// Query validates req, fills defaults, and dispatches it. Shape
// violations are rejected before any network traffic.
func (s *AnswerService) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	logger.Section("Perplexity Query")

	req.Message = strings.TrimSpace(req.Message)
	req = req.WithDefaults(s.cfg)

	if err := req.Validate(); err != nil {
		logger.Debug("Rejected: %v", err)
		return nil, err
	}

	logger.Debug("Model: %s, MaxTokens: %d, Temperature: %.2f", req.Model, req.MaxTokens, req.Temperature)
	return s.client.Query(ctx, req)
}

// SimpleQuery answers a bare question with all configuration defaults
// and no system message.
func (s *AnswerService) SimpleQuery(ctx context.Context, query string) (*domain.QueryResult, error) {
	logger.Section("Perplexity Search")

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &domain.ValidationError{Field: "query", Reason: "must not be empty"}
	}

	return s.client.SimpleQuery(ctx, query)
}

// HealthCheck reports API reachability and credential validity.
func (s *AnswerService) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx)
}

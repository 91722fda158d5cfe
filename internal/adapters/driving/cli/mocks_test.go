package cli

import (
	"context"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	result    *domain.QueryResult
	err       error
	healthErr error

	lastReq   domain.QueryRequest
	lastQuery string
}

func (m *mockAnswerService) Query(_ context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func (m *mockAnswerService) SimpleQuery(_ context.Context, query string) (*domain.QueryResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func (m *mockAnswerService) HealthCheck(_ context.Context) error {
	return m.healthErr
}

// withAnswerService swaps in a mock for the duration of a test.
func withAnswerService(mock *mockAnswerService, fn func()) {
	old := answerService
	answerService = mock
	defer func() { answerService = old }()
	fn()
}

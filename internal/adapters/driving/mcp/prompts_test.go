package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

func promptRequest(name string, args map[string]string) *mcp.GetPromptRequest {
	return &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: name, Arguments: args},
	}
}

// promptText extracts the single user message from a prompt result.
func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	require.Len(t, result.Messages, 1)
	assert.Equal(t, mcp.Role("user"), result.Messages[0].Role)

	text, ok := result.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestServer_handleResearchTopic(t *testing.T) {
	server := newTestServer(t, &mockAnswerService{})
	ctx := context.Background()

	t.Run("renders the topic", func(t *testing.T) {
		result, err := server.handleResearchTopic(ctx, promptRequest("research_topic", map[string]string{
			"topic": "quantum computing",
		}))

		require.NoError(t, err)
		assert.Contains(t, result.Description, "quantum computing")
		text := promptText(t, result)
		assert.Contains(t, text, "detailed research about quantum computing")
		assert.Contains(t, text, "reliable sources")
	})

	t.Run("missing topic fails validation", func(t *testing.T) {
		_, err := server.handleResearchTopic(ctx, promptRequest("research_topic", nil))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleQuickFactCheck(t *testing.T) {
	server := newTestServer(t, &mockAnswerService{})
	ctx := context.Background()

	t.Run("renders the claim literally", func(t *testing.T) {
		result, err := server.handleQuickFactCheck(ctx, promptRequest("quick_fact_check", map[string]string{
			"claim": "the sky is green",
		}))

		require.NoError(t, err)
		assert.Contains(t, promptText(t, result), "the sky is green")
	})

	t.Run("missing claim fails validation", func(t *testing.T) {
		_, err := server.handleQuickFactCheck(ctx, promptRequest("quick_fact_check", map[string]string{}))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("blank claim fails validation", func(t *testing.T) {
		_, err := server.handleQuickFactCheck(ctx, promptRequest("quick_fact_check", map[string]string{
			"claim": "   ",
		}))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleExplainConcept(t *testing.T) {
	server := newTestServer(t, &mockAnswerService{})
	ctx := context.Background()

	t.Run("renders concept and level", func(t *testing.T) {
		result, err := server.handleExplainConcept(ctx, promptRequest("explain_concept", map[string]string{
			"concept": "goroutines",
			"level":   "advanced",
		}))

		require.NoError(t, err)
		text := promptText(t, result)
		assert.Contains(t, text, "goroutines")
		assert.Contains(t, text, "advanced level")
	})

	t.Run("level defaults to intermediate", func(t *testing.T) {
		result, err := server.handleExplainConcept(ctx, promptRequest("explain_concept", map[string]string{
			"concept": "channels",
		}))

		require.NoError(t, err)
		assert.Contains(t, promptText(t, result), "intermediate level")
	})

	t.Run("unknown level fails validation", func(t *testing.T) {
		_, err := server.handleExplainConcept(ctx, promptRequest("explain_concept", map[string]string{
			"concept": "channels",
			"level":   "expert",
		}))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing concept fails validation", func(t *testing.T) {
		_, err := server.handleExplainConcept(ctx, promptRequest("explain_concept", map[string]string{
			"level": "beginner",
		}))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

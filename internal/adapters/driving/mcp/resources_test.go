package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestServer_handleInfoResource(t *testing.T) {
	server := newTestServer(t, &mockAnswerService{})
	ctx := context.Background()

	t.Run("returns the server description", func(t *testing.T) {
		result, err := server.handleInfoResource(ctx, readRequest(InfoURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, InfoURI, result.Contents[0].URI)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.NotEmpty(t, result.Contents[0].Text)
		assert.Contains(t, result.Contents[0].Text, "query_perplexity")
		assert.Contains(t, result.Contents[0].Text, "search_perplexity")
	})

	t.Run("unknown URI is not found", func(t *testing.T) {
		_, err := server.handleInfoResource(ctx, readRequest("unknown://x"))
		assert.Error(t, err)
	})
}

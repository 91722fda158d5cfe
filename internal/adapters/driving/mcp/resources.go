package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// InfoURI is the fixed identifier of the server-info resource.
const InfoURI = "perplexity://info"

const serverInfoText = `Perplexity MCP Server

This server provides access to Perplexity AI through the Model Context Protocol.

Available Tools:
- query_perplexity: Full-featured query with model selection and parameters
- search_perplexity: Quick search with default settings

Available Models:
- sonar (default, web search enabled)
- sonar-pro (web search enabled, larger context)
- sonar-reasoning (chain-of-thought reasoning with web search)

All models perform real-time web search and return citations.
`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         InfoURI,
		Name:        "server-info",
		Description: "Information about the Perplexity MCP server",
		MIMEType:    "text/plain",
	}, s.handleInfoResource)
}

// handleInfoResource returns the static server description.
func (s *Server) handleInfoResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if req.Params.URI != InfoURI {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     serverInfoText,
		}},
	}, nil
}

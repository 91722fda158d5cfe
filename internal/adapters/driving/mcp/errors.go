// Package mcp provides the MCP (Model Context Protocol) server adapter
// for the Perplexity bridge. It exposes the search tools, prompt
// templates, and the server-info resource to MCP clients such as
// Claude Desktop.
package mcp

import (
	"errors"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")

// errorText maps a tool-execution failure to the readable cause placed
// in an error content result. Remote-call failures never propagate as
// protocol faults; the calling assistant gets text it can reason about.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return err.Error()
	case errors.Is(err, domain.ErrAuthFailed):
		return "authentication failed: check the configured Perplexity API key"
	case errors.Is(err, domain.ErrRateLimited):
		return "rate limited, try later"
	case errors.Is(err, domain.ErrTimeout):
		return "request timed out"
	default:
		return "upstream error: " + err.Error()
	}
}

package mcp

import (
	"github.com/custodia-labs/perplexity-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Answer dispatches queries to the remote search API.
	Answer driving.AnswerService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}

// Command perplexity-mcp is an MCP server exposing Perplexity AI web
// search to MCP-compatible AI assistants.
package main

import (
	"github.com/custodia-labs/perplexity-mcp/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}

// Package domain contains the core business entities and value objects
// for the Perplexity MCP bridge: the runtime configuration, query
// requests and results, and the error taxonomy shared across adapters.
package domain

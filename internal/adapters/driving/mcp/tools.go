package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// QueryInput is the input schema for the query_perplexity tool.
type QueryInput struct {
	Message       string  `json:"message" jsonschema:"the question or prompt to send to Perplexity AI"`
	Model         string  `json:"model,omitempty" jsonschema:"model to use: sonar, sonar-pro, or sonar-reasoning (default from configuration)"`
	MaxTokens     int     `json:"max_tokens,omitempty" jsonschema:"maximum tokens in the response, 1-4000 (default 1000)"`
	Temperature   float64 `json:"temperature,omitempty" jsonschema:"response randomness between 0 and 2 (default 0.7)"`
	SystemMessage string  `json:"system_message,omitempty" jsonschema:"optional system message to set context"`
}

// SearchInput is the input schema for the search_perplexity tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query"`
}

// QueryOutput is the structured output schema shared by both tools.
type QueryOutput struct {
	Answer    string       `json:"answer"`
	Model     string       `json:"model"`
	Citations []string     `json:"citations,omitempty"`
	Usage     *UsageOutput `json:"usage,omitempty"`
}

// UsageOutput reports token accounting when the API provides it.
type UsageOutput struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "query_perplexity",
		Description: "Query Perplexity AI for information. This tool provides access to " +
			"real-time web search and AI-powered answers. " +
			"Use this for research, fact-checking, and getting current information.",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_perplexity",
		Description: "Quick web search using Perplexity AI with default settings. " +
			"Best for simple queries that need real-time information from the web.",
	}, s.handleSearch)
}

// handleQuery handles the full-parameter query tool.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	result, err := s.ports.Answer.Query(ctx, domain.QueryRequest{
		Message:       input.Message,
		Model:         input.Model,
		MaxTokens:     input.MaxTokens,
		Temperature:   input.Temperature,
		SystemMessage: input.SystemMessage,
	})
	if err != nil {
		return errorResult(err), QueryOutput{}, nil
	}

	return textResult(result.Render()), toOutput(result), nil
}

// handleSearch handles the simplified search tool.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	result, err := s.ports.Answer.SimpleQuery(ctx, input.Query)
	if err != nil {
		return errorResult(err), QueryOutput{}, nil
	}

	return textResult(result.Render()), toOutput(result), nil
}

func toOutput(result *domain.QueryResult) QueryOutput {
	output := QueryOutput{
		Answer:    result.Text,
		Model:     result.Model,
		Citations: result.Citations,
	}
	if result.Usage != nil {
		output.Usage = &UsageOutput{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		}
	}
	return output
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult downgrades a tool-execution failure to a readable error
// content result. Never a protocol fault.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: errorText(err)}},
		IsError: true,
	}
}

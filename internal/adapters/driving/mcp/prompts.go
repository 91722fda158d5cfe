package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
)

// Explanation levels accepted by the explain_concept prompt.
var explainLevels = []string{"beginner", "intermediate", "advanced"}

const defaultExplainLevel = "intermediate"

// registerPrompts registers all prompt templates with the MCP server.
func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "research_topic",
		Description: "Research a topic with detailed information and citations",
		Arguments: []*mcp.PromptArgument{
			{Name: "topic", Description: "The topic to research", Required: true},
		},
	}, s.handleResearchTopic)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "quick_fact_check",
		Description: "Quickly verify a fact or claim",
		Arguments: []*mcp.PromptArgument{
			{Name: "claim", Description: "The claim or fact to verify", Required: true},
		},
	}, s.handleQuickFactCheck)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "explain_concept",
		Description: "Get a detailed explanation of a concept",
		Arguments: []*mcp.PromptArgument{
			{Name: "concept", Description: "The concept to explain", Required: true},
			{Name: "level", Description: "Explanation level (beginner, intermediate, advanced)", Required: false},
		},
	}, s.handleExplainConcept)
}

// handleResearchTopic renders the research_topic template.
func (s *Server) handleResearchTopic(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	topic, err := requiredArg(req, "topic")
	if err != nil {
		return nil, err
	}

	return promptResult(
		fmt.Sprintf("Research information about %s", topic),
		fmt.Sprintf("Please provide detailed research about %s. Include key facts, recent developments, and reliable sources.", topic),
	), nil
}

// handleQuickFactCheck renders the quick_fact_check template.
func (s *Server) handleQuickFactCheck(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	claim, err := requiredArg(req, "claim")
	if err != nil {
		return nil, err
	}

	return promptResult(
		fmt.Sprintf("Verify the claim: %s", claim),
		fmt.Sprintf("Is this claim accurate: %s? Please verify with current information and sources.", claim),
	), nil
}

// handleExplainConcept renders the explain_concept template.
func (s *Server) handleExplainConcept(
	_ context.Context,
	req *mcp.GetPromptRequest,
) (*mcp.GetPromptResult, error) {
	concept, err := requiredArg(req, "concept")
	if err != nil {
		return nil, err
	}

	level := strings.TrimSpace(req.Params.Arguments["level"])
	if level == "" {
		level = defaultExplainLevel
	}
	if !validLevel(level) {
		return nil, &domain.ValidationError{
			Field:  "level",
			Reason: fmt.Sprintf("%q is not one of %s", level, strings.Join(explainLevels, ", ")),
		}
	}

	return promptResult(
		fmt.Sprintf("Explain %s at %s level", concept, level),
		fmt.Sprintf("Please explain %s at a %s level. Include examples and practical applications.", concept, level),
	), nil
}

func validLevel(level string) bool {
	for _, l := range explainLevels {
		if level == l {
			return true
		}
	}
	return false
}

// requiredArg fetches a required prompt argument, failing with a
// validation error when it is missing or blank.
func requiredArg(req *mcp.GetPromptRequest, name string) (string, error) {
	value := strings.TrimSpace(req.Params.Arguments[name])
	if value == "" {
		return "", &domain.ValidationError{Field: name, Reason: "required argument is missing"}
	}
	return value, nil
}

// promptResult wraps a rendered template into a single user message.
func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

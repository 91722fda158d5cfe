package domain

import (
	"fmt"
	"strings"
)

// Models accepted by the Perplexity chat-completions endpoint.
const (
	ModelSonar          = "sonar"
	ModelSonarPro       = "sonar-pro"
	ModelSonarReasoning = "sonar-reasoning"
)

// Parameter bounds for query requests.
const (
	MinMaxTokens   = 1
	MaxMaxTokens   = 4000
	MinTemperature = 0.0
	MaxTemperature = 2.0
)

// Models returns the closed set of legal model identifiers.
func Models() []string {
	return []string{ModelSonar, ModelSonarPro, ModelSonarReasoning}
}

// ValidModel reports whether model is in the legal set.
func ValidModel(model string) bool {
	switch model {
	case ModelSonar, ModelSonarPro, ModelSonarReasoning:
		return true
	}
	return false
}

// Config is the immutable runtime configuration. It is constructed once
// at startup by the config resolver and shared read-only by the client
// and services. Safe for concurrent use.
type Config struct {
	// APIKey is the Perplexity API credential (required).
	APIKey string

	// BaseURL is the API base URL.
	BaseURL string

	// Model is the default model identifier.
	Model string

	// MaxTokens is the default response token limit.
	MaxTokens int

	// Temperature is the default sampling temperature.
	Temperature float64
}

// QueryRequest is a single outbound query. Message is required; every
// other field falls back to the Config default when unset.
type QueryRequest struct {
	Message       string
	Model         string
	MaxTokens     int
	Temperature   float64
	SystemMessage string
}

// WithDefaults returns a copy of the request with unset fields filled
// from cfg. A zero temperature falls back to the configured default,
// matching the upstream API client behaviour.
func (r QueryRequest) WithDefaults(cfg Config) QueryRequest {
	if r.Model == "" {
		r.Model = cfg.Model
	}
	if r.MaxTokens == 0 {
		r.MaxTokens = cfg.MaxTokens
	}
	if r.Temperature == 0 {
		r.Temperature = cfg.Temperature
	}
	return r
}

// Validate checks the request against the declared argument shape:
// required fields present, enumerated fields within the legal set,
// numeric fields within bounds. Returns a *ValidationError naming the
// offending field.
func (r QueryRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	}
	if !ValidModel(r.Model) {
		return &ValidationError{
			Field:  "model",
			Reason: fmt.Sprintf("%q is not one of %s", r.Model, strings.Join(Models(), ", ")),
		}
	}
	if r.MaxTokens < MinMaxTokens || r.MaxTokens > MaxMaxTokens {
		return &ValidationError{
			Field:  "max_tokens",
			Reason: fmt.Sprintf("must be between %d and %d", MinMaxTokens, MaxMaxTokens),
		}
	}
	if r.Temperature < MinTemperature || r.Temperature > MaxTemperature {
		return &ValidationError{
			Field:  "temperature",
			Reason: fmt.Sprintf("must be between %g and %g", MinTemperature, MaxTemperature),
		}
	}
	return nil
}

// QueryResult is the answer to a single query. Created per call, never
// mutated after creation.
type QueryResult struct {
	// Text is the answer text.
	Text string

	// Model is the model identifier the API actually used.
	Model string

	// Citations are source references returned with the answer.
	Citations []string

	// Usage is the token accounting, when the API reports it.
	Usage *Usage
}

// Usage holds token counts for a single query.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Render formats the result as a single text block: the answer,
// a numbered citations section when citations are present, and a
// model footer.
func (r *QueryResult) Render() string {
	var b strings.Builder
	b.WriteString(r.Text)

	if len(r.Citations) > 0 {
		b.WriteString("\n\nCitations:\n")
		for i, c := range r.Citations {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, c)
		}
	}

	fmt.Fprintf(&b, "\n---\n*Model: %s*", r.Model)
	return b.String()
}

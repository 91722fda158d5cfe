// Package perplexity provides the outbound client for the Perplexity AI
// chat-completions API.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/perplexity-mcp/internal/core/domain"
	"github.com/custodia-labs/perplexity-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/perplexity-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchClient = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultTimeout = 30 * time.Second

	// pingMessage is the trivial payload used by Ping.
	pingMessage = "Hello"
)

// Client provides search operations against the Perplexity API.
// Safe for concurrent use; every call is an independent round trip.
type Client struct {
	client  *http.Client
	cfg     domain.Config
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the upstream request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Perplexity client from the resolved
// configuration. The configuration supplies the credential, base URL,
// and the defaults applied by SimpleQuery.
func NewClient(cfg domain.Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("perplexity: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{
		cfg:     cfg,
		timeout: DefaultTimeout,
		limiter: newLimiter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}

	return c, nil
}

// chatCompletionRequest is the /chat/completions request format.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// chatMessage is the chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the /chat/completions response format.
// Citations and usage are optional extensions Perplexity adds to the
// OpenAI-style body.
type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations,omitempty"`
	Usage     *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
}

// Query sends one chat-completion request. Unset request fields fall
// back to the configured defaults. Failures map to the domain error
// taxonomy: 401/403 auth, 429 rate limit, 5xx and malformed bodies
// upstream, deadline expiry timeout.
func (c *Client) Query(ctx context.Context, req domain.QueryRequest) (*domain.QueryResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("perplexity: waiting for rate limiter: %w", err)
	}

	req = req.WithDefaults(c.cfg)

	var messages []chatMessage
	if req.SystemMessage != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.SystemMessage})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Message})

	body := chatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("perplexity: marshal request: %w", err)
	}

	reqID := uuid.NewString()
	logger.Debug("[%s] POST %s/chat/completions model=%s max_tokens=%d", reqID, c.cfg.BaseURL, req.Model, req.MaxTokens)

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/chat/completions",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("perplexity: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		logger.Debug("[%s] transport failure: %v", reqID, err)
		return nil, wrapTransportError(err, c.timeout)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransportError(err, c.timeout)
	}

	if err := checkStatus(resp, respBody); err != nil {
		logger.Debug("[%s] API failure: %v", reqID, err)
		return nil, err
	}

	result, err := parseResult(respBody, req.Model)
	if err != nil {
		logger.Debug("[%s] parse failure: %v", reqID, err)
		return nil, err
	}

	if result.Usage != nil {
		logger.Debug("[%s] ok model=%s tokens=%d", reqID, result.Model, result.Usage.TotalTokens)
	} else {
		logger.Debug("[%s] ok model=%s", reqID, result.Model)
	}
	return result, nil
}

// SimpleQuery sends a query with all configuration defaults and no
// system message.
func (c *Client) SimpleQuery(ctx context.Context, message string) (*domain.QueryResult, error) {
	return c.Query(ctx, domain.QueryRequest{Message: message})
}

// Ping validates the API is reachable and the credential is valid by
// issuing a minimal query. Used for diagnostics only.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.SimpleQuery(ctx, pingMessage)
	return err
}

// checkStatus maps non-2xx responses to typed errors.
func checkStatus(resp *http.Response, body []byte) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{ResetAt: retryAfter(resp)}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(body),
	}
}

// errorMessage extracts the API error message from a failure body,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	return string(body)
}

// parseResult decodes a success body into a QueryResult. A body that
// is not well-formed or lacks the answer text is an upstream error.
func parseResult(body []byte, requestedModel string) (*domain.QueryResult, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response body: %v", domain.ErrUpstream, err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: response missing answer text", domain.ErrUpstream)
	}

	model := parsed.Model
	if model == "" {
		model = requestedModel
	}

	result := &domain.QueryResult{
		Text:      parsed.Choices[0].Message.Content,
		Model:     model,
		Citations: parsed.Citations,
	}
	if parsed.Usage != nil {
		result.Usage = &domain.Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			TotalTokens:      parsed.Usage.TotalTokens,
		}
	}
	return result, nil
}

package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	// DefaultModel is used when no model is configured.
	DefaultModel = "claude-3-5-sonnet-20241022"

	defaultTimeout = 15 * time.Second
)

// Corrections are short and must not invent content, hence the low
// temperature and tight token budget.
const (
	maxTokens   = 100
	temperature = 0.2
)

const systemPrompt = "You are a helpful assistant that corrects Indian names. " +
	"You also remove common titles from the names and if the name is a " +
	"single letter, you return it as is."

// AnthropicClient calls the Anthropic Messages API to correct a single name
// fragment. It is safe for concurrent use; requests share one rate limiter.
type AnthropicClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewAnthropicClient builds a client. requestsPerMinute bounds the outbound
// call rate; timeout bounds a single call (each defaults when non-positive).
func NewAnthropicClient(apiKey, model string, requestsPerMinute float64, timeout time.Duration, logger *slog.Logger) *AnthropicClient {
	if model == "" {
		model = DefaultModel
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AnthropicClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    anthropicMessagesURL,
		apiKey:     apiKey,
		model:      model,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerMinute/60.0), 1),
		logger:     logger,
	}
}

// Suggest asks the model for the corrected spelling of namePart.
func (c *AnthropicClient) Suggest(ctx context.Context, namePart string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	prompt := fmt.Sprintf("Correct the spelling of this Indian name: '%s'. "+
		"Only return the corrected name. No titles or explanations.", namePart)

	reqBody, err := json.Marshal(anthropicRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", anthropicVersion)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("anthropic API returned non-200 status",
			"status", resp.StatusCode,
			"body", truncate(string(body), 200),
		)
		return "", fmt.Errorf("anthropic API error (status %d)", resp.StatusCode)
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("anthropic API error: %s", parsed.Error.Message)
	}

	var suggestion string
	for _, block := range parsed.Content {
		if block.Type == "text" {
			suggestion = strings.TrimSpace(block.Text)
			break
		}
	}
	if suggestion == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("oracle suggestion",
		"input", namePart,
		"suggestion", suggestion,
		"duration", time.Since(start),
	)
	return suggestion, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

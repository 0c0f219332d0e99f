package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/ami-meeting-svc/pkg/config"
)

// ErrMalformedCompletion reports a JSON-mode completion whose content does
// not parse as JSON. It is never retried.
var ErrMalformedCompletion = errors.New("completion content is not valid JSON")

// StatusError reports a non-2xx response from the completion endpoint
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion endpoint returned status %d", e.StatusCode)
}

// OpenAIClient is a minimal client for OpenAI-compatible chat completion
// endpoints. Each call is stateless; retry state lives on the stack.
type OpenAIClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client

	// Retry policy: transient failures only (rate limiting, connection
	// failure, timeout), up to maxAttempts total, exponential backoff.
	initialInterval time.Duration
	maxInterval     time.Duration
	maxAttempts     uint64
}

// NewOpenAIClient creates a completion client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("OPENAI_API_URL")
		if base == "" {
			base = "https://api.openai.com"
		}
	}

	model := "gpt-4o-mini"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	timeout := 60 * time.Second
	if cfg != nil && cfg.RequestTimeout > 0 {
		timeout = cfg.RequestTimeout
	}

	return &OpenAIClient{
		apiKey:          apiKey,
		baseURL:         strings.TrimSuffix(base, "/"),
		model:           model,
		client:          &http.Client{Timeout: timeout},
		initialInterval: 1 * time.Second,
		maxInterval:     60 * time.Second,
		maxAttempts:     5,
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string              `json:"model,omitempty"`
	Messages       []map[string]string `json:"messages,omitempty"`
	ResponseFormat *ResponseFormat     `json:"response_format,omitempty"`
}

// ResponseFormat selects the completion output mode
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt to the completion endpoint and returns the
// assistant content. With jsonMode the response must be valid JSON after
// markdown fence stripping; anything else fails with ErrMalformedCompletion.
//
// Rate limiting (429), connection failures and timeouts are retried with
// exponential backoff for up to 5 attempts; the last error is returned
// unmodified when retries exhaust. Every other failure is permanent.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	reqBody := ChatRequest{
		Model:    c.model,
		Messages: []map[string]string{{"role": "user", "content": prompt}},
	}
	if jsonMode {
		reqBody.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/v1/chat/completions"

	var content string
	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			// Connection failure or timeout: transient
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return &StatusError{StatusCode: resp.StatusCode}
		}
		if resp.StatusCode >= 400 {
			// Auth failures, malformed requests, upstream faults: no retry
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode})
		}

		var cr ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode completion response: %w", err))
		}
		if len(cr.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from completion endpoint"))
		}

		content = cr.Choices[0].Message.Content
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialInterval
	bo.MaxInterval = c.maxInterval
	bo.MaxElapsedTime = 0

	if err := backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxAttempts-1), ctx)); err != nil {
		return "", err
	}

	if jsonMode {
		content = extractJSON(content)
		if !json.Valid([]byte(content)) {
			return "", ErrMalformedCompletion
		}
	}

	return content, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text.
// Some models wrap JSON-mode output in ``` fences despite instructions.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

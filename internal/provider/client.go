package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CompletionClient performs one chat-completion round trip against an
// OpenAI-compatible endpoint. Implementations must not retry; the router's
// contract is exactly one outbound request per Route call.
type CompletionClient interface {
	Complete(ctx context.Context, endpoint, apiKey string, req ChatRequest) (string, error)
}

const (
	// DefaultBaseURL is the built-in OpenRouter completions endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1/chat/completions"

	defaultTimeout = 120 * time.Second
	maxBodyBytes   = 10 * 1024 * 1024
)

// HTTPClientConfig configures the HTTP completion client.
type HTTPClientConfig struct {
	Timeout  time.Duration
	SiteURL  string // Optional: sent as HTTP-Referer for OpenRouter rankings
	SiteName string // Optional: sent as X-Title
}

// DefaultHTTPClientConfig returns sensible defaults.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:  defaultTimeout,
		SiteURL:  "https://vibecheck.ai",
		SiteName: "VibeCheck.ai",
	}
}

// HTTPClient is the real CompletionClient over net/http.
type HTTPClient struct {
	httpClient *http.Client
	siteURL    string
	siteName   string
	logger     *zap.Logger
}

// NewHTTPClient creates a client with default config.
func NewHTTPClient(logger *zap.Logger) *HTTPClient {
	return NewHTTPClientWithConfig(DefaultHTTPClientConfig(), logger)
}

// NewHTTPClientWithConfig creates a client with custom config.
func NewHTTPClientWithConfig(cfg HTTPClientConfig, logger *zap.Logger) *HTTPClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		siteURL:    cfg.SiteURL,
		siteName:   cfg.SiteName,
		logger:     logger,
	}
}

// Complete sends one chat-completion request and returns the first choice's
// content, trimmed. No retries: any failure surfaces to the caller.
func (c *HTTPClient) Complete(ctx context.Context, endpoint, apiKey string, reqBody ChatRequest) (string, error) {
	// Apply the client timeout when the context has no deadline of its own.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	start := time.Now()
	c.logger.Debug("dispatching completion",
		zap.String("endpoint", endpoint),
		zap.String("model", reqBody.Model),
		zap.Int("messages", len(reqBody.Messages)))

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", c.siteName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	c.logger.Info("completion finished",
		zap.String("model", reqBody.Model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(content)))
	return content, nil
}

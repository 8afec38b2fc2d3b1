// Package provider routes a chat request to one of the configured completion
// backends: the built-in OpenRouter endpoint, or a user-defined proxy matched
// by model ID. Backend failures are normalized into a single error type so
// the pipeline boundary can absorb them without inspecting transport details.
package provider

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vibecheck/internal/types"
)

// FailureKind classifies a routing failure.
type FailureKind string

const (
	// MissingCredentials means no credential is available for the selected
	// backend; detected before any network I/O.
	MissingCredentials FailureKind = "missing_credentials"
	// TransportFailure covers network errors, non-success statuses, and
	// malformed provider responses.
	TransportFailure FailureKind = "transport_failure"
)

// RouteError is the single normalized error type Route returns.
type RouteError struct {
	Kind FailureKind
	Err  error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("route: %s: %v", e.Kind, e.Err)
}

func (e *RouteError) Unwrap() error { return e.Err }

// AsRouteError unwraps err into a *RouteError if it is one.
func AsRouteError(err error) (*RouteError, bool) {
	var re *RouteError
	ok := errors.As(err, &re)
	return re, ok
}

// Options control one chat completion.
type Options struct {
	ModelID     string
	Temperature float64 // 0 means the default (0.7)
	MaxTokens   int     // 0 means the default (1000)
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
)

// Router selects the backend for a chat request and assembles the outbound
// payload. Settings are provided at construction; there is no ambient global.
type Router struct {
	settings types.Settings
	client   CompletionClient
	baseURL  string
	logger   *zap.Logger
}

// NewRouter creates a router over the given settings and completion client.
func NewRouter(settings types.Settings, client CompletionClient, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		settings: settings,
		client:   client,
		baseURL:  DefaultBaseURL,
		logger:   logger,
	}
}

// SetBaseURL overrides the built-in endpoint. Used by tests.
func (r *Router) SetBaseURL(u string) { r.baseURL = u }

// Preflight reports whether a Route call with opts would fail before any
// network I/O. It returns a *RouteError with Kind MissingCredentials when the
// built-in backend would be selected without a credential, and nil otherwise.
func (r *Router) Preflight(opts Options) error {
	if r.settings.ProxyByID(opts.ModelID) != nil {
		return nil
	}
	if r.settings.OpenRouterAPIKey == "" {
		return &RouteError{Kind: MissingCredentials, Err: errors.New("OpenRouter API key not set")}
	}
	return nil
}

// Route dispatches one chat request and returns the raw assistant text.
//
// The model ID is looked up among the configured custom proxies; a match
// redirects the request to the proxy's endpoint, key, and model name, and a
// non-empty proxy CustomPrompt replaces systemPrompt outright. An unmatched
// ID is treated as a built-in model ID verbatim. Exactly one outbound request
// is made; there are no retries. Every failure comes back as a *RouteError.
func (r *Router) Route(ctx context.Context, userText string, history []types.Message, opts Options, systemPrompt string) (string, error) {
	endpoint := r.baseURL
	apiKey := r.settings.OpenRouterAPIKey
	model := opts.ModelID

	if proxy := r.settings.ProxyByID(opts.ModelID); proxy != nil {
		endpoint = proxy.Endpoint
		apiKey = proxy.APIKey
		model = proxy.ModelName
		if proxy.CustomPrompt != "" {
			systemPrompt = proxy.CustomPrompt
		}
		r.logger.Debug("routing via custom proxy",
			zap.String("proxy_id", proxy.ID),
			zap.String("endpoint", proxy.Endpoint),
			zap.String("model", proxy.ModelName))
	} else {
		// Built-in routing requires the OpenRouter credential. Proxies may
		// legitimately run keyless, so the check applies only here.
		if apiKey == "" {
			return "", &RouteError{Kind: MissingCredentials, Err: errors.New("OpenRouter API key not set")}
		}
		r.logger.Debug("routing via built-in provider", zap.String("model", model))
	}

	req := ChatRequest{
		Model:       model,
		Messages:    buildMessages(systemPrompt, history, userText),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	if req.Temperature == 0 {
		req.Temperature = defaultTemperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}

	content, err := r.client.Complete(ctx, endpoint, apiKey, req)
	if err != nil {
		r.logger.Error("completion dispatch failed", zap.String("model", model), zap.Error(err))
		return "", &RouteError{Kind: TransportFailure, Err: err}
	}
	return content, nil
}

// buildMessages assembles the outbound conversation: system prompt first,
// then prior turns in log order, then the new user message.
func buildMessages(systemPrompt string, history []types.Message, userText string) []ChatMessage {
	msgs := make([]ChatMessage, 0, len(history)+2)
	msgs = append(msgs, ChatMessage{Role: string(types.RoleSystem), Content: systemPrompt})
	for _, m := range history {
		role := string(types.RoleAssistant)
		if m.Role == types.RoleUser {
			role = string(types.RoleUser)
		}
		msgs = append(msgs, ChatMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, ChatMessage{Role: string(types.RoleUser), Content: userText})
	return msgs
}

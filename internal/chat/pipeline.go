// Package chat orchestrates one user message into one assistant message:
// mood classification, provider routing, suggestion extraction, and message
// assembly. The pipeline boundary absorbs every upstream failure into a
// fixed apology message; Generate never fails.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibecheck/internal/catalog"
	"vibecheck/internal/mood"
	"vibecheck/internal/provider"
	"vibecheck/internal/suggest"
	"vibecheck/internal/types"
)

// ApologyMessage is the fixed content of the synthetic assistant message
// returned when the provider call fails.
const ApologyMessage = "I apologize, but I encountered an error while processing your message. Please check your API settings or try again later."

// Pipeline turns user text into an assistant Message.
type Pipeline struct {
	router *provider.Router
	logger *zap.Logger
}

// NewPipeline creates a pipeline over the given router.
func NewPipeline(router *provider.Router, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{router: router, logger: logger}
}

// Generate produces the assistant reply for userText given the prior
// conversation. The returned message carries the mood detected from the USER
// text (not re-derived from the reply) and the suggestions extracted from the
// raw reply. On any routing failure it returns the apology message instead;
// this path never panics and never surfaces an error.
func (p *Pipeline) Generate(ctx context.Context, userText string, history []types.Message, opts provider.Options) types.Message {
	detected := mood.Classify(userText)
	p.logger.Debug("classified user mood",
		zap.String("mood", string(detected)),
		zap.Int("text_len", len(userText)))

	raw, err := p.router.Route(ctx, userText, history, opts, SystemPrompt(detected))
	if err != nil {
		if re, ok := provider.AsRouteError(err); ok {
			p.logger.Warn("routing failed, returning apology",
				zap.String("kind", string(re.Kind)),
				zap.Error(re.Err))
		} else {
			p.logger.Warn("routing failed, returning apology", zap.Error(err))
		}
		return types.Message{
			ID:        uuid.NewString(),
			Role:      types.RoleAssistant,
			Content:   ApologyMessage,
			Timestamp: time.Now(),
		}
	}

	res := suggest.Extract(raw)
	if res.Suggestions == nil {
		p.logger.Debug("no suggestion block in reply", zap.Int("raw_len", len(raw)))
	}
	// Music suggestions without a preview get one from the static catalog.
	for i, s := range res.Suggestions {
		res.Suggestions[i] = catalog.Backfill(s)
	}

	return types.Message{
		ID:          uuid.NewString(),
		Role:        types.RoleAssistant,
		Content:     res.CleanedText,
		Timestamp:   time.Now(),
		Mood:        detected,
		Suggestions: res.Suggestions,
	}
}

// Preflight reports the configuration error that would block a send with the
// given options, without touching the network. The CLI uses it to surface
// missing credentials before dispatch.
func (p *Pipeline) Preflight(opts provider.Options) error {
	return p.router.Preflight(opts)
}

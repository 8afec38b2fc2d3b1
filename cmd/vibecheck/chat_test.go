package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vibecheck/internal/chat"
	"vibecheck/internal/provider"
	"vibecheck/internal/session"
	"vibecheck/internal/types"
	"vibecheck/internal/ux"
)

// scriptedClient plays back canned replies in order.
type scriptedClient struct {
	replies []string
	calls   int
}

func (c *scriptedClient) Complete(_ context.Context, _, _ string, _ provider.ChatRequest) (string, error) {
	reply := c.replies[c.calls%len(c.replies)]
	c.calls++
	return reply, nil
}

func newTestApp(client provider.CompletionClient) *chatApp {
	return &chatApp{
		settings: types.Settings{OpenRouterAPIKey: "sk-test", DefaultModel: "gpt-4"},
		client:   client,
		log:      chat.NewLog(),
		tracker:  session.NewTracker(session.Config{}),
		render:   ux.NewRenderer(),
		logger:   zap.NewNop(),
	}
}

func TestSendStartsSessionFromLoggedReply(t *testing.T) {
	app := newTestApp(&scriptedClient{replies: []string{
		"Try this.\n```json\n[{\"type\":\"action\",\"label\":\"Box breathing\",\"minutes\":2}]\n```",
	}})
	defer app.tracker.Close()

	app.send(context.Background(), "wound up today")

	require.Equal(t, 2, app.log.Len())
	latest, ok := app.log.LatestAssistant()
	require.True(t, ok)
	assert.Equal(t, "Try this.", latest.Content)

	snap := app.tracker.Snapshot()
	assert.Equal(t, session.ModeRunning, snap.Mode)
	assert.Equal(t, "Box breathing", snap.Title)
}

func TestSendWithoutSuggestionKeepsSession(t *testing.T) {
	app := newTestApp(&scriptedClient{replies: []string{
		"Go on.\n```json\n[{\"type\":\"action\",\"label\":\"Box breathing\",\"minutes\":2}]\n```",
		"Just words this time.",
	}})
	defer app.tracker.Close()

	app.send(context.Background(), "first")
	started := app.tracker.Snapshot().SessionID

	app.send(context.Background(), "second")

	snap := app.tracker.Snapshot()
	assert.Equal(t, session.ModeRunning, snap.Mode)
	assert.Equal(t, started, snap.SessionID)
}

func TestSendBlockedWithoutCredentials(t *testing.T) {
	app := newTestApp(&scriptedClient{replies: []string{"never sent"}})
	app.settings.OpenRouterAPIKey = ""
	defer app.tracker.Close()

	app.send(context.Background(), "hello")

	assert.Zero(t, app.log.Len())
	assert.Equal(t, session.ModeIdle, app.tracker.Snapshot().Mode)
}

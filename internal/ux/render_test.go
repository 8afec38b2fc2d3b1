package ux

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vibecheck/internal/session"
	"vibecheck/internal/types"
)

func TestAssistantClampsSuggestions(t *testing.T) {
	r := NewRenderer()
	msg := types.Message{
		Role:    types.RoleAssistant,
		Content: "here you go",
		Mood:    types.MoodCalm,
		Suggestions: []types.Suggestion{
			{Type: types.SuggestionQuote, Text: "first"},
			{Type: types.SuggestionQuote, Text: "second"},
			{Type: types.SuggestionQuote, Text: "third"},
		},
	}

	out := r.Assistant(msg)
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "third")
	assert.Contains(t, out, "mood: calm")
}

func TestAssistantWithoutMoodOmitsBadge(t *testing.T) {
	r := NewRenderer()
	out := r.Assistant(types.Message{Role: types.RoleAssistant, Content: "sorry"})
	assert.NotContains(t, out, "mood:")
}

func TestSuggestionCardVariants(t *testing.T) {
	r := NewRenderer()

	music := r.SuggestionCard(types.Suggestion{Type: types.SuggestionMusic, Title: "Midnight Window", Subtitle: "Lofi • 1.6 min"})
	assert.Contains(t, music, "Midnight Window")
	assert.Contains(t, music, "1.6 min")

	quote := r.SuggestionCard(types.Suggestion{Type: types.SuggestionQuote, Text: "Keep going", Author: "Anon"})
	assert.Contains(t, quote, "Keep going")
	assert.Contains(t, quote, "Anon")

	book := r.SuggestionCard(types.Suggestion{Type: types.SuggestionBook, Title: "Wintering", Year: "2020", Note: "gentle"})
	assert.Contains(t, book, "Wintering")
	assert.Contains(t, book, "2020")

	action := r.SuggestionCard(types.Suggestion{Type: types.SuggestionAction, Label: "Box breathing", Minutes: 3})
	assert.Contains(t, action, "Box breathing")
	assert.Contains(t, action, "3 min")
}

func TestSessionCardRunning(t *testing.T) {
	r := NewRenderer()
	out := r.SessionCard(session.Session{
		Mode:     session.ModeRunning,
		Title:    "Box breathing",
		Subtitle: "stay with it",
		Progress: 0.5,
		ETALabel: "01:00",
		Duration: 2 * time.Minute,
	})

	assert.Contains(t, out, "session active")
	assert.Contains(t, out, "Box breathing")
	assert.Contains(t, out, "stay with it")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "01:00 remaining")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "░")
}

func TestSessionCardFeatureBadges(t *testing.T) {
	r := NewRenderer()

	ritual := r.SessionCard(session.Session{Mode: session.ModeRunning, Title: "Reset", HasRitual: true})
	assert.Contains(t, ritual, "ritual")
	assert.NotContains(t, ritual, "music")

	music := r.SessionCard(session.Session{Mode: session.ModeRunning, Title: "Loop", HasMusic: true})
	assert.Contains(t, music, "music")
	assert.NotContains(t, music, "ritual")

	neither := r.SessionCard(session.Session{Mode: session.ModeIdle, Title: session.IdleTitle})
	assert.NotContains(t, neither, "music")
	assert.NotContains(t, neither, "ritual")
}

func TestSessionCardIdle(t *testing.T) {
	r := NewRenderer()
	out := r.SessionCard(session.Session{Mode: session.ModeIdle, Title: session.IdleTitle})
	assert.Contains(t, out, session.IdleTitle)
}

func TestUserLine(t *testing.T) {
	r := NewRenderer()
	assert.Contains(t, r.User(types.Message{Role: types.RoleUser, Content: "hello there"}), "hello there")
}

func TestProgressBarBounds(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("░", 10)+"]", progressBar(-0.5, 10))
	assert.Equal(t, "["+strings.Repeat("█", 10)+"]", progressBar(1.5, 10))
	assert.Equal(t, "["+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"]", progressBar(0.5, 10))
}

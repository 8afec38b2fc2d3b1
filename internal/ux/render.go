// Package ux renders chat messages, suggestion cards, and the session card
// for the terminal. Presentation policy lives here — in particular the rule
// that at most two suggestions are shown even when extraction returned more.
package ux

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"vibecheck/internal/session"
	"vibecheck/internal/types"
)

// MaxVisibleSuggestions caps how many suggestions are rendered per message.
// The extractor hands over the full validated list; the cut happens here.
const MaxVisibleSuggestions = 2

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true)

	moodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2a3850")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	cardMetaStyle  = lipgloss.NewStyle().Faint(true)

	statusRunning   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	statusPaused    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true)
	statusCompleted = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true)
	statusIdle      = lipgloss.NewStyle().Faint(true)

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

// Renderer draws messages and cards. Assistant prose goes through glamour so
// the model's markdown (italics for emphasis, links) survives the terminal.
type Renderer struct {
	markdown *glamour.TermRenderer
}

// NewRenderer builds a renderer with auto-detected terminal styling.
func NewRenderer() *Renderer {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	return &Renderer{markdown: r}
}

// User renders a user message line.
func (r *Renderer) User(msg types.Message) string {
	return userStyle.Render("you") + "  " + msg.Content
}

// Assistant renders an assistant message: mood badge, markdown prose, and up
// to MaxVisibleSuggestions suggestion cards.
func (r *Renderer) Assistant(msg types.Message) string {
	var b strings.Builder

	if msg.Mood != "" {
		b.WriteString(moodStyle.Render(fmt.Sprintf("mood: %s", msg.Mood)))
		b.WriteString("\n")
	}
	b.WriteString(r.prose(msg.Content))

	sugs := msg.Suggestions
	if len(sugs) > MaxVisibleSuggestions {
		sugs = sugs[:MaxVisibleSuggestions]
	}
	for _, s := range sugs {
		b.WriteString("\n")
		b.WriteString(r.SuggestionCard(s))
	}
	return b.String()
}

// SuggestionCard renders one suggestion as a bordered card.
func (r *Renderer) SuggestionCard(s types.Suggestion) string {
	var title, meta string
	switch s.Type {
	case types.SuggestionMusic:
		title = "♪ " + s.Title
		meta = s.Subtitle
	case types.SuggestionQuote:
		title = "“" + s.Text + "”"
		if s.Author != "" {
			meta = "— " + s.Author
		}
	case types.SuggestionMovie, types.SuggestionSeries, types.SuggestionBook:
		title = s.Title
		meta = strings.TrimSpace(strings.Join([]string{s.Year, s.Note}, " "))
	case types.SuggestionAction:
		title = "▶ " + s.Label
		if s.Minutes > 0 {
			meta = fmt.Sprintf("%d min", s.Minutes)
		}
	default:
		title = string(s.Type)
	}

	body := cardTitleStyle.Render(title)
	if meta != "" {
		body += "\n" + cardMetaStyle.Render(meta)
	}
	return cardStyle.Render(body)
}

// SessionCard renders the active session state: status line, title, subtitle,
// progress bar, percent, and the mm:ss countdown.
func (r *Renderer) SessionCard(s session.Session) string {
	var status string
	switch s.Mode {
	case session.ModeRunning:
		status = statusRunning.Render("● session active")
	case session.ModePaused:
		status = statusPaused.Render("● session paused")
	case session.ModeCompleted:
		status = statusCompleted.Render("● session complete")
	default:
		status = statusIdle.Render("○ " + session.IdleTitle)
	}

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(cardTitleStyle.Render(s.Title))
	if s.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(s.Subtitle))
	}
	if badges := featureBadges(s); badges != "" {
		b.WriteString("\n")
		b.WriteString(cardMetaStyle.Render(badges))
	}
	b.WriteString("\n")
	b.WriteString(progressBar(s.Progress, 24))
	b.WriteString(fmt.Sprintf(" %3.0f%%  %s remaining", s.Progress*100, s.ETALabel))
	return cardStyle.Render(b.String())
}

// Error renders a user-facing error line.
func (r *Renderer) Error(err error) string {
	return errStyle.Render("error: " + err.Error())
}

func (r *Renderer) prose(content string) string {
	if r.markdown == nil {
		return content
	}
	out, err := r.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

// featureBadges labels what the session carries: a guided ritual, an audio
// track, or both.
func featureBadges(s session.Session) string {
	var badges []string
	if s.HasRitual {
		badges = append(badges, "▶ ritual")
	}
	if s.HasMusic {
		badges = append(badges, "♪ music")
	}
	return strings.Join(badges, "  ")
}

func progressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Package types defines the shared data model for the vibecheck core:
// chat messages, the suggestion tagged union, mood tags, provider
// configuration, and the track catalog entry.
package types

import (
	"fmt"
	"time"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// MoodTag is one label from the fixed mood enumeration.
type MoodTag string

const (
	MoodHappy         MoodTag = "happy"
	MoodSad           MoodTag = "sad"
	MoodAngry         MoodTag = "angry"
	MoodAnxious       MoodTag = "anxious"
	MoodCalm          MoodTag = "calm"
	MoodEnergetic     MoodTag = "energetic"
	MoodContemplative MoodTag = "contemplative"
	MoodJoyful        MoodTag = "joyful"
	MoodMelancholy    MoodTag = "melancholy"
	MoodNeutral       MoodTag = "neutral"
)

// Message is one entry in the conversation log. Messages are immutable once
// created; the log only grows (or is cleared wholesale).
type Message struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Content     string       `json:"content"`
	Timestamp   time.Time    `json:"timestamp"`
	Mood        MoodTag      `json:"mood,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// SuggestionType discriminates the Suggestion union.
type SuggestionType string

const (
	SuggestionMusic  SuggestionType = "music"
	SuggestionQuote  SuggestionType = "quote"
	SuggestionMovie  SuggestionType = "movie"
	SuggestionSeries SuggestionType = "series"
	SuggestionBook   SuggestionType = "book"
	SuggestionAction SuggestionType = "action"
)

// Suggestion is a structured recommendation embedded in an assistant reply.
// It is a tagged union over SuggestionType; which fields are meaningful
// depends on Type, and Validate enforces the required ones per variant.
type Suggestion struct {
	Type SuggestionType `json:"type"`

	// music / movie / series / book
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"` // music: "Artist • genre", may carry a duration hint
	Link     string `json:"link,omitempty"`
	// music only
	PreviewURL string `json:"previewUrl,omitempty"`
	Mood       string `json:"mood,omitempty"`
	// movie / series / book
	Note string `json:"note,omitempty"`
	Year string `json:"year,omitempty"`

	// quote
	Text   string `json:"text,omitempty"`
	Author string `json:"author,omitempty"`

	// action
	Label   string `json:"label,omitempty"`
	Minutes int    `json:"minutes,omitempty"`
	ID      string `json:"id,omitempty"`
}

// Validate checks that the suggestion carries the required fields for its
// declared type. A suggestion failing validation is rejected whole, never
// partially accepted.
func (s Suggestion) Validate() error {
	switch s.Type {
	case SuggestionMusic:
		if s.Title == "" {
			return fmt.Errorf("music suggestion missing title")
		}
	case SuggestionQuote:
		if s.Text == "" {
			return fmt.Errorf("quote suggestion missing text")
		}
	case SuggestionMovie, SuggestionSeries, SuggestionBook:
		if s.Title == "" {
			return fmt.Errorf("%s suggestion missing title", s.Type)
		}
	case SuggestionAction:
		if s.Label == "" {
			return fmt.Errorf("action suggestion missing label")
		}
	default:
		return fmt.Errorf("unknown suggestion type %q", s.Type)
	}
	return nil
}

// CustomProxy is a user-defined completion backend. When a chat request names
// a proxy's ID as its model, the proxy's endpoint, key, and model name become
// the actual dispatch target.
type CustomProxy struct {
	ID           string   `yaml:"id" json:"id"`
	ConfigName   string   `yaml:"config_name" json:"configName"`
	ModelName    string   `yaml:"model_name" json:"modelName"`
	Endpoint     string   `yaml:"endpoint" json:"endpoint"`
	APIKey       string   `yaml:"api_key,omitempty" json:"apiKey,omitempty"`
	CustomPrompt string   `yaml:"custom_prompt,omitempty" json:"customPrompt,omitempty"`
	Provider     string   `yaml:"provider" json:"provider"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	Features     []string `yaml:"features,omitempty" json:"features,omitempty"`
}

// Settings is the persisted provider configuration. It is passed explicitly
// into the router and pipeline; nothing reads it through a global.
type Settings struct {
	OpenRouterAPIKey string        `yaml:"openrouter_api_key"`
	DefaultModel     string        `yaml:"default_model"`
	CustomProxies    []CustomProxy `yaml:"custom_proxies"`
}

// ProxyByID returns the custom proxy with the given ID, or nil.
func (s Settings) ProxyByID(id string) *CustomProxy {
	for i := range s.CustomProxies {
		if s.CustomProxies[i].ID == id {
			return &s.CustomProxies[i]
		}
	}
	return nil
}

// Track is one entry of the static audio catalog used to back music
// suggestions when the model supplies none.
type Track struct {
	ID       string
	Title    string
	Category string
	Mood     []string
	Tags     []string
	URL      string
	Length   int // seconds
}

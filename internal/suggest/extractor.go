// Package suggest extracts the structured suggestion payload embedded in an
// assistant reply.
//
// Micro-grammar: a suggestion block is a fenced region of the form
//
//	```json
//	[ ...suggestion objects... ]
//	```
//
// Exactly one block is honored — the first occurrence in the text. The
// cleaned-text pass removes EVERY such block, not just the first, so stray
// duplicates never leak into the display text. Extraction is total: parse or
// shape failures degrade to a nil suggestion list with the prose preserved.
package suggest

import (
	"encoding/json"
	"regexp"
	"strings"

	"vibecheck/internal/types"
)

// MaxCleanedLen bounds the cleaned display text. The generator is asked for a
// main message of at most 280 characters but is only loosely constrained, so
// the bound carries slack before the defensive cut kicks in.
const MaxCleanedLen = 280 + 72

var fenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// Result is the outcome of extracting suggestions from one raw reply.
// Suggestions is nil when no valid block was found.
type Result struct {
	CleanedText string
	Suggestions []types.Suggestion
}

// Extract splits raw assistant text into display prose and a validated
// suggestion list. It never panics and never returns an error; every failure
// mode degrades to Suggestions == nil with the remaining text intact.
func Extract(raw string) Result {
	return Result{
		CleanedText: Clean(raw),
		Suggestions: Parse(raw),
	}
}

// Parse returns the suggestions of the first fenced block in raw, or nil if
// no block exists, the block is not a JSON array, or any element fails
// validation for its declared type. Elements are rejected whole, never
// partially accepted.
func Parse(raw string) []types.Suggestion {
	m := fenceRe.FindStringSubmatch(raw)
	if m == nil {
		return nil
	}

	var list []types.Suggestion
	if err := json.Unmarshal([]byte(m[1]), &list); err != nil {
		return nil
	}
	if len(list) == 0 {
		return nil
	}
	for _, s := range list {
		if err := s.Validate(); err != nil {
			return nil
		}
	}
	return list
}

// Clean removes every fenced suggestion block from raw, trims the remainder,
// and applies the defensive length bound.
func Clean(raw string) string {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
	return truncate(cleaned, MaxCleanedLen)
}

// truncate cuts s to max-1 runes and appends a single ellipsis glyph when s
// exceeds max runes. Shorter input passes through untouched.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// Package catalog holds the static audio track table backing music
// suggestions when the model supplies none of its own.
package catalog

import (
	"fmt"
	"strings"

	"vibecheck/internal/types"
)

// Tracks is the built-in catalog, grouped loosely by category.
var Tracks = []types.Track{
	{
		ID:       "ground_pad_60",
		Title:    "Grounding Pad (60 BPM)",
		Category: "grounding",
		Mood:     []string{"calm", "centered"},
		Tags:     []string{"breathwork", "reset", "relax"},
		URL:      "/audio/tunetank.com_831_ocean-breeze_by_enrize.mp3",
		Length:   90,
	},
	{
		ID:       "slow_air_glide",
		Title:    "Slow Air Glide",
		Category: "grounding",
		Mood:     []string{"calm"},
		Tags:     []string{"breath", "soothing"},
		URL:      "/audio/tunetank.com_5823_science-research_by_decibel.mp3",
		Length:   120,
	},
	{
		ID:       "lofi_soft_keys_1",
		Title:    "Soft Keys Lofi Loop",
		Category: "lofi",
		Mood:     []string{"calm", "comfort"},
		Tags:     []string{"relax", "study"},
		URL:      "/audio/tunetank.com_5808_coffee-time_by_pure.mp3",
		Length:   75,
	},
	{
		ID:       "lofi_midnight",
		Title:    "Midnight Window",
		Category: "lofi",
		Mood:     []string{"calm", "reflective"},
		Tags:     []string{"journaling", "night"},
		URL:      "/audio/tunetank.com_5937_calm-lake_by_finval.mp3",
		Length:   95,
	},
	{
		ID:       "focus_brown_noise",
		Title:    "Deep Focus (Brown Noise)",
		Category: "focus",
		Mood:     []string{"focus"},
		Tags:     []string{"work", "deepfocus", "noise"},
		URL:      "/audio/tunetank.com_3231_morning-fog_by_finval.mp3",
		Length:   300,
	},
	{
		ID:       "pulse_focus_80",
		Title:    "Pulse Loop (80 BPM)",
		Category: "focus",
		Mood:     []string{"focus", "steady"},
		Tags:     []string{"micro-reset", "flow"},
		URL:      "/audio/tunetank.com_202_new-opportunities_by_motion-productions.mp3",
		Length:   120,
	},
	{
		ID:       "uplift_chimes",
		Title:    "Uplift Chimes",
		Category: "uplift",
		Mood:     []string{"energize", "fresh"},
		Tags:     []string{"reset", "bounce"},
		URL:      "/audio/tunetank.com_4109_good-morning_by_rocknstock.mp3",
		Length:   60,
	},
	{
		ID:       "bright_shift",
		Title:    "Bright Shift",
		Category: "uplift",
		Mood:     []string{"light", "positive"},
		Tags:     []string{"reward", "break"},
		URL:      "/audio/tunetank.com_1218_indie-music_by_rocknstock.mp3",
		Length:   70,
	},
	{
		ID:       "deep_mono_pad",
		Title:    "Deep Mono Pad",
		Category: "night",
		Mood:     []string{"sleep", "relax"},
		Tags:     []string{"low", "warm"},
		URL:      "/audio/tunetank.com_6449_good-night_by_ostin.mp3",
		Length:   150,
	},
	{
		ID:       "dream_oscillations",
		Title:    "Dream Oscillations",
		Category: "night",
		Mood:     []string{"dreamy", "soft"},
		Tags:     []string{"night", "dream"},
		URL:      "/audio/tunetank.com_6705_night-city_by_musicstockproduction.mp3",
		Length:   160,
	},
}

// moodAliases widens a mood tag into the catalog vocabulary it should match.
var moodAliases = map[string][]string{
	"happy":         {"light", "positive", "energize", "fresh"},
	"sad":           {"calm", "comfort", "relax", "grounding"},
	"angry":         {"calm", "centered", "grounding"},
	"anxious":       {"calm", "centered", "focus", "relax"},
	"calm":          {"calm", "night", "comfort"},
	"energetic":     {"energize", "focus", "steady"},
	"contemplative": {"reflective", "dreamy", "soft", "lofi"},
	"joyful":        {"light", "positive", "energize"},
	"melancholy":    {"dreamy", "soft", "night", "calm"},
	"neutral":       {"calm", "focus", "light"},
}

// categoryOrder fixes the fallback ordering when no track matches the mood.
var categoryOrder = []string{"grounding", "lofi", "focus", "uplift", "night"}

// TrackSuggestions picks up to limit music suggestions for the given mood.
// Mood-matched tracks come first; the category-ordered catalog fills the
// remainder. The result is never empty for limit > 0 since the catalog
// itself is non-empty.
func TrackSuggestions(mood string, limit int) []types.Suggestion {
	if limit <= 0 {
		return nil
	}

	normalized := strings.ToLower(strings.TrimSpace(mood))
	if normalized == "" {
		normalized = "neutral"
	}
	aliases := map[string]bool{normalized: true}
	for _, a := range moodAliases[normalized] {
		aliases[a] = true
	}

	var pool []types.Track
	seen := map[string]bool{}
	add := func(t types.Track) {
		if !seen[t.ID] {
			seen[t.ID] = true
			pool = append(pool, t)
		}
	}

	for _, t := range Tracks {
		if matchesAliases(t, aliases) {
			add(t)
		}
	}
	for _, cat := range categoryOrder {
		for _, t := range Tracks {
			if t.Category == cat {
				add(t)
			}
		}
	}

	out := make([]types.Suggestion, 0, limit)
	for _, t := range pool {
		out = append(out, types.Suggestion{
			Type:       types.SuggestionMusic,
			Title:      t.Title,
			Subtitle:   fmt.Sprintf("%s • %s", titleCase(t.Category), formatLength(t.Length)),
			PreviewURL: t.URL,
			Link:       t.URL,
			Mood:       t.Mood[0],
		})
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Backfill fills a music suggestion's missing preview URL from the catalog,
// matched by the suggestion's mood. Non-music suggestions pass through.
func Backfill(s types.Suggestion) types.Suggestion {
	if s.Type != types.SuggestionMusic || s.PreviewURL != "" {
		return s
	}
	if picks := TrackSuggestions(s.Mood, 1); len(picks) > 0 {
		s.PreviewURL = picks[0].PreviewURL
		if s.Link == "" {
			s.Link = picks[0].Link
		}
	}
	return s
}

func matchesAliases(t types.Track, aliases map[string]bool) bool {
	for _, m := range t.Mood {
		if aliases[m] {
			return true
		}
	}
	for _, tag := range t.Tags {
		if aliases[tag] {
			return true
		}
	}
	return aliases[t.Category]
}

// formatLength renders seconds the way subtitles carry duration hints:
// whole or one-decimal minutes at or above a minute, otherwise seconds.
func formatLength(seconds int) string {
	if seconds >= 60 {
		if seconds%60 == 0 {
			return fmt.Sprintf("%d min", seconds/60)
		}
		return fmt.Sprintf("%.1f min", float64(seconds)/60)
	}
	return fmt.Sprintf("%ds", seconds)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

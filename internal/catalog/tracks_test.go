package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecheck/internal/session"
	"vibecheck/internal/types"
)

func TestTrackSuggestionsMoodMatchFirst(t *testing.T) {
	got := TrackSuggestions("anxious", 3)
	require.Len(t, got, 3)

	// anxious aliases to calm/centered/focus/relax; the grounding pad
	// matches on both mood and tags and leads the catalog order.
	assert.Equal(t, "Grounding Pad (60 BPM)", got[0].Title)
	for _, s := range got {
		assert.Equal(t, types.SuggestionMusic, s.Type)
		assert.NotEmpty(t, s.PreviewURL)
		assert.NotEmpty(t, s.Subtitle)
	}
}

func TestTrackSuggestionsUnknownMoodFallsBack(t *testing.T) {
	got := TrackSuggestions("bewildered", 2)
	require.Len(t, got, 2)

	// no alias matches, so the category order decides
	assert.Equal(t, "Grounding Pad (60 BPM)", got[0].Title)
	assert.Equal(t, "Slow Air Glide", got[1].Title)
}

func TestTrackSuggestionsEmptyMoodTreatedNeutral(t *testing.T) {
	assert.Equal(t, TrackSuggestions("neutral", 2), TrackSuggestions("  ", 2))
}

func TestTrackSuggestionsLimit(t *testing.T) {
	assert.Nil(t, TrackSuggestions("calm", 0))
	assert.Len(t, TrackSuggestions("calm", 1), 1)
	// limit above catalog size caps at the catalog
	assert.Len(t, TrackSuggestions("calm", 50), len(Tracks))
}

func TestTrackSuggestionsNoDuplicates(t *testing.T) {
	got := TrackSuggestions("calm", len(Tracks))
	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.Title], "duplicate track %q", s.Title)
		seen[s.Title] = true
	}
}

func TestSubtitleCarriesParseableDuration(t *testing.T) {
	for _, s := range TrackSuggestions("neutral", len(Tracks)) {
		d, ok := session.ParseDurationHint(s.Subtitle)
		assert.True(t, ok, "subtitle %q has no duration hint", s.Subtitle)
		assert.Positive(t, d)
	}
}

func TestBackfillMusicPreview(t *testing.T) {
	got := Backfill(types.Suggestion{Type: types.SuggestionMusic, Title: "Anything", Mood: "calm"})
	assert.NotEmpty(t, got.PreviewURL)
	assert.NotEmpty(t, got.Link)
}

func TestBackfillKeepsExistingPreview(t *testing.T) {
	in := types.Suggestion{Type: types.SuggestionMusic, Title: "Anything", PreviewURL: "/audio/mine.mp3"}
	assert.Equal(t, in, Backfill(in))
}

func TestBackfillIgnoresNonMusic(t *testing.T) {
	in := types.Suggestion{Type: types.SuggestionQuote, Text: "Hi"}
	assert.Equal(t, in, Backfill(in))
}

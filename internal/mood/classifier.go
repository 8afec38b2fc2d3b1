// Package mood maps free text to one mood tag via an ordered keyword rule
// table. Classification is deterministic and total: any input, including the
// empty string, yields exactly one tag.
package mood

import (
	"regexp"

	"vibecheck/internal/types"
)

// rule pairs a mood with its keyword alternation. Rules are evaluated in
// order and the first match wins, so earlier moods shadow later ones.
type rule struct {
	mood    types.MoodTag
	pattern *regexp.Regexp
}

var rules = []rule{
	{types.MoodHappy, regexp.MustCompile(`(?i)happy|joy|excited|great|wonderful|thrilled|delighted`)},
	{types.MoodSad, regexp.MustCompile(`(?i)sad|upset|depressed|miserable|down|blue|unhappy`)},
	{types.MoodAngry, regexp.MustCompile(`(?i)angry|mad|furious|irritated|annoyed|frustrated`)},
	{types.MoodAnxious, regexp.MustCompile(`(?i)anxious|worried|nervous|stressed|tense|concerned`)},
	{types.MoodCalm, regexp.MustCompile(`(?i)calm|peaceful|relaxed|serene|tranquil`)},
	{types.MoodEnergetic, regexp.MustCompile(`(?i)energetic|active|lively|vibrant|dynamic`)},
	{types.MoodContemplative, regexp.MustCompile(`(?i)thinking|contemplative|reflective|thoughtful`)},
	{types.MoodJoyful, regexp.MustCompile(`(?i)joyful|ecstatic|elated|gleeful`)},
	{types.MoodMelancholy, regexp.MustCompile(`(?i)melancholy|nostalgic|wistful|lonely`)},
	{types.MoodNeutral, regexp.MustCompile(`(?i)neutral|okay|fine|alright`)},
}

// Classify returns the mood of the first rule whose pattern matches text,
// or MoodNeutral when no rule matches.
func Classify(text string) types.MoodTag {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.mood
		}
	}
	return types.MoodNeutral
}

// Tags returns the fixed set of tags Classify can produce, in rule order.
func Tags() []types.MoodTag {
	out := make([]types.MoodTag, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.mood)
	}
	return out
}

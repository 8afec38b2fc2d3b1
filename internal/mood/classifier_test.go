package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibecheck/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.MoodTag
	}{
		{"anxious exam", "I'm so anxious about the exam", types.MoodAnxious},
		{"happy", "I feel truly wonderful today", types.MoodHappy},
		{"sad", "feeling pretty down tonight", types.MoodSad},
		{"angry", "I'm furious about the delay", types.MoodAngry},
		{"calm", "so peaceful out here", types.MoodCalm},
		{"energetic", "feeling lively and vibrant", types.MoodEnergetic},
		{"contemplative", "just thinking about things", types.MoodContemplative},
		{"melancholy", "a nostalgic kind of evening", types.MoodMelancholy},
		{"case insensitive", "SO EXCITED right now", types.MoodHappy},
		{"no match", "the quarterly report is due", types.MoodNeutral},
		{"empty", "", types.MoodNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	// "joy" sits in the happy rule, which precedes joyful; "joyful" therefore
	// can never be produced for text that also matches happy.
	assert.Equal(t, types.MoodHappy, Classify("joyful news"))

	// sad precedes angry in the table
	assert.Equal(t, types.MoodSad, Classify("upset and angry at once"))
}

func TestClassifyAlwaysReturnsKnownTag(t *testing.T) {
	known := map[types.MoodTag]bool{}
	for _, tag := range Tags() {
		known[tag] = true
	}
	inputs := []string{"", "zzz", "I am fine", "chaos!!!", "happy sad angry"}
	for _, in := range inputs {
		got := Classify(in)
		assert.Truef(t, known[got] || got == types.MoodNeutral, "unexpected tag %q for %q", got, in)
	}
}

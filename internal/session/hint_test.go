package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationHint(t *testing.T) {
	tests := []struct {
		text string
		want time.Duration
		ok   bool
	}{
		{"Grounding • 90s", 90 * time.Second, true},
		{"Breathwork • 2 min", 2 * time.Minute, true},
		{"Grounding • 1.5 min", 90 * time.Second, true},
		{"Focus • 5 minutes", 5 * time.Minute, true},
		{"Artist • 1:30", 90 * time.Second, true},
		{"Lo-fi • 3m loop", 3 * time.Minute, true},
		{"Artist • genre", 0, false},
		{"", 0, false},
		{"0 min", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ParseDurationHint(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

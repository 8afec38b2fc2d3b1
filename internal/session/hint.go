package session

import (
	"regexp"
	"strconv"
	"time"
)

// Subtitle duration hints, e.g. "Grounding • 1.5 min", "Lo-fi • 90s loop",
// "Artist • 1:30". Checked in order; the first form found wins.
var (
	hintClockRe   = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	hintMinutesRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:min(?:ute)?s?|m)\b`)
	hintSecondsRe = regexp.MustCompile(`(?i)(\d+)\s*s(?:ec(?:ond)?s?)?\b`)
)

// ParseDurationHint scans free text for a duration hint and returns it.
// Returns false when no recognizable hint is present or the hint resolves
// to a non-positive duration.
func ParseDurationHint(text string) (time.Duration, bool) {
	if m := hintClockRe.FindStringSubmatch(text); m != nil {
		mins, _ := strconv.Atoi(m[1])
		secs, _ := strconv.Atoi(m[2])
		d := time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second
		if d > 0 {
			return d, true
		}
	}
	if m := hintMinutesRe.FindStringSubmatch(text); m != nil {
		mins, _ := strconv.ParseFloat(m[1], 64)
		if mins > 0 {
			return time.Duration(mins * float64(time.Minute)), true
		}
	}
	if m := hintSecondsRe.FindStringSubmatch(text); m != nil {
		secs, _ := strconv.Atoi(m[1])
		if secs > 0 {
			return time.Duration(secs) * time.Second, true
		}
	}
	return 0, false
}

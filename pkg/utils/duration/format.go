// ABOUTME: Duration formatting for video lengths reported by the search API
// ABOUTME: Turns seconds or Go duration strings into the m:ss / h:mm:ss clock form

package duration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock normalizes a video length to clock form. Plain seconds ("225") and
// Go durations ("3m45s") are converted; clock strings and anything
// unrecognized are returned trimmed but otherwise unchanged.
func Clock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, ":") {
		return raw
	}

	if secs, err := strconv.Atoi(raw); err == nil {
		return FormatSeconds(secs)
	}

	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return FormatSeconds(int(secs))
	}

	if d, err := time.ParseDuration(raw); err == nil {
		return FormatSeconds(int(d.Seconds()))
	}

	return raw
}

// FormatSeconds renders seconds as m:ss, or h:mm:ss from one hour up.
// Negative values render as 0:00.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

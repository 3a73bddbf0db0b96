package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// returned by Parse when the input has no numeric structure
var ErrInvalid = errors.New("invalid timecode")

// Parse converts a human-entered time string into seconds.
//
// Accepted forms: a clock string with up to three colon-delimited fields
// (H:MM:SS, MM:SS, or a bare SS) or a plain integer/decimal number of
// seconds. Surrounding whitespace is ignored.
func Parse(input string) (float64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalid)
	}

	if !strings.Contains(trimmed, ":") {
		seconds, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, input)
		}
		return seconds, nil
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q has too many fields", ErrInvalid, input)
	}

	total := 0.0
	for _, part := range parts {
		field, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, input)
		}
		total = total*60 + field
	}
	return total, nil
}

// Format renders seconds as a zero-padded HH:MM:SS clock string,
// truncating to whole seconds. The hours field grows without day
// rollover for values past 24h.
func Format(seconds float64) string {
	total := int(math.Floor(math.Max(seconds, 0)))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatCaption renders the SRT cue timestamp HH:MM:SS,mmm.
func FormatCaption(seconds float64) string {
	h, m, s, ms := splitMillis(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatVTT renders the WebVTT cue timestamp HH:MM:SS.mmm.
func FormatVTT(seconds float64) string {
	h, m, s, ms := splitMillis(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func splitMillis(seconds float64) (h, m, s, ms int) {
	totalMs := int(math.Max(seconds, 0) * 1000)
	h = totalMs / 3_600_000
	m = (totalMs % 3_600_000) / 60_000
	s = (totalMs % 60_000) / 1000
	ms = totalMs % 1000
	return h, m, s, ms
}

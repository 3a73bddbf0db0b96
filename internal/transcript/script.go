package transcript

import "strings"

// ProjectScript flattens the transcript into a single voiceover script:
// a tone tag for the selected voice followed by every segment's trimmed
// text, empty segments skipped, joined with single spaces. The function
// is pure, so the script always reflects the segments it is handed.
func ProjectScript(segments []Segment, voice string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if text := strings.TrimSpace(segment.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return "Tone " + voice + ". " + strings.Join(parts, " ")
}

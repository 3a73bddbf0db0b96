package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/karinversan/sign-flow/internal/timecode"
	"github.com/karinversan/sign-flow/internal/transcript"
)

// represents supported export formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatTXT Format = "txt"
)

// CaptionDocument serializes the segments into SRT caption text: for
// each segment in store order, a 1-based cue index, the timestamp range
// line, and the text, with cues separated by a blank line. Cue numbers
// are positional and independent of segment ids. Timing is emitted
// as-is; a segment whose end precedes its start is the editor's problem,
// not the formatter's.
func CaptionDocument(segments []transcript.Segment) string {
	cues := make([]string, 0, len(segments))
	for i, segment := range segments {
		cues = append(cues, fmt.Sprintf("%d\n%s --> %s\n%s",
			i+1,
			timecode.FormatCaption(segment.StartSeconds()),
			timecode.FormatCaption(segment.EndSeconds()),
			segment.Text,
		))
	}
	return strings.Join(cues, "\n\n")
}

// VTTDocument serializes the segments into WebVTT caption text with
// indexed cues and dot-separated millisecond timestamps.
func VTTDocument(segments []transcript.Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, segment := range segments {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.FormatVTT(segment.StartSeconds()),
			timecode.FormatVTT(segment.EndSeconds()),
		))
		sb.WriteString(segment.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// PlainTranscript joins the trimmed, non-empty segment texts with
// newlines, in store order.
func PlainTranscript(segments []transcript.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, segment := range segments {
		if text := strings.TrimSpace(segment.Text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// Render produces the document for the given format.
func Render(segments []transcript.Segment, format Format) (string, error) {
	switch format {
	case FormatSRT:
		return CaptionDocument(segments), nil
	case FormatVTT:
		return VTTDocument(segments), nil
	case FormatTXT:
		return PlainTranscript(segments), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "srt":
		return FormatSRT, nil
	case "vtt":
		return FormatVTT, nil
	case "txt", "text":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt, vtt, or txt", name)
	}
}

// ExtensionForFormat returns the file extension for a format.
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatVTT:
		return ".vtt"
	case FormatTXT:
		return ".txt"
	default:
		return ".srt"
	}
}

// FormatFromExtension guesses the export format from a file path.
func FormatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtt":
		return FormatVTT
	case ".txt":
		return FormatTXT
	default:
		return FormatSRT
	}
}

package transcript

import "strings"

// Filter returns the subsequence of segments matching the query,
// preserving store order. The match is a case-insensitive substring
// test against the segment text, both raw timecode strings, and the
// id, so searching "18" finds a segment starting at 00:00:18 even when
// its text never mentions it. An empty or whitespace-only query
// returns the full sequence.
func Filter(segments []Segment, query string) []Segment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return segments
	}

	var matched []Segment
	for _, segment := range segments {
		if strings.Contains(strings.ToLower(segment.Text), q) ||
			strings.Contains(strings.ToLower(segment.Start), q) ||
			strings.Contains(strings.ToLower(segment.End), q) ||
			strings.Contains(strings.ToLower(segment.ID), q) {
			matched = append(matched, segment)
		}
	}
	return matched
}

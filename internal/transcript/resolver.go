package transcript

import "math"

// ResolveActive finds the segment considered active at the given
// playhead position.
//
// The position is floored to a whole non-negative second. Resolution
// runs in two phases: first the segments are scanned in store order for
// one whose [start, end) interval contains the position, first match
// winning even when later segments overlap it. If no interval contains
// the position, the segments are scanned in reverse store order for the
// last one whose start is at or before the position. This keeps the
// final segment active after the playhead passes its end instead of
// flipping to none; only a position before every segment's start
// resolves to nothing.
func ResolveActive(segments []Segment, position float64) (Segment, bool) {
	normalized := math.Floor(math.Max(position, 0))

	for _, segment := range segments {
		if normalized >= segment.StartSeconds() && normalized < segment.EndSeconds() {
			return segment, true
		}
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if normalized >= segments[i].StartSeconds() {
			return segments[i], true
		}
	}

	return Segment{}, false
}

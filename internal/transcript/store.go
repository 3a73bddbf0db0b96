package transcript

import (
	"errors"
	"fmt"

	"github.com/karinversan/sign-flow/internal/timecode"
)

// returned by Patch and Find for an unknown segment id
var ErrSegmentNotFound = errors.New("segment not found")

// placeholder text for freshly added segments
const defaultSegmentText = "New subtitle line..."

// duration in seconds of a freshly added segment
const defaultSegmentSpan = 3

// SegmentPatch is a shallow field-level update for a segment. Nil
// fields are left untouched. Times are not validated against each
// other: an editor may pass through inconsistent intermediate states.
type SegmentPatch struct {
	Start *string
	End   *string
	Text  *string
}

// Store owns the ordered segment sequence for one editing session.
// Insertion order is the authoritative display and export order;
// segments are never re-sorted by time.
type Store struct {
	segments    []Segment
	nextID      int
	span        float64
	placeholder string
}

// NewStore seeds a store from an initial transcript, preserving order.
func NewStore(seed []Segment) *Store {
	segments := make([]Segment, len(seed))
	copy(segments, seed)
	return &Store{
		segments:    segments,
		nextID:      len(seed) + 1,
		span:        defaultSegmentSpan,
		placeholder: defaultSegmentText,
	}
}

// SetNewSegmentDefaults overrides the span and placeholder text used
// for segments created by Add.
func (st *Store) SetNewSegmentDefaults(spanSeconds float64, placeholder string) {
	if spanSeconds > 0 {
		st.span = spanSeconds
	}
	if placeholder != "" {
		st.placeholder = placeholder
	}
}

// Add appends a new segment spanning the default three seconds from
// afterSeconds, with placeholder text, and returns it. Ids come from a
// monotonic counter and are never reused.
func (st *Store) Add(afterSeconds float64) Segment {
	segment := Segment{
		ID:    fmt.Sprintf("seg_%d", st.nextID),
		Start: timecode.Format(afterSeconds),
		End:   timecode.Format(afterSeconds + st.span),
		Text:  st.placeholder,
	}
	st.nextID++
	st.segments = append(st.segments, segment)
	return segment
}

// Patch merges non-nil fields of the patch into the segment with the
// given id and returns the updated segment. Timing is deliberately not
// validated (end <= start passes through) and the sequence is never
// reordered. Unknown ids leave the store untouched.
func (st *Store) Patch(id string, patch SegmentPatch) (Segment, error) {
	for i := range st.segments {
		if st.segments[i].ID != id {
			continue
		}
		if patch.Start != nil {
			st.segments[i].Start = *patch.Start
		}
		if patch.End != nil {
			st.segments[i].End = *patch.End
		}
		if patch.Text != nil {
			st.segments[i].Text = *patch.Text
		}
		return st.segments[i], nil
	}
	return Segment{}, fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
}

// Find returns the segment with the given id.
func (st *Store) Find(id string) (Segment, error) {
	for _, segment := range st.segments {
		if segment.ID == id {
			return segment, nil
		}
	}
	return Segment{}, fmt.Errorf("%w: %s", ErrSegmentNotFound, id)
}

// All returns the segments in store order. The slice is a copy;
// mutations go through Patch.
func (st *Store) All() []Segment {
	segments := make([]Segment, len(st.segments))
	copy(segments, st.segments)
	return segments
}

// Len reports the number of segments.
func (st *Store) Len() int {
	return len(st.segments)
}

// TotalDuration is the maximum end time across all segments, with a
// floor of 1 to avoid a degenerate timeline range.
func (st *Store) TotalDuration() float64 {
	total := 1.0
	for _, segment := range st.segments {
		if end := segment.EndSeconds(); end > total {
			total = end
		}
	}
	return total
}

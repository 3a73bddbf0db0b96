package transcript

import (
	"github.com/karinversan/sign-flow/internal/timecode"
)

// represents a single timed transcript segment
type Segment struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Text  string `json:"text"`
}

// StartSeconds derives the numeric start position from the stored
// timecode string. Unparseable timecodes read as 0 so that a bad edit
// never takes the timeline down.
func (s Segment) StartSeconds() float64 {
	seconds, err := timecode.Parse(s.Start)
	if err != nil {
		return 0
	}
	return seconds
}

// EndSeconds derives the numeric end position from the stored timecode
// string, with the same tolerance as StartSeconds.
func (s Segment) EndSeconds() float64 {
	seconds, err := timecode.Parse(s.End)
	if err != nil {
		return 0
	}
	return seconds
}

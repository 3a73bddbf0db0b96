package session

import (
	"math"
	"strings"

	"github.com/karinversan/sign-flow/internal/config"
	"github.com/karinversan/sign-flow/internal/timecode"
	"github.com/karinversan/sign-flow/internal/transcript"
)

// fallback preview shown when nothing has started yet
const emptyPreview = "Select a segment from the timeline"

// Session is the in-memory state of one editing surface: the segment
// store plus the playhead, search query, and voiceover selection that
// drive the derived views. A session belongs to a single editor; there
// is no concurrent mutation to coordinate.
type Session struct {
	store *transcript.Store
	cfg   *config.Config

	playhead float64
	query    string
	voice    string
	activeID string
}

// New seeds a session from an initial transcript and editor defaults.
// The first segment, when present, starts out selected.
func New(seed []transcript.Segment, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	store := transcript.NewStore(seed)
	store.SetNewSegmentDefaults(float64(cfg.SegmentSpanSeconds), cfg.PlaceholderText)

	s := &Session{
		store: store,
		cfg:   cfg,
		voice: cfg.Voice,
	}
	if len(seed) > 0 {
		s.activeID = seed[0].ID
	}
	return s
}

// Store exposes the owned segment store.
func (s *Session) Store() *transcript.Store {
	return s.store
}

// Playhead reports the current playhead position in seconds.
func (s *Session) Playhead() float64 {
	return s.playhead
}

// SetPlayhead moves the playhead, clamped to [0, TotalDuration], and
// re-synchronizes the selected segment with it.
func (s *Session) SetPlayhead(seconds float64) {
	s.playhead = math.Min(math.Max(seconds, 0), s.store.TotalDuration())
	if active, ok := transcript.ResolveActive(s.store.All(), s.playhead); ok {
		s.activeID = active.ID
	}
}

// JumpTo parses a timecode or seconds input and moves the playhead
// there. Unparseable input is ignored; the caller keeps its position.
func (s *Session) JumpTo(input string) bool {
	seconds, err := timecode.Parse(input)
	if err != nil {
		return false
	}
	s.SetPlayhead(seconds)
	return true
}

// Select makes the given segment active and moves the playhead to its
// start.
func (s *Session) Select(id string) error {
	segment, err := s.store.Find(id)
	if err != nil {
		return err
	}
	s.activeID = segment.ID
	s.playhead = segment.StartSeconds()
	return nil
}

// Move selects the previous (-1) or next (+1) segment by store order,
// clamped to the sequence bounds.
func (s *Session) Move(direction int) {
	segments := s.store.All()
	if len(segments) == 0 {
		return
	}

	index := 0
	for i, segment := range segments {
		if segment.ID == s.activeID {
			index = i
			break
		}
	}

	next := index + direction
	if next < 0 {
		next = 0
	}
	if next > len(segments)-1 {
		next = len(segments) - 1
	}
	_ = s.Select(segments[next].ID)
}

// Add appends a new segment at the end of the timeline and selects it.
func (s *Session) Add() transcript.Segment {
	segment := s.store.Add(s.store.TotalDuration())
	_ = s.Select(segment.ID)
	return segment
}

// Patch applies a field-level update to a segment.
func (s *Session) Patch(id string, patch transcript.SegmentPatch) (transcript.Segment, error) {
	return s.store.Patch(id, patch)
}

// SetQuery updates the search query driving Visible.
func (s *Session) SetQuery(query string) {
	s.query = query
}

// SetVoice selects the voiceover profile. Voices outside the configured
// options are ignored.
func (s *Session) SetVoice(voice string) {
	for _, option := range s.cfg.VoiceOptions {
		if option == voice {
			s.voice = voice
			return
		}
	}
}

// Voice reports the selected voiceover profile.
func (s *Session) Voice() string {
	return s.voice
}

// Active resolves the segment under the playhead, falling back to the
// explicitly selected segment and then to the first segment. Recomputed
// on every call so edits are never observed stale.
func (s *Session) Active() (transcript.Segment, bool) {
	segments := s.store.All()
	if active, ok := transcript.ResolveActive(segments, s.playhead); ok {
		return active, true
	}
	if segment, err := s.store.Find(s.activeID); err == nil {
		return segment, true
	}
	if len(segments) > 0 {
		return segments[0], true
	}
	return transcript.Segment{}, false
}

// Visible returns the segments matching the current query, in store
// order.
func (s *Session) Visible() []transcript.Segment {
	return transcript.Filter(s.store.All(), s.query)
}

// Script projects the current transcript into the voiceover script.
func (s *Session) Script() string {
	return transcript.ProjectScript(s.store.All(), s.voice)
}

// PreviewText is the subtitle overlay line for the current playhead.
func (s *Session) PreviewText() string {
	active, ok := s.Active()
	if !ok {
		return emptyPreview
	}
	if text := strings.TrimSpace(active.Text); text != "" {
		return text
	}
	return emptyPreview
}

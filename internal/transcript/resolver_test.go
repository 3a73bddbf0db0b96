package transcript

import "testing"

func TestResolveActive(t *testing.T) {
	segments := []Segment{
		{ID: "seg_1", Start: "00:00:00", End: "00:00:03", Text: "A"},
		{ID: "seg_2", Start: "00:00:03", End: "00:00:06", Text: "B"},
	}

	tests := []struct {
		name     string
		position float64
		wantID   string
		wantNone bool
	}{
		{"inside first", 2, "seg_1", false},
		{"boundary belongs to next", 3, "seg_2", false},
		{"inside second", 4, "seg_2", false},
		{"fractional position floors", 2.9, "seg_1", false},
		{"at last end sticks to last", 6, "seg_2", false},
		{"far past the end sticks to last", 120, "seg_2", false},
		{"negative clamps to zero", -3, "seg_1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveActive(segments, tt.position)
			if tt.wantNone {
				if ok {
					t.Fatalf("expected none, got %s", got.ID)
				}
				return
			}
			if !ok {
				t.Fatal("expected a segment, got none")
			}
			if got.ID != tt.wantID {
				t.Errorf("ResolveActive(%v) = %s, want %s", tt.position, got.ID, tt.wantID)
			}
		})
	}
}

func TestResolveActiveBeforeFirstStart(t *testing.T) {
	segments := []Segment{
		{ID: "seg_1", Start: "00:00:05", End: "00:00:08", Text: "late start"},
	}

	if got, ok := ResolveActive(segments, 2); ok {
		t.Errorf("expected none before first start, got %s", got.ID)
	}
	if got, ok := ResolveActive(segments, 5); !ok || got.ID != "seg_1" {
		t.Errorf("expected seg_1 at its start, got %v %v", got.ID, ok)
	}
}

func TestResolveActiveGapFallsBackToLastStarted(t *testing.T) {
	segments := []Segment{
		{ID: "seg_1", Start: "00:00:00", End: "00:00:03", Text: "A"},
		{ID: "seg_2", Start: "00:00:10", End: "00:00:13", Text: "B"},
	}

	// inside the gap the earlier segment stays active
	got, ok := ResolveActive(segments, 5)
	if !ok || got.ID != "seg_1" {
		t.Errorf("expected seg_1 in the gap, got %v %v", got.ID, ok)
	}
}

func TestResolveActiveOverlapFirstMatchWins(t *testing.T) {
	segments := []Segment{
		{ID: "seg_1", Start: "00:00:00", End: "00:00:10", Text: "wide"},
		{ID: "seg_2", Start: "00:00:05", End: "00:00:08", Text: "nested"},
	}

	got, ok := ResolveActive(segments, 6)
	if !ok || got.ID != "seg_1" {
		t.Errorf("expected first containing segment seg_1, got %v %v", got.ID, ok)
	}
}

func TestResolveActiveDegenerateAndEmpty(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		if _, ok := ResolveActive(nil, 0); ok {
			t.Error("expected none for empty store")
		}
	})

	t.Run("end before start never contains", func(t *testing.T) {
		segments := []Segment{
			{ID: "seg_1", Start: "00:00:05", End: "00:00:02", Text: "inverted"},
		}
		// containment is impossible, but the fallback still applies
		got, ok := ResolveActive(segments, 7)
		if !ok || got.ID != "seg_1" {
			t.Errorf("expected fallback to seg_1, got %v %v", got.ID, ok)
		}
		if _, ok := ResolveActive(segments, 2); ok {
			t.Error("expected none before the inverted segment starts")
		}
	})

	t.Run("unparseable timecode reads as zero", func(t *testing.T) {
		segments := []Segment{
			{ID: "seg_1", Start: "garbage", End: "00:00:04", Text: "tolerated"},
		}
		got, ok := ResolveActive(segments, 1)
		if !ok || got.ID != "seg_1" {
			t.Errorf("expected seg_1 with start read as 0, got %v %v", got.ID, ok)
		}
	})
}

func TestResolveActiveOutOfOrderStore(t *testing.T) {
	// store order is authoritative even when timing is out of order
	segments := []Segment{
		{ID: "seg_1", Start: "00:00:10", End: "00:00:13", Text: "late"},
		{ID: "seg_2", Start: "00:00:00", End: "00:00:03", Text: "early"},
	}

	// containment still wins where an interval covers the position
	got, ok := ResolveActive(segments, 11)
	if !ok || got.ID != "seg_1" {
		t.Errorf("expected seg_1, got %v %v", got.ID, ok)
	}

	// past every interval the reverse scan reaches seg_2 first, even
	// though seg_1 started later on the clock
	got, ok = ResolveActive(segments, 20)
	if !ok || got.ID != "seg_2" {
		t.Errorf("expected seg_2, got %v %v", got.ID, ok)
	}
}

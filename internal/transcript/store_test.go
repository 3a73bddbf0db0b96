package transcript

import (
	"errors"
	"testing"
)

func seedSegments() []Segment {
	return []Segment{
		{ID: "seg_1", Start: "00:00:00", End: "00:00:03", Text: "A"},
		{ID: "seg_2", Start: "00:00:03", End: "00:00:06", Text: "B"},
		{ID: "seg_3", Start: "00:00:06", End: "00:00:10", Text: "C"},
	}
}

func TestNewStorePreservesOrder(t *testing.T) {
	store := NewStore(seedSegments())

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(all))
	}
	for i, want := range []string{"seg_1", "seg_2", "seg_3"} {
		if all[i].ID != want {
			t.Errorf("segment %d: expected id %s, got %s", i, want, all[i].ID)
		}
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore(seedSegments())

	added := store.Add(store.TotalDuration())
	if added.ID != "seg_4" {
		t.Errorf("expected id seg_4, got %s", added.ID)
	}
	if added.Start != "00:00:10" || added.End != "00:00:13" {
		t.Errorf("expected span 00:00:10-00:00:13, got %s-%s", added.Start, added.End)
	}
	if added.Text != "New subtitle line..." {
		t.Errorf("unexpected placeholder text %q", added.Text)
	}

	all := store.All()
	if all[len(all)-1].ID != added.ID {
		t.Error("added segment is not last in store order")
	}
}

func TestStoreAddNeverReusesIDs(t *testing.T) {
	store := NewStore(seedSegments())

	first := store.Add(10)
	second := store.Add(13)
	if first.ID == second.ID {
		t.Errorf("ids reused: %s", first.ID)
	}
	if second.ID != "seg_5" {
		t.Errorf("expected seg_5, got %s", second.ID)
	}
}

func TestStoreAddCustomDefaults(t *testing.T) {
	store := NewStore(nil)
	store.SetNewSegmentDefaults(5, "...")

	added := store.Add(0)
	if added.End != "00:00:05" {
		t.Errorf("expected end 00:00:05, got %s", added.End)
	}
	if added.Text != "..." {
		t.Errorf("expected custom placeholder, got %q", added.Text)
	}
}

func TestStorePatch(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		store := NewStore(seedSegments())

		text := "edited"
		updated, err := store.Patch("seg_2", SegmentPatch{Text: &text})
		if err != nil {
			t.Fatalf("Patch failed: %v", err)
		}
		if updated.Text != "edited" {
			t.Errorf("expected text %q, got %q", "edited", updated.Text)
		}
		if updated.Start != "00:00:03" || updated.End != "00:00:06" {
			t.Errorf("times changed: %s-%s", updated.Start, updated.End)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		store := NewStore(seedSegments())

		_, err := store.Patch("seg_99", SegmentPatch{})
		if !errors.Is(err, ErrSegmentNotFound) {
			t.Errorf("expected ErrSegmentNotFound, got %v", err)
		}
	})

	t.Run("accepts degenerate timing", func(t *testing.T) {
		store := NewStore(seedSegments())

		end := "00:00:01"
		updated, err := store.Patch("seg_2", SegmentPatch{End: &end})
		if err != nil {
			t.Fatalf("Patch failed: %v", err)
		}
		if updated.End != "00:00:01" {
			t.Errorf("expected end 00:00:01, got %s", updated.End)
		}
	})

	t.Run("does not reorder", func(t *testing.T) {
		store := NewStore(seedSegments())

		// seg_1 now starts after seg_3 but must keep its slot
		start := "00:01:00"
		if _, err := store.Patch("seg_1", SegmentPatch{Start: &start}); err != nil {
			t.Fatalf("Patch failed: %v", err)
		}
		if store.All()[0].ID != "seg_1" {
			t.Error("patch reordered the sequence")
		}
	})
}

func TestStoreFind(t *testing.T) {
	store := NewStore(seedSegments())

	segment, err := store.Find("seg_3")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if segment.Text != "C" {
		t.Errorf("expected text C, got %q", segment.Text)
	}

	if _, err := store.Find("missing"); !errors.Is(err, ErrSegmentNotFound) {
		t.Errorf("expected ErrSegmentNotFound, got %v", err)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	store := NewStore(seedSegments())

	all := store.All()
	all[0].Text = "mutated"

	fresh, _ := store.Find("seg_1")
	if fresh.Text != "A" {
		t.Error("mutating All() result leaked into the store")
	}
}

func TestTotalDuration(t *testing.T) {
	t.Run("max end time", func(t *testing.T) {
		store := NewStore(seedSegments())
		if got := store.TotalDuration(); got != 10 {
			t.Errorf("TotalDuration() = %v, want 10", got)
		}
	})

	t.Run("empty store floors at 1", func(t *testing.T) {
		store := NewStore(nil)
		if got := store.TotalDuration(); got != 1 {
			t.Errorf("TotalDuration() = %v, want 1", got)
		}
	})

	t.Run("out-of-order timing", func(t *testing.T) {
		store := NewStore([]Segment{
			{ID: "a", Start: "00:00:30", End: "00:00:40", Text: "late"},
			{ID: "b", Start: "00:00:00", End: "00:00:05", Text: "early"},
		})
		if got := store.TotalDuration(); got != 40 {
			t.Errorf("TotalDuration() = %v, want 40", got)
		}
	})
}

func TestDerivedViewsSeeFreshPatches(t *testing.T) {
	store := NewStore(seedSegments())

	text := "completely new wording"
	if _, err := store.Patch("seg_2", SegmentPatch{Text: &text}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	if got := Filter(store.All(), "wording"); len(got) != 1 {
		t.Errorf("Filter did not see patched text, matched %d", len(got))
	}

	script := ProjectScript(store.All(), "nova")
	if want := "Tone nova. A completely new wording C"; script != want {
		t.Errorf("ProjectScript = %q, want %q", script, want)
	}

	start := "00:01:00"
	end := "00:01:05"
	if _, err := store.Patch("seg_3", SegmentPatch{Start: &start, End: &end}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	active, ok := ResolveActive(store.All(), 62)
	if !ok || active.ID != "seg_3" {
		t.Errorf("ResolveActive did not see patched times, got %v %v", active.ID, ok)
	}
}

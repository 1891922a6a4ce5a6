package timeline

import (
	"testing"

	"github.com/google/uuid"
)

func testLimits() Limits {
	return Limits{
		MaxTotalChars: 74,
		MaxLineChars:  37,
		MinDuration:   1,
		MaxDuration:   7,
	}
}

func seg(start, end float64, text string) Segment {
	return NewSegment(start, end, text)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd float64
		want                       bool
	}{
		{"disjoint with gap", 0, 1, 2, 3, false},
		{"strict overlap", 0, 2, 1, 3, true},
		{"containment", 0, 5, 1, 2, true},
		{"zero-gap adjacency", 0, 1, 1, 2, true},
		{"identical spans", 1, 2, 1, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			// Symmetry must hold for every input.
			if got := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd); got != tc.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRefreshFlags(t *testing.T) {
	limits := testLimits()
	doc := New([]Segment{
		seg(0, 0.5, "Hi"),
		seg(0.5, 5, "This is a longer subtitle line that needs to be split here"),
		seg(10, 20, "way too slow on screen"),
	}).Refresh(limits)

	first := doc.Segments[0]
	if !first.IsTooShort {
		t.Error("segment 1 should be too short")
	}
	if !first.HasConflict {
		t.Error("segment 1 should conflict with its zero-gap neighbor")
	}
	if first.CharCount != 2 {
		t.Errorf("segment 1 char count = %d", first.CharCount)
	}

	second := doc.Segments[1]
	if !second.HasConflict {
		t.Error("conflicts are symmetric")
	}
	if second.IsTooShort || second.IsTooLong {
		t.Error("segment 2 duration flags should be clear")
	}

	third := doc.Segments[2]
	if !third.IsTooLong {
		t.Error("segment 3 should be too long")
	}
	if third.HasConflict {
		t.Error("segment 3 has no neighbors in range")
	}
}

func TestRefreshCharCountExcludesLineBreaks(t *testing.T) {
	doc := New([]Segment{seg(0, 2, "two\nlines")}).Refresh(testLimits())
	if got := doc.Segments[0].CharCount; got != 8 {
		t.Fatalf("CharCount = %d, want 8", got)
	}
}

func TestRenumberDense(t *testing.T) {
	doc := New([]Segment{seg(0, 1, "a"), seg(2, 3, "b"), seg(4, 5, "c")})
	doc = doc.RemoveAt(1).Renumber()
	for i, s := range doc.Segments {
		if s.Index != i+1 {
			t.Fatalf("index at %d = %d", i, s.Index)
		}
	}
}

func TestFindByKey(t *testing.T) {
	a := seg(0, 1, "a")
	doc := New([]Segment{a, seg(2, 3, "b")})

	found, pos, ok := doc.FindByKey(a.Key)
	if !ok || pos != 0 || found.Text != "a" {
		t.Fatalf("FindByKey = %v, %d, %v", found.Text, pos, ok)
	}
	if _, _, ok := doc.FindByKey(uuid.New()); ok {
		t.Error("unknown key should not be found")
	}
}

func TestFunctionalUpdates(t *testing.T) {
	original := New([]Segment{seg(0, 1, "a"), seg(2, 3, "b")})
	edited := original.ReplaceAt(0, seg(0, 1, "changed"))

	if original.Segments[0].Text != "a" {
		t.Error("ReplaceAt mutated the original document")
	}
	if edited.Segments[0].Text != "changed" {
		t.Error("ReplaceAt lost the edit")
	}

	grown := original.InsertAt(1, seg(1, 2, "mid"))
	if original.Len() != 2 || grown.Len() != 3 {
		t.Error("InsertAt should only grow the copy")
	}
	if grown.Segments[1].Text != "mid" {
		t.Error("InsertAt misplaced the segment")
	}
}

func TestEditState(t *testing.T) {
	state := CleanState()
	if state.Dirty() {
		t.Error("zero state must be clean")
	}
	if _, ok := state.Previous(); ok {
		t.Error("clean state has no revision")
	}

	rev := Revision{Start: 1, End: 2, Text: "before"}
	state = DirtyState(rev)
	if !state.Dirty() {
		t.Error("dirty state should report dirty")
	}
	got, ok := state.Previous()
	if !ok || got != rev {
		t.Errorf("Previous = %v, %v", got, ok)
	}
}

package timeline

import "github.com/google/uuid"

// Document is an ordered, immutable-by-replacement sequence of segments.
// Operations return new Document values; the zero value is an empty document.
type Document struct {
	Segments []Segment
}

// New builds a renumbered document from segments. The slice is copied.
func New(segments []Segment) Document {
	copied := make([]Segment, len(segments))
	copy(copied, segments)
	return Document{Segments: copied}.Renumber()
}

// Len returns the number of segments.
func (d Document) Len() int {
	return len(d.Segments)
}

// Clone returns a document backed by a fresh slice.
func (d Document) Clone() Document {
	copied := make([]Segment, len(d.Segments))
	copy(copied, d.Segments)
	return Document{Segments: copied}
}

// FindByKey returns the segment with the given key and its position.
func (d Document) FindByKey(key uuid.UUID) (Segment, int, bool) {
	for i, seg := range d.Segments {
		if seg.Key == key {
			return seg, i, true
		}
	}
	return Segment{}, -1, false
}

// FindByIndex returns the segment with the given display index.
func (d Document) FindByIndex(index int) (Segment, bool) {
	if index < 1 || index > len(d.Segments) {
		return Segment{}, false
	}
	return d.Segments[index-1], true
}

// Renumber reassigns dense 1-based display indexes from array position.
func (d Document) Renumber() Document {
	out := d.Clone()
	for i := range out.Segments {
		out.Segments[i].Index = i + 1
	}
	return out
}

// Refresh recomputes every derived field over the entire document in a
// single pass: per-segment counts, durations and limit flags, then the full
// pairwise conflict scan. Quadratic, which is fine at subtitle-file scale.
func (d Document) Refresh(limits Limits) Document {
	out := d.Clone()
	for i := range out.Segments {
		out.Segments[i] = out.Segments[i].refreshDerived(limits)
	}
	for i := range out.Segments {
		out.Segments[i].HasConflict = hasConflict(i, out.Segments)
	}
	return out
}

// ReplaceAt swaps in a segment at position i.
func (d Document) ReplaceAt(i int, seg Segment) Document {
	out := d.Clone()
	out.Segments[i] = seg
	return out
}

// InsertAt inserts a segment before position i.
func (d Document) InsertAt(i int, seg Segment) Document {
	out := make([]Segment, 0, len(d.Segments)+1)
	out = append(out, d.Segments[:i]...)
	out = append(out, seg)
	out = append(out, d.Segments[i:]...)
	return Document{Segments: out}
}

// RemoveAt drops the segment at position i.
func (d Document) RemoveAt(i int) Document {
	out := make([]Segment, 0, len(d.Segments)-1)
	out = append(out, d.Segments[:i]...)
	out = append(out, d.Segments[i+1:]...)
	return Document{Segments: out}
}

// Overlaps reports whether two spans conflict: strict interval overlap, or
// exact zero-gap adjacency. Renderers must not show two cues with literally
// no gap between them, so touching spans count.
func Overlaps(aStart, aEnd, bStart, bEnd float64) bool {
	if aStart < bEnd && bStart < aEnd {
		return true
	}
	return aEnd == bStart || bEnd == aStart
}

// hasConflict reports whether the segment at position i overlaps or touches
// any other segment in the set, regardless of ordering.
func hasConflict(i int, segments []Segment) bool {
	self := segments[i]
	for j, other := range segments {
		if j == i {
			continue
		}
		if Overlaps(self.Start, self.End, other.Start, other.End) {
			return true
		}
	}
	return false
}

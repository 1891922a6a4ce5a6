package timeline

import (
	"github.com/google/uuid"

	"subfix/internal/textutil"
)

// Limits holds the caller-supplied formatting and timing constraints used to
// compute segment flags. Defaults live in the config package, never here.
type Limits struct {
	MaxTotalChars int
	MaxLineChars  int
	MinDuration   float64
	MaxDuration   float64
}

// Segment is one subtitle cue. Start and End are seconds with millisecond
// resolution. CharCount, Duration and the boolean flags are derived fields
// owned by Document.Refresh; nothing else may set them.
type Segment struct {
	Key   uuid.UUID
	Index int

	Start float64
	End   float64
	Text  string

	// Provenance for multi-file sessions and paired original-language text.
	SourceFile   string
	OriginalText string

	CharCount   int
	Duration    float64
	IsLong      bool
	IsTooShort  bool
	IsTooLong   bool
	HasConflict bool

	Edit EditState
}

// NewSegment builds a segment with a fresh identity. Derived fields are left
// zero; callers refresh the owning document afterwards.
func NewSegment(start, end float64, text string) Segment {
	return Segment{
		Key:   uuid.New(),
		Start: start,
		End:   end,
		Text:  text,
	}
}

// refreshDerived recomputes the per-segment derived fields. Conflict flags
// need the whole document and are handled by Document.Refresh.
func (s Segment) refreshDerived(limits Limits) Segment {
	s.CharCount = textutil.VisibleLength(s.Text)
	s.Duration = s.End - s.Start
	s.IsLong = limits.MaxTotalChars > 0 && s.CharCount > limits.MaxTotalChars
	s.IsTooShort = limits.MinDuration > 0 && s.Duration < limits.MinDuration
	s.IsTooLong = limits.MaxDuration > 0 && s.Duration > limits.MaxDuration
	return s
}

// Revision is the segment state captured before an edit.
type Revision struct {
	Start float64
	End   float64
	Text  string
}

type editKind int

const (
	editClean editKind = iota
	editDirty
)

// EditState is the single-level undo state of a segment: either Clean, or
// Dirty carrying the revision to restore. The zero value is Clean.
type EditState struct {
	kind     editKind
	previous Revision
}

// CleanState returns the state of an unedited segment.
func CleanState() EditState {
	return EditState{}
}

// DirtyState marks a segment edited, remembering the previous revision.
func DirtyState(previous Revision) EditState {
	return EditState{kind: editDirty, previous: previous}
}

// Dirty reports whether an undo revision is available.
func (e EditState) Dirty() bool {
	return e.kind == editDirty
}

// Previous returns the captured revision when the state is Dirty.
func (e EditState) Previous() (Revision, bool) {
	if e.kind != editDirty {
		return Revision{}, false
	}
	return e.previous, true
}

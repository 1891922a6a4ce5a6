package editor

import "subfix/internal/timeline"

// UndoSlot holds at most one document snapshot, taken before a destructive
// bulk or planner operation. The next capture overwrites it, and structural
// changes (split, merge, delete) must invalidate it, since a positional
// snapshot is meaningless after the document's shape changes.
type UndoSlot struct {
	snapshot timeline.Document
	valid    bool
}

// Capture stores a snapshot, replacing any previous one.
func (u *UndoSlot) Capture(doc timeline.Document) {
	u.snapshot = doc.Clone()
	u.valid = true
}

// Restore returns the stored snapshot and clears the slot.
func (u *UndoSlot) Restore() (timeline.Document, bool) {
	if !u.valid {
		return timeline.Document{}, false
	}
	u.valid = false
	return u.snapshot, true
}

// Invalidate discards the snapshot.
func (u *UndoSlot) Invalidate() {
	u.valid = false
	u.snapshot = timeline.Document{}
}

// Available reports whether a snapshot can be restored.
func (u *UndoSlot) Available() bool {
	return u.valid
}

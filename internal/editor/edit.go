package editor

import (
	"github.com/google/uuid"

	"subfix/internal/timecode"
	"subfix/internal/timeline"
)

// UpdateText replaces a segment's text, capturing the previous revision so a
// single-level revert is possible. Unknown keys are a no-op.
func UpdateText(doc timeline.Document, key uuid.UUID, text string, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found {
		return doc, false
	}
	updated := seg
	updated.Text = text
	updated.Edit = timeline.DirtyState(revisionOf(seg))
	return doc.ReplaceAt(pos, updated).Refresh(limits), true
}

// UpdateTimes replaces a segment's span from timestamp strings. Hand-typed
// input is normalized through ParseFlexible first, so "1:30" works; input
// that still fails the strict parse is a no-op. The span is not validated
// here; an editor may transiently set end before start.
func UpdateTimes(doc timeline.Document, key uuid.UUID, start, end string, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found {
		return doc, false
	}
	startSeconds, err := timecode.Parse(timecode.ParseFlexible(start))
	if err != nil {
		return doc, false
	}
	endSeconds, err := timecode.Parse(timecode.ParseFlexible(end))
	if err != nil {
		return doc, false
	}
	updated := seg
	updated.Start = startSeconds
	updated.End = endSeconds
	updated.Edit = timeline.DirtyState(revisionOf(seg))
	return doc.ReplaceAt(pos, updated).Refresh(limits), true
}

// Nudge shifts both edges of a segment by delta seconds, clamped so the
// start never goes below zero. The previous revision is captured.
func Nudge(doc timeline.Document, key uuid.UUID, delta float64, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found {
		return doc, false
	}
	if seg.Start+delta < 0 {
		delta = -seg.Start
	}
	updated := seg
	updated.Start = timecode.Round(seg.Start + delta)
	updated.End = timecode.Round(seg.End + delta)
	updated.Edit = timeline.DirtyState(revisionOf(seg))
	return doc.ReplaceAt(pos, updated).Refresh(limits), true
}

// Revert restores a segment to its captured revision and clears the undo
// state. Clean segments and unknown keys are a no-op.
func Revert(doc timeline.Document, key uuid.UUID, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found {
		return doc, false
	}
	previous, ok := seg.Edit.Previous()
	if !ok {
		return doc, false
	}
	restored := seg
	restored.Start = previous.Start
	restored.End = previous.End
	restored.Text = previous.Text
	restored.Edit = timeline.CleanState()
	return doc.ReplaceAt(pos, restored).Refresh(limits), true
}

func revisionOf(seg timeline.Segment) timeline.Revision {
	return timeline.Revision{Start: seg.Start, End: seg.End, Text: seg.Text}
}

package editor

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"subfix/internal/textutil"
	"subfix/internal/timeline"
)

// Split divides the segment with the given key into two, allocating its time
// span at the text-length ratio of the balanced word split. The split point
// is computed in integer milliseconds so no time is created or destroyed.
// Returns the document unchanged (ok false) when the segment is missing or
// its text is not splittable. The split invalidates undo state on the new
// pair and renumbers and refreshes the whole document.
func Split(doc timeline.Document, key uuid.UUID, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found || !textutil.IsSplittable(seg.Text) {
		return doc, false
	}
	firstText, secondText, ratio := textutil.SplitBalanced(seg.Text)
	if secondText == "" {
		return doc, false
	}

	startMs := int64(math.Round(seg.Start * 1000))
	endMs := int64(math.Round(seg.End * 1000))
	splitMs := startMs + int64(math.Round(ratio*float64(endMs-startMs)))
	splitPoint := float64(splitMs) / 1000

	first := seg
	first.Text = firstText
	first.End = splitPoint
	first.Edit = timeline.CleanState()

	second := seg
	second.Key = uuid.New()
	second.Text = secondText
	second.Start = splitPoint
	second.Edit = timeline.CleanState()

	out := doc.ReplaceAt(pos, first).InsertAt(pos+1, second)
	return out.Renumber().Refresh(limits), true
}

// MergeWithNext absorbs the following segment into the one with the given
// key: whitespace-collapsed text concatenation, span from the first start to
// the second end. There is no feasibility gate beyond a next segment
// existing; merging is a content operation, not a validity check.
func MergeWithNext(doc timeline.Document, key uuid.UUID, limits timeline.Limits) (timeline.Document, bool) {
	seg, pos, found := doc.FindByKey(key)
	if !found || pos+1 >= doc.Len() {
		return doc, false
	}
	next := doc.Segments[pos+1]

	merged := seg
	merged.Text = textutil.CollapseWhitespace(seg.Text + " " + next.Text)
	merged.End = next.End
	merged.Edit = timeline.CleanState()
	if next.OriginalText != "" {
		if merged.OriginalText != "" {
			merged.OriginalText = textutil.CollapseWhitespace(merged.OriginalText + " " + next.OriginalText)
		} else {
			merged.OriginalText = next.OriginalText
		}
	}

	out := doc.ReplaceAt(pos, merged).RemoveAt(pos + 1)
	return out.Renumber().Refresh(limits), true
}

// SplitAll splits every splittable segment among keys, returning the new
// document and how many splits happened. Keys that vanished or are not
// splittable are skipped.
func SplitAll(doc timeline.Document, keys []uuid.UUID, limits timeline.Limits) (timeline.Document, int) {
	count := 0
	for _, key := range keys {
		next, ok := Split(doc, key, limits)
		if ok {
			doc = next
			count++
		}
	}
	return doc, count
}

// MergeAdjacentPairs merges consecutive pairs within the filtered subset
// identified by keys. Pairs are formed by walking the subset in display
// order two at a time; a pairing is skipped unless the two segments sit at
// exactly consecutive positions, so a filter that matched far-apart segments
// never glues unrelated cues together.
func MergeAdjacentPairs(doc timeline.Document, keys []uuid.UUID, limits timeline.Limits) (timeline.Document, int) {
	positions := make([]int, 0, len(keys))
	byPosition := make(map[int]uuid.UUID, len(keys))
	for _, key := range keys {
		if _, pos, found := doc.FindByKey(key); found {
			positions = append(positions, pos)
			byPosition[pos] = key
		}
	}
	sort.Ints(positions)

	count := 0
	for i := 0; i+1 < len(positions); i += 2 {
		if positions[i+1] != positions[i]+1 {
			continue
		}
		next, ok := MergeWithNext(doc, byPosition[positions[i]], limits)
		if ok {
			doc = next
			count++
		}
	}
	return doc, count
}

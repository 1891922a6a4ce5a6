package cascade

import (
	"errors"

	"subfix/internal/timecode"
	"subfix/internal/timeline"
)

// ErrInfeasiblePlan is returned when Apply is handed a plan whose planning
// pass already failed. The document is left untouched.
var ErrInfeasiblePlan = errors.New("plan is not feasible")

// Apply replays a plan's steps, in the order they were generated, against a
// copy of the document, then recomputes every derived flag in one pass. A
// step whose segment no longer exists is skipped silently; the rest of the
// plan still applies. A feasible plan has no other failure mode here.
func Apply(doc timeline.Document, plan Plan, limits timeline.Limits) (timeline.Document, error) {
	if !plan.CanBeFixed {
		return doc, ErrInfeasiblePlan
	}

	work := doc.Clone()
	for _, step := range plan.Steps {
		_, pos, found := work.FindByKey(step.Key)
		if !found {
			continue
		}
		seg := work.Segments[pos]
		switch step.Action {
		case ActionExtend:
			seg.End = timecode.Round(seg.End + step.TimeChange)
		case ActionShorten:
			seg.Start = timecode.Round(seg.Start + step.TimeChange)
		case ActionMove:
			seg.Start = timecode.Round(seg.Start + step.TimeChange)
			seg.End = timecode.Round(seg.End + step.TimeChange)
		}
		work.Segments[pos] = seg
	}

	return work.Refresh(limits), nil
}

package cascade

import (
	"fmt"

	"github.com/google/uuid"

	"subfix/internal/timecode"
)

// Action identifies how a step changes its target segment.
type Action string

const (
	// ActionExtend grows the segment's end time by the step delta.
	ActionExtend Action = "extend"
	// ActionShorten grows the segment's start time, shrinking it from the front.
	ActionShorten Action = "shorten"
	// ActionMove shifts both edges by the delta, preserving the duration.
	ActionMove Action = "move"
)

// Step is one timing adjustment of a plan. TimeChange is seconds, always
// positive; the action determines which edge it applies to.
type Step struct {
	Key        uuid.UUID
	Index      int
	Action     Action
	TimeChange float64
	Reason     string
}

// Plan is the ephemeral outcome of one planning pass. When CanBeFixed is
// false, Steps is empty and Reason names the blocking segment; a failed plan
// carries no partial fix.
type Plan struct {
	Steps         []Step
	TotalAffected int
	CanBeFixed    bool
	Reason        string
}

// epsilon is the millisecond-scale tolerance below which a remaining deficit
// counts as satisfied.
const epsilon = 0.001

func extendStep(key uuid.UUID, index int, delta float64, reason string) Step {
	return Step{Key: key, Index: index, Action: ActionExtend, TimeChange: delta, Reason: reason}
}

func shortenStep(key uuid.UUID, index int, delta float64, reason string) Step {
	return Step{Key: key, Index: index, Action: ActionShorten, TimeChange: delta, Reason: reason}
}

func moveStep(key uuid.UUID, index int, delta float64, reason string) Step {
	return Step{Key: key, Index: index, Action: ActionMove, TimeChange: delta, Reason: reason}
}

func countAffected(steps []Step) int {
	seen := make(map[uuid.UUID]struct{}, len(steps))
	for _, step := range steps {
		seen[step.Key] = struct{}{}
	}
	return len(seen)
}

func infeasible(index int, missing float64) Plan {
	return Plan{
		CanBeFixed: false,
		Reason: fmt.Sprintf(
			"segment %d cannot reach the minimum duration: %s still missing after borrowing from neighbors and gaps",
			index, formatDelta(missing),
		),
	}
}

func formatDelta(seconds float64) string {
	return fmt.Sprintf("%.3fs", timecode.Round(seconds))
}

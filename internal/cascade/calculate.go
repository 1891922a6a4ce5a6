package cascade

import (
	"fmt"

	"subfix/internal/timecode"
	"subfix/internal/timeline"
)

// Calculate plans the borrow operations that bring every segment of doc up
// to minDuration. Under-duration segments are processed in document order;
// each is fixed by borrowing slack from later segments first, then by
// consuming gaps further down the timeline. Segments sitting between the
// target and a consumed gap are shifted forward so their own durations
// survive. When a deficit cannot be driven below the millisecond epsilon the
// whole plan fails; no steps from the partial attempt are kept.
//
// All slack and gap measurements read the original snapshot, never the
// partially-planned state. A donor can therefore be shortened again for a
// later under-duration segment in the same pass.
func Calculate(doc timeline.Document, minDuration float64) Plan {
	segments := doc.Segments
	var steps []Step

	for i, seg := range segments {
		duration := seg.End - seg.Start
		needed := minDuration - duration
		if needed <= epsilon {
			continue
		}

		needed = borrowSlack(segments, i, minDuration, needed, &steps)
		if needed > epsilon {
			needed = borrowGaps(segments, i, needed, &steps)
		}
		if needed > epsilon {
			return infeasible(seg.Index, needed)
		}
	}

	return Plan{
		Steps:         steps,
		TotalAffected: countAffected(steps),
		CanBeFixed:    true,
	}
}

// borrowSlack walks the segments after position i and takes duration above
// the minimum from each. The target's end edge grows, the donor's start edge
// grows by the same amount, and every segment in between shifts forward so
// the timeline stays packed exactly as before.
func borrowSlack(segments []timeline.Segment, i int, minDuration, needed float64, steps *[]Step) float64 {
	target := segments[i]
	for j := i + 1; j < len(segments) && needed > epsilon; j++ {
		donor := segments[j]
		slack := (donor.End - donor.Start) - minDuration
		if slack < epsilon {
			continue
		}
		take := timecode.Round(min(needed, slack))
		if take < epsilon {
			continue
		}

		*steps = append(*steps, extendStep(target.Key, target.Index, take,
			fmt.Sprintf("borrow %s of slack from segment %d", formatDelta(take), donor.Index)))
		for k := i + 1; k < j; k++ {
			*steps = append(*steps, moveStep(segments[k].Key, segments[k].Index, take,
				fmt.Sprintf("shift forward while segment %d borrows from segment %d", target.Index, donor.Index)))
		}
		*steps = append(*steps, shortenStep(donor.Key, donor.Index, take,
			fmt.Sprintf("donate %s of slack to segment %d", formatDelta(take), target.Index)))

		needed -= take
	}
	return needed
}

// borrowGaps walks pairs forward from position i and consumes idle time
// between them. Consuming the gap after pair position j extends the target
// and shifts every segment in between forward, closing the gap without
// changing any shifted segment's duration.
func borrowGaps(segments []timeline.Segment, i int, needed float64, steps *[]Step) float64 {
	target := segments[i]
	for j := i; j < len(segments)-1 && needed > epsilon; j++ {
		gap := segments[j+1].Start - segments[j].End
		if gap < epsilon {
			continue
		}
		take := timecode.Round(min(needed, gap))
		if take < epsilon {
			continue
		}

		*steps = append(*steps, extendStep(target.Key, target.Index, take,
			fmt.Sprintf("consume %s of the gap after segment %d", formatDelta(take), segments[j].Index)))
		for k := i + 1; k <= j; k++ {
			*steps = append(*steps, moveStep(segments[k].Key, segments[k].Index, take,
				fmt.Sprintf("shift into the gap after segment %d", segments[j].Index)))
		}

		needed -= take
	}
	return needed
}

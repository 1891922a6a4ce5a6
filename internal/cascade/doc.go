// Package cascade plans and applies multi-segment time redistribution that
// brings every under-duration segment of a subtitle timeline up to a minimum
// duration.
//
// For each under-duration segment, in document order, the planner first
// borrows slack (duration above the minimum) from later segments, then
// consumes idle gaps further down the timeline, shifting the segments in
// between so their own durations are preserved. The result is an ordered
// step list; a plan that cannot fully satisfy the minimum fails as a whole
// and names the blocking segment. Partial fixes are never produced.
//
// This is a greedy, order-dependent solver, deterministic for a given
// timeline, not a global optimizer. Slack and gaps are measured against the
// original snapshot throughout planning, so a segment that already donated
// slack to one fix can be shortened again for a later one.
package cascade

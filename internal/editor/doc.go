// Package editor implements the structural and textual edit operations on a
// subtitle document: proportional splitting, merging with the following
// segment, bulk variants over a filtered subset, per-segment text and timing
// edits with a one-level revert, and a single-slot document snapshot for
// undoing bulk operations.
//
// Precondition failures (splitting an unsplittable segment, merging past the
// last segment, operating on a key that no longer exists) are silent no-ops
// returning the input document unchanged; callers check the bool result when
// they need to report the refusal.
package editor

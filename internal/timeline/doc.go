// Package timeline defines the subtitle segment model and the document that
// owns an ordered set of segments.
//
// Documents follow a functional-update discipline: every mutation returns a
// new Document value with fresh segment values, never an in-place edit of a
// segment shared with other readers. Derived fields (character count,
// duration, limit flags, timing conflicts) are recomputed over the entire
// document in one pass after each mutation, because one timing change can
// alter the conflict status of arbitrarily distant segments.
//
// Segments carry a stable opaque Key for identity; the dense 1-based Index
// is derived from position and exists for display and serialization only.
package timeline

// Package textutil provides text processing utilities for subtitle cues:
// balanced word-boundary splitting, visible-length counting, whitespace
// normalization, formatting-quality heuristics, and filename sanitization.
//
// Splitting treats a cue as one flowed block (embedded line breaks are
// ignored), tokenizes on whitespace, and picks the word boundary whose first
// half is closest to half the total character count. The resulting length
// ratio is what callers use to allocate time proportionally.
package textutil

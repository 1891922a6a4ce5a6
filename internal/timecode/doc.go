// Package timecode converts between the SRT timestamp form HH:MM:SS,mmm and
// numeric seconds, and performs millisecond-exact arithmetic on timestamps.
//
// All conversions route through total integer milliseconds so that repeated
// parse/format cycles and additions never accumulate floating-point drift.
// The strict parser accepts only the canonical SRT shape; ParseFlexible is a
// deliberately separate best-effort normalizer for free-text user input.
package timecode

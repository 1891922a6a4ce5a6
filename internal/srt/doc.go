// Package srt parses and serializes SubRip subtitle files.
//
// Parsing is lenient: blocks missing an id line or a timing line are skipped
// and reported as warnings so one malformed block never aborts a file.
// Serialization always emits the canonical shape (dense ids, HH:MM:SS,mmm
// timestamps, blank-line separators, trailing newline) and is a faithful
// inverse of Parse for any document this system produced. File reading
// detects UTF-8 and UTF-16 byte-order marks and falls back to Windows-1252
// for non-UTF data; writing prefixes a UTF-8 BOM for player compatibility.
package srt

package main

import (
	"fmt"
	"strconv"
	"strings"

	"subfix/internal/timeline"
)

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64) + "s"
}

// parseSegmentIndex resolves a 1-based cue number argument against the
// document.
func parseSegmentIndex(doc timeline.Document, arg string) (timeline.Segment, error) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return timeline.Segment{}, fmt.Errorf("cue number must be an integer, got %q", arg)
	}
	seg, ok := doc.FindByIndex(index)
	if !ok {
		return timeline.Segment{}, fmt.Errorf("cue %d out of range (document has %d cues)", index, doc.Len())
	}
	return seg, nil
}

// issueSummary lists the problems a segment currently has, empty when clean.
func issueSummary(seg timeline.Segment) []string {
	var issues []string
	if seg.IsLong {
		issues = append(issues, "too many characters")
	}
	if seg.IsTooShort {
		issues = append(issues, "too short")
	}
	if seg.IsTooLong {
		issues = append(issues, "too long")
	}
	if seg.HasConflict {
		issues = append(issues, "timing conflict")
	}
	return issues
}

func countIssues(doc timeline.Document) int {
	count := 0
	for _, seg := range doc.Segments {
		if len(issueSummary(seg)) > 0 {
			count++
		}
	}
	return count
}

package srt

import (
	"fmt"
	"strconv"
	"strings"

	"subfix/internal/timecode"
	"subfix/internal/timeline"
)

// Warning describes a block that could not be parsed and was skipped.
type Warning struct {
	Block  int
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("block %d skipped: %s", w.Block, w.Reason)
}

// Parse converts raw SRT text into a refreshed document. Blocks are
// separated by blank lines; within a block the first bare-integer line is
// the serial id and the first line containing "-->" is the timing line.
// Everything after the timing line is cue text with line breaks preserved.
// Conflict and limit flags are computed once over the full resulting set,
// since conflicts are inherently cross-block.
func Parse(raw string, limits timeline.Limits) (timeline.Document, []Warning) {
	content := strings.ReplaceAll(raw, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.TrimSpace(content)

	var segments []timeline.Segment
	var warnings []Warning
	if content == "" {
		return timeline.New(segments).Refresh(limits), warnings
	}

	for blockNum, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		seg, reason := parseBlock(block)
		if reason != "" {
			warnings = append(warnings, Warning{Block: blockNum + 1, Reason: reason})
			continue
		}
		segments = append(segments, seg)
	}

	return timeline.New(segments).Refresh(limits), warnings
}

func parseBlock(block string) (timeline.Segment, string) {
	lines := strings.Split(block, "\n")

	idLine := -1
	for i, line := range lines {
		if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			idLine = i
			break
		}
	}
	if idLine < 0 {
		return timeline.Segment{}, "no id line"
	}

	timingLine := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			timingLine = i
			break
		}
	}
	if timingLine < 0 {
		return timeline.Segment{}, "no timing line"
	}

	parts := strings.SplitN(lines[timingLine], "-->", 2)
	start, err := timecode.Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return timeline.Segment{}, fmt.Sprintf("bad start time: %v", err)
	}
	end, err := timecode.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return timeline.Segment{}, fmt.Sprintf("bad end time: %v", err)
	}

	text := strings.Join(lines[timingLine+1:], "\n")
	return timeline.NewSegment(start, end, text), ""
}

// Serialize renders the document in canonical SRT form: id, timing line,
// text, blocks joined by one blank line, trailing newline guaranteed.
func Serialize(doc timeline.Document) string {
	var b strings.Builder
	for i, seg := range doc.Segments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n",
			seg.Index, timecode.Format(seg.Start), timecode.Format(seg.End), seg.Text)
	}
	return b.String()
}

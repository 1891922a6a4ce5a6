package main

import (
	"strings"
	"testing"

	"subfix/internal/testsupport"
)

func TestFmtNormalizesFile(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "messy.srt",
		"7\r\n00:00:01,000 --> 00:00:04,000\r\nFirst cue.\r\n\r\n\r\n12\r\n00:00:05,000 --> 00:00:08,000\r\nSecond cue.\r\n")

	out, _, err := runCLI(t, configPath, "fmt", "--write", input)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	requireContains(t, out, "(2 cues)")

	content := readOutput(t, input)
	requireContains(t, content, "1\n00:00:01,000 --> 00:00:04,000\nFirst cue.")
	requireContains(t, content, "2\n00:00:05,000 --> 00:00:08,000\nSecond cue.")
	if strings.Contains(content, "\r") {
		t.Fatal("expected no carriage returns in canonical output")
	}
}

func TestFmtReportsDroppedBlocks(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "broken.srt", `1
00:00:01,000 --> 00:00:04,000
Good cue.

2
not a timing line
Bad cue.
`)

	out, _, err := runCLI(t, configPath, "fmt", input)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	requireContains(t, out, "warning:")
	requireContains(t, out, "(1 cues)")
}

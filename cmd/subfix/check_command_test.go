package main

import (
	"testing"

	"subfix/internal/testsupport"
)

func TestCheckReportsProblems(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "movie.srt", `1
00:00:01,000 --> 00:00:01,400
Blink and you miss it.

2
00:00:02,000 --> 00:00:12,000
This cue lingers on screen for far longer than anyone needs it to.
`)

	out, _, err := runCLI(t, configPath, "check", input)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "2 cues, 2 with problems")
	requireContains(t, out, "too short")
	requireContains(t, out, "too long")
}

func TestCheckCleanFile(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "clean.srt", twoCueSubtitle)

	out, _, err := runCLI(t, configPath, "check", input)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "2 cues, 0 with problems")
}

func TestCheckJSONOutput(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "movie.srt", `1
00:00:01,000 --> 00:00:01,400
Too quick.
`)

	out, _, err := runCLI(t, configPath, "check", "--json", input)
	if err != nil {
		t.Fatalf("check --json: %v", err)
	}
	requireContains(t, out, `"problems"`)
	requireContains(t, out, `"too short"`)
}

func TestCheckAllListsCleanCues(t *testing.T) {
	configPath := writeTestConfig(t)
	input := testsupport.WriteSRT(t, "clean.srt", twoCueSubtitle)

	out, _, err := runCLI(t, configPath, "check", "--all", input)
	if err != nil {
		t.Fatalf("check --all: %v", err)
	}
	requireContains(t, out, "00:00:01,000 --> 00:00:04,000")
	requireContains(t, out, "00:00:05,000 --> 00:00:08,500")
	requireContains(t, out, "Splittable")
}

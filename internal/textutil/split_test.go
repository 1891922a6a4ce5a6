package textutil

import (
	"math"
	"strings"
	"testing"
)

func TestSplitBalanced(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		wantFirst  string
		wantSecond string
	}{
		{
			name:       "even halves",
			input:      "hello there world again",
			wantFirst:  "hello there",
			wantSecond: "world again",
		},
		{
			name:       "two words",
			input:      "hello world",
			wantFirst:  "hello",
			wantSecond: "world",
		},
		{
			name:       "line breaks flattened",
			input:      "hello there\nworld again",
			wantFirst:  "hello there",
			wantSecond: "world again",
		},
		{
			name:       "uneven words",
			input:      "a b c longerword",
			wantFirst:  "a b c",
			wantSecond: "longerword",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, second, ratio := SplitBalanced(tc.input)
			if first != tc.wantFirst || second != tc.wantSecond {
				t.Fatalf("SplitBalanced(%q) = %q, %q", tc.input, first, second)
			}
			wantRatio := float64(len(first)) / float64(len(first)+len(second))
			if math.Abs(ratio-wantRatio) > 1e-9 {
				t.Errorf("ratio = %v, want %v", ratio, wantRatio)
			}
		})
	}
}

func TestSplitBalancedSingleWord(t *testing.T) {
	first, second, ratio := SplitBalanced("unsplittable")
	if first != "unsplittable" || second != "" || ratio != 1 {
		t.Fatalf("got %q, %q, %v", first, second, ratio)
	}

	first, second, ratio = SplitBalanced("")
	if first != "" || second != "" || ratio != 1 {
		t.Fatalf("empty input: got %q, %q, %v", first, second, ratio)
	}
}

func TestSplitBalancedTieBreaksEarliest(t *testing.T) {
	// Boundaries after "ab" and after "xx" are both 1.5 characters from the
	// midpoint of "ab xx c"; the earliest one must win.
	first, second, _ := SplitBalanced("ab xx c")
	if first != "ab" || second != "xx c" {
		t.Fatalf("split = %q / %q", first, second)
	}
}

func TestSplitLineToFit(t *testing.T) {
	if got := SplitLineToFit("short line", 37); len(got) != 1 || got[0] != "short line" {
		t.Fatalf("within limit: got %v", got)
	}

	long := "this line is definitely longer than the configured line limit"
	got := SplitLineToFit(long, 20)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %v", got)
	}
	if strings.Join(got, " ") != long {
		t.Errorf("split lost content: %v", got)
	}

	// A single overlong word cannot be broken.
	word := strings.Repeat("x", 50)
	if got := SplitLineToFit(word, 20); len(got) != 1 || got[0] != word {
		t.Errorf("overlong word: got %v", got)
	}
}

func TestIsSplittable(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"hello world again", true},
		{"a reasonably long line", true},
		{"hi", false},
		{"oneword", false},
		{"hi there", false}, // two words but too short
		{"", false},
		{"  spaced   out but long enough  ", true},
	}
	for _, tc := range cases {
		if got := IsSplittable(tc.input); got != tc.want {
			t.Errorf("IsSplittable(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestVisibleLength(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"hello\nworld", 10},
		{"hello\r\nworld", 10},
		{"héllo", 5},
	}
	for _, tc := range cases {
		if got := VisibleLength(tc.input); got != tc.want {
			t.Errorf("VisibleLength(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	got := CollapseWhitespace("  hello \n\n world\tagain ")
	if got != "hello world again" {
		t.Fatalf("got %q", got)
	}
}

func TestHasDanglingFormatting(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"normal text", false},
		{", starts with comma", true},
		{"... ellipsis start", true},
		{") closes nothing", true},
		{"] closes nothing", true},
		{"opens nothing (", true},
		{"opens nothing [", true},
		{"balanced (brackets) here", false},
		{"", false},
		{"?", true},
	}
	for _, tc := range cases {
		if got := HasDanglingFormatting(tc.input); got != tc.want {
			t.Errorf("HasDanglingFormatting(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

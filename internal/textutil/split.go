package textutil

import (
	"math"
	"strings"
	"unicode/utf8"
)

// minSplittableLength is the trimmed character count a cue must exceed before
// splitting it is worthwhile; shorter cues produce degenerate halves.
const minSplittableLength = 10

// SplitBalanced divides text at the word boundary closest to half its total
// character count. Embedded line breaks are discarded first so the text is
// treated as a single flowed block. The scan keeps the earliest boundary with
// the smallest distance to the midpoint. The returned ratio is
// len(first)/(len(first)+len(second)) and drives proportional time
// allocation downstream.
//
// Text with fewer than two words cannot be split: the whole (flattened) text
// comes back as first with an empty second and ratio 1. Callers treat an
// empty second part as "not splittable".
func SplitBalanced(text string) (first, second string, ratio float64) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return "", "", 1
	}
	if len(words) == 1 {
		return words[0], "", 1
	}

	total := utf8.RuneCountInString(strings.Join(words, " "))
	half := float64(total) / 2

	bestIndex := 1
	bestDistance := math.Inf(1)
	length := 0
	for i := 1; i < len(words); i++ {
		length += utf8.RuneCountInString(words[i-1])
		if i > 1 {
			length++ // joining space
		}
		distance := math.Abs(float64(length) - half)
		if distance < bestDistance {
			bestDistance = distance
			bestIndex = i
		}
	}

	first = strings.Join(words[:bestIndex], " ")
	second = strings.Join(words[bestIndex:], " ")
	firstLen := utf8.RuneCountInString(first)
	secondLen := utf8.RuneCountInString(second)
	return first, second, float64(firstLen) / float64(firstLen+secondLen)
}

// SplitLineToFit returns the line unchanged when it fits maxLineChars, and
// otherwise breaks it once at the balanced word boundary. A single call
// yields at most two lines; a single overlong word is returned unsplit.
func SplitLineToFit(line string, maxLineChars int) []string {
	if VisibleLength(line) <= maxLineChars {
		return []string{line}
	}
	first, second, _ := SplitBalanced(line)
	if second == "" {
		return []string{line}
	}
	return []string{first, second}
}

// IsSplittable reports whether text has enough content for a meaningful
// split: at least two words and a trimmed length over ten characters.
func IsSplittable(text string) bool {
	if len(strings.Fields(text)) < 2 {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(text)) > minSplittableLength
}

// VisibleLength counts the characters of text excluding line breaks, the
// same count subtitle character limits are defined over.
func VisibleLength(text string) int {
	count := 0
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		count++
	}
	return count
}

// CollapseWhitespace folds every run of whitespace, line breaks included,
// into a single space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

const (
	leadingPunctuation = ".,;:!?…"
	closingBrackets    = ")]}»"
	openingBrackets    = "([{«"
)

// HasDanglingFormatting flags text that was probably split at the wrong
// point: it starts with punctuation, starts with a closing bracket, or ends
// with an opening bracket.
func HasDanglingFormatting(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	firstRune, _ := utf8.DecodeRuneInString(trimmed)
	lastRune, _ := utf8.DecodeLastRuneInString(trimmed)
	if strings.ContainsRune(leadingPunctuation, firstRune) {
		return true
	}
	if strings.ContainsRune(closingBrackets, firstRune) {
		return true
	}
	return strings.ContainsRune(openingBrackets, lastRune)
}

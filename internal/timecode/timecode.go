package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat indicates a timestamp that does not match HH:MM:SS,mmm.
var ErrInvalidFormat = errors.New("invalid timecode format")

var strictPattern = regexp.MustCompile(`^(\d{2,}):([0-5]\d):([0-5]\d),(\d{3})$`)

// Parse converts a canonical SRT timestamp to seconds. Only the exact
// HH:MM:SS,mmm shape is accepted; hours may exceed two digits.
func Parse(value string) (float64, error) {
	match := strictPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	millis, _ := strconv.Atoi(match[4])
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}

// Format converts seconds to the canonical SRT timestamp. The conversion
// goes through total integer milliseconds; deriving the fields by integer
// division avoids the misrounding that chained float subtraction produces at
// millisecond boundaries. Values below zero format as 00:00:00,000.
func Format(seconds float64) string {
	total := int64(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}
	hours := total / 3_600_000
	total -= hours * 3_600_000
	minutes := total / 60_000
	total -= minutes * 60_000
	secs := total / 1000
	millis := total - secs*1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// AddSeconds shifts a timestamp by delta seconds (negative deltas allowed).
// The sum is computed in integer milliseconds. Results below zero floor at
// 00:00:00,000 through Format; callers that need a different clamp apply it
// before calling.
func AddSeconds(value string, delta float64) (string, error) {
	seconds, err := Parse(value)
	if err != nil {
		return "", err
	}
	totalMs := int64(math.Round(seconds*1000)) + int64(math.Round(delta*1000))
	return Format(float64(totalMs) / 1000), nil
}

// ReduceByOneMillisecond subtracts exactly 1ms, floored at zero.
func ReduceByOneMillisecond(value string) (string, error) {
	seconds, err := Parse(value)
	if err != nil {
		return "", err
	}
	totalMs := int64(math.Round(seconds*1000)) - 1
	if totalMs < 0 {
		totalMs = 0
	}
	return Format(float64(totalMs) / 1000), nil
}

// Round snaps a seconds value to millisecond resolution.
func Round(seconds float64) float64 {
	return math.Round(seconds*1000) / 1000
}

// Valid reports whether value parses as a canonical timestamp.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

var flexibleStrip = regexp.MustCompile(`[^0-9:,]`)

// ParseFlexible normalizes free-text input to a canonical timestamp on a
// best-effort basis. Already-valid input is returned unchanged. Otherwise the
// input is stripped to digits, colons and commas, then reinterpreted:
//
//   - "M:SS" or "MM:SS" as minutes and seconds
//   - "H:MM:SS" or "HH:MM:SS" as hours, minutes and seconds
//   - a bare digit run below 100 as seconds, below 10000 as MMSS, and below
//     1000000 as HHMMSS
//
// A trailing ",mmm" group is honored in the colon forms. Input that fits none
// of these shapes is returned unchanged; callers detect failure by comparing
// the result against the input.
func ParseFlexible(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if Valid(trimmed) {
		return trimmed
	}

	cleaned := flexibleStrip.ReplaceAllString(trimmed, "")
	if cleaned == "" {
		return raw
	}

	millis := 0
	if comma := strings.IndexByte(cleaned, ','); comma >= 0 {
		msPart := cleaned[comma+1:]
		cleaned = cleaned[:comma]
		if msPart != "" {
			parsed, err := strconv.Atoi(msPart)
			if err != nil || parsed > 999 {
				return raw
			}
			millis = parsed
		}
	}

	if strings.Contains(cleaned, ":") {
		return fromColonForm(raw, cleaned, millis)
	}
	return fromDigitRun(raw, cleaned, millis)
}

func fromColonForm(raw, cleaned string, millis int) string {
	parts := strings.Split(cleaned, ":")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return raw
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return raw
		}
		values = append(values, v)
	}
	var hours, minutes, seconds int
	switch len(values) {
	case 2:
		minutes, seconds = values[0], values[1]
	case 3:
		hours, minutes, seconds = values[0], values[1], values[2]
	default:
		return raw
	}
	if minutes > 59 || seconds > 59 {
		return raw
	}
	return Format(float64(hours*3600+minutes*60+seconds) + float64(millis)/1000)
}

func fromDigitRun(raw, cleaned string, millis int) string {
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return raw
	}
	var hours, minutes, seconds int
	switch {
	case value < 100:
		seconds = value
	case value < 10000:
		minutes, seconds = value/100, value%100
	case value < 1_000_000:
		hours, minutes, seconds = value/10000, (value/100)%100, value%100
	default:
		return raw
	}
	// Out-of-range minute/second fields roll over through Format, matching
	// the permissive digit-run interpretation ("99" is 99 seconds).
	return Format(float64(hours*3600+minutes*60+seconds) + float64(millis)/1000)
}

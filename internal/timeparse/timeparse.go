// Package timeparse extracts structured time and duration information from
// short free-form activity descriptions ("coded for 2 hours", "meeting at
// 2:30pm", "worked 9-5") with deterministic pattern rules. It is purely
// functional: no state is kept between calls and no call can fail.
package timeparse

import "strings"

// DetectTimePatterns scans the text with every detector and returns the
// resolved, non-overlapping detections ordered by start offset.
func DetectTimePatterns(text string) []Detection {
	return resolveOverlaps(allCandidates(text))
}

// HasTimePattern reports whether the text contains at least one time or
// duration expression.
func HasTimePattern(text string) bool {
	return len(DetectTimePatterns(text)) > 0
}

// ParseTimeFromText composes all detections in the text into a single
// best-effort start/end pair plus the activity text with time expressions
// removed. currentTime is an optional "HH:MM" anchor used to resolve
// duration-only text ("worked 2 hours" ending now); pass "" for none.
func ParseTimeFromText(text string, currentTime string) ParsedTime {
	detections := DetectTimePatterns(text)
	parsed := ParsedTime{
		CleanedActivity: cleanedActivity(text, detections),
		HasTimePattern:  len(detections) > 0,
		Detections:      detections,
	}
	parsed.StartTime, parsed.EndTime = composeTimes(detections, currentTime)
	return parsed
}

// cleanedActivity removes every detection span from the text and collapses
// the remaining whitespace. Text without detections passes through
// unmodified.
func cleanedActivity(text string, detections []Detection) string {
	if len(detections) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, d := range detections {
		b.WriteString(text[prev:d.StartIndex])
		prev = d.EndIndex
	}
	b.WriteString(text[prev:])
	return strings.Join(strings.Fields(b.String()), " ")
}

// composeTimes resolves the final start/end pair from the detections. A
// two-sided range wins outright; otherwise the first time-ish detection
// pins the start, the first end-only range pins the end, and a duration
// fills in whichever side is open, falling back to the anchor when the
// text carried nothing but the duration.
func composeTimes(detections []Detection, currentTime string) (*string, *string) {
	var start, end string
	duration := -1

	for _, d := range detections {
		switch d.Type {
		case TypeRange:
			if d.StartTime != "" && d.EndTime != "" {
				return ptr(d.StartTime), ptr(d.EndTime)
			}
			if d.StartTime != "" && start == "" {
				start = d.StartTime
			}
			if d.EndTime != "" && end == "" {
				end = d.EndTime
			}
		case TypeTime:
			if start == "" {
				start = d.StartTime
			}
		case TypeDuration:
			if duration < 0 {
				duration = d.DurationMinutes
			}
		}
	}

	switch {
	case start != "" && end != "":
	case start != "" && duration >= 0:
		m, _ := timeToMinutes(start)
		end = minutesToTime(m + duration)
	case end != "" && duration >= 0:
		m, _ := timeToMinutes(end)
		start = minutesToTime(m - duration)
	case start == "" && end == "" && duration >= 0:
		if anchor, ok := timeToMinutes(currentTime); ok {
			start = minutesToTime(anchor - duration)
			end = minutesToTime(anchor)
		}
	}

	return ptr(start), ptr(end)
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

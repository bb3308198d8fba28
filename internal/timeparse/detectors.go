package timeparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shared regex fragments. Durations tolerate runs of spaces/tabs between the
// number and its unit; optional wrappers ("for", approximation markers) are
// grouped so an absent wrapper consumes no text.
const (
	approxPart  = `(?:(?:about|around|approximately)[ \t]+|~[ \t]*)?`
	forPart     = `(?:for[ \t]+)?`
	hourUnits   = `hours?|hrs?|h`
	minuteUnits = `minutes?|mins?|m`
	clockPart   = `(\d{1,2})(?::([0-5]\d))?(?:[ \t]*(am|pm))?`
	keywordPart = `(noon|midday|midnight|morning|afternoon|evening)`
)

var (
	durNumberUnitRe = regexp.MustCompile(`(?i)` + forPart + approxPart + `(\d+(?:\.\d+)?)[ \t]*(` + hourUnits + `|` + minuteUnits + `)\b`)
	durAndAHalfRe   = regexp.MustCompile(`(?i)` + forPart + approxPart + `(\d+)[ \t]+and[ \t]+a[ \t]+half[ \t]+(?:` + hourUnits + `)\b`)
	durFractionRe   = regexp.MustCompile(`(?i)` + forPart + approxPart + `(?:an?[ \t]+)?(half|quarter)[ \t]+(?:an?[ \t]+)?(?:` + hourUnits + `)\b`)

	clockTimeRe   = regexp.MustCompile(`(?i)(\d{1,2})(?::([0-5]\d))?[ \t]*(am|pm)\b`)
	keywordTimeRe = regexp.MustCompile(`(?i)(?:this[ \t]+)?` + keywordPart + `\b`)
	mealRe        = regexp.MustCompile(`(?i)(breakfast|lunch|dinner)\b`)

	atBareRe    = regexp.MustCompile(`(?i)at[ \t]+(\d{1,2})\b`)
	atTrailerRe = regexp.MustCompile(`(?i)^[ \t]*(?:am|pm)\b`)

	rangePairRe = regexp.MustCompile(`(?i)(?:from[ \t]+)?` + clockPart + `(?:[ \t]+to[ \t]+|[ \t]*[-–][ \t]*)` + clockPart)
	untilRe     = regexp.MustCompile(`(?i)(?:until|till)[ \t]+(?:` + clockPart + `|` + keywordPart + `)`)
	sinceRe     = regexp.MustCompile(`(?i)(?:since|from)[ \t]+(?:` + clockPart + `|` + keywordPart + `)`)
	startingRe  = regexp.MustCompile(`(?i)starting[ \t]+at[ \t]+(?:` + clockPart + `|` + keywordPart + `)`)

	modifierRe = regexp.MustCompile(`(?i)(?:quick|brief)[ \t]+(?:call|meeting|sync|standup|check|review)\b`)
	relDurRe   = regexp.MustCompile(`(?i)(?:last|past)[ \t]+(?:(\d+(?:\.\d+)?)[ \t]*)?(` + hourUnits + `|` + minuteUnits + `)\b`)
)

// Fixed minutes for time-of-day keywords and meal ranges.
var keywordMinutes = map[string]int{
	"noon":      12 * 60,
	"midday":    12 * 60,
	"midnight":  0,
	"morning":   9 * 60,
	"afternoon": 14 * 60,
	"evening":   18 * 60,
}

var mealRanges = map[string][2]int{
	"breakfast": {7 * 60, 8 * 60},
	"lunch":     {12 * 60, 13 * 60},
	"dinner":    {18 * 60, 19 * 60},
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundaryOK rejects matches that sit inside a larger word or number, so
// "blast hour" and "9-11" inside "#123-115" stay untouched.
func boundaryOK(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// spanOK applies the negative constraints shared by every detector: word
// boundaries, issue-number hashes ("#123") and version strings ("2.0.1").
func spanOK(text string, start, end int) bool {
	if !boundaryOK(text, start, end) {
		return false
	}
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); r == '#' {
			return false
		}
	}
	// A dot flanked by digits on the span edge marks a version string.
	if end+1 < len(text) && text[end] == '.' && isASCIIDigit(text[end+1]) {
		return false
	}
	if start >= 2 && text[start-1] == '.' && isASCIIDigit(text[start-2]) {
		return false
	}
	return true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// group returns the text of a capture group from a FindAllStringSubmatchIndex
// row, or "" when the group did not participate in the match.
func group(text string, m []int, n int) string {
	if 2*n+1 >= len(m) || m[2*n] < 0 {
		return ""
	}
	return text[m[2*n]:m[2*n+1]]
}

func isHourUnit(unit string) bool {
	return strings.HasPrefix(strings.ToLower(unit), "h")
}

// unitMinutes converts a numeral and its unit word into whole minutes.
func unitMinutes(number, unit string) (int, bool) {
	n, ok := parseNumber(number)
	if !ok || n < 0 {
		return 0, false
	}
	if isHourUnit(unit) {
		return hoursToMinutes(n), true
	}
	return int(math.Round(n)), true
}

// detectDurations finds explicit duration phrases: "2 hours", "90m",
// "1.5 hours", "half an hour", "3 and a half hours", with optional "for"
// and approximation wrappers extending the match.
func detectDurations(text string) []candidate {
	var out []candidate
	for _, m := range durAndAHalfRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		n, err := strconv.Atoi(group(text, m, 1))
		if err != nil || n < 0 {
			continue
		}
		out = append(out, durationCandidate(text, m[0], m[1], n*60+30))
	}
	for _, m := range durFractionRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		minutes := 30
		if strings.EqualFold(group(text, m, 1), "quarter") {
			minutes = 15
		}
		out = append(out, durationCandidate(text, m[0], m[1], minutes))
	}
	for _, m := range durNumberUnitRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		minutes, ok := unitMinutes(group(text, m, 1), group(text, m, 2))
		if !ok {
			continue
		}
		out = append(out, durationCandidate(text, m[0], m[1], minutes))
	}
	return out
}

func durationCandidate(text string, start, end, minutes int) candidate {
	return candidate{
		Detection: Detection{
			Type:            TypeDuration,
			MatchedText:     text[start:end],
			StartIndex:      start,
			EndIndex:        end,
			DurationMinutes: minutes,
		},
		priority: prioDuration,
	}
}

// detectClockTimes finds explicit 12-hour clock readings ("2:30pm", "7 am"),
// time-of-day keywords ("noon", "this evening") and meal words, which carry
// fixed ranges. A keyword preceded by a greeting ("good morning") is not a
// time reference.
func detectClockTimes(text string) []candidate {
	var out []candidate
	for _, m := range clockTimeRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		minutes, ok := explicitClock(group(text, m, 1), group(text, m, 2), group(text, m, 3))
		if !ok {
			continue
		}
		out = append(out, timeCandidate(text, m[0], m[1], minutes, prioClockTime))
	}
	for _, m := range keywordTimeRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) || precededByGreeting(text, m[0]) {
			continue
		}
		minutes := keywordMinutes[strings.ToLower(group(text, m, 1))]
		out = append(out, timeCandidate(text, m[0], m[1], minutes, prioClockTime))
	}
	for _, m := range mealRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		span := mealRanges[strings.ToLower(group(text, m, 1))]
		out = append(out, candidate{
			Detection: Detection{
				Type:        TypeRange,
				MatchedText: text[m[0]:m[1]],
				StartIndex:  m[0],
				EndIndex:    m[1],
				StartTime:   minutesToTime(span[0]),
				EndTime:     minutesToTime(span[1]),
			},
			priority: prioClockTime,
		})
	}
	return out
}

func timeCandidate(text string, start, end, minutes, priority int) candidate {
	return candidate{
		Detection: Detection{
			Type:        TypeTime,
			MatchedText: text[start:end],
			StartIndex:  start,
			EndIndex:    end,
			StartTime:   minutesToTime(minutes),
		},
		priority: priority,
	}
}

// explicitClock resolves an hour/minute/meridiem triple where the meridiem
// was written out. The hour must be a valid 12-hour reading.
func explicitClock(hourStr, minStr, meridiem string) (int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute := 0
	if minStr != "" {
		if minute, err = strconv.Atoi(minStr); err != nil {
			return 0, false
		}
	}
	return resolveMeridiem(hour, minute, meridiem), true
}

// precededByGreeting reports whether the word before offset is a greeting,
// which turns a time-of-day keyword into a salutation.
func precededByGreeting(text string, offset int) bool {
	before := strings.TrimRight(text[:offset], " \t")
	fields := strings.Fields(before)
	if len(fields) == 0 {
		return false
	}
	return strings.EqualFold(fields[len(fields)-1], "good")
}

// detectAtTimes finds "at N" with a bare hour and no colon or meridiem,
// resolving N with the business-hours heuristic.
func detectAtTimes(text string) []candidate {
	var out []candidate
	for _, m := range atBareRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		rest := text[m[1]:]
		if strings.HasPrefix(rest, ":") || atTrailerRe.MatchString(rest) {
			continue
		}
		hour, err := strconv.Atoi(group(text, m, 1))
		if err != nil || hour > 23 {
			continue
		}
		out = append(out, timeCandidate(text, m[0], m[1], inferBareHour(hour)*60, prioAtTime))
	}
	return out
}

// detectRanges finds two-sided ranges ("from 9am to 5pm", "9-11") and
// one-sided phrases: "until"/"till" pin the end, "since"/"from"/"starting at"
// pin the start.
func detectRanges(text string) []candidate {
	var out []candidate
	for _, m := range rangePairRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		start, end, ok := resolveRangePair(
			group(text, m, 1), group(text, m, 2), group(text, m, 3),
			group(text, m, 4), group(text, m, 5), group(text, m, 6),
		)
		if !ok {
			continue
		}
		out = append(out, rangeCandidate(text, m[0], m[1], minutesToTime(start), minutesToTime(end)))
	}
	out = append(out, oneSidedRanges(text, untilRe, false)...)
	out = append(out, oneSidedRanges(text, sinceRe, true)...)
	out = append(out, oneSidedRanges(text, startingRe, true)...)
	return out
}

func rangeCandidate(text string, start, end int, startTime, endTime string) candidate {
	return candidate{
		Detection: Detection{
			Type:        TypeRange,
			MatchedText: text[start:end],
			StartIndex:  start,
			EndIndex:    end,
			StartTime:   startTime,
			EndTime:     endTime,
		},
		priority: prioRange,
	}
}

// oneSidedRanges extracts "until X" style phrases where X is a clock reading
// or a time-of-day keyword. Bare hours take the business-hours heuristic.
func oneSidedRanges(text string, re *regexp.Regexp, isStart bool) []candidate {
	var out []candidate
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		minutes, ok := sideMinutes(
			group(text, m, 1), group(text, m, 2), group(text, m, 3), group(text, m, 4),
		)
		if !ok {
			continue
		}
		c := rangeCandidate(text, m[0], m[1], "", "")
		if isStart {
			c.StartTime = minutesToTime(minutes)
		} else {
			c.EndTime = minutesToTime(minutes)
		}
		out = append(out, c)
	}
	return out
}

// sideMinutes resolves one side of a range: keyword, explicit clock reading,
// or bare hour via the business-hours heuristic.
func sideMinutes(hourStr, minStr, meridiem, keyword string) (int, bool) {
	if keyword != "" {
		return keywordMinutes[strings.ToLower(keyword)], true
	}
	if meridiem != "" {
		return explicitClock(hourStr, minStr, meridiem)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, false
	}
	minute := 0
	if minStr != "" {
		if minute, err = strconv.Atoi(minStr); err != nil {
			return 0, false
		}
	}
	return inferBareHour(hour)*60 + minute, true
}

// resolveRangePair normalizes both sides of a two-sided range. When both
// sides are bare the pair shares one inferred meridiem, flipped for the end
// when the second number reads smaller ("9 to 5" spans the working day).
// When exactly one side is explicit the bare side follows it, flipped only
// to keep the range progressing forward.
func resolveRangePair(h1s, m1s, mer1, h2s, m2s, mer2 string) (int, int, bool) {
	h1, m1, ok := rangeSideNumbers(h1s, m1s)
	if !ok {
		return 0, 0, false
	}
	h2, m2, ok := rangeSideNumbers(h2s, m2s)
	if !ok {
		return 0, 0, false
	}

	switch {
	case mer1 != "" && mer2 != "":
		start, ok := explicitClock(h1s, m1s, mer1)
		if !ok {
			return 0, 0, false
		}
		end, ok2 := explicitClock(h2s, m2s, mer2)
		if !ok2 {
			return 0, 0, false
		}
		return start, end, true

	case mer1 != "":
		start, ok := explicitClock(h1s, m1s, mer1)
		if !ok {
			return 0, 0, false
		}
		return start, bareFollowing(h2, m2, strings.ToLower(mer1), start, false), true

	case mer2 != "":
		end, ok := explicitClock(h2s, m2s, mer2)
		if !ok {
			return 0, 0, false
		}
		return bareFollowing(h1, m1, strings.ToLower(mer2), end, true), end, true

	default:
		return barePair(h1, m1, h2, m2)
	}
}

func rangeSideNumbers(hourStr, minStr string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, 0, false
	}
	minute := 0
	if minStr != "" {
		if minute, err = strconv.Atoi(minStr); err != nil {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

// bareFollowing resolves a bare side against the explicit side's meridiem,
// flipping it when the result would not progress forward. isStart marks the
// bare side as the start of the range.
func bareFollowing(hour, minute int, meridiem string, anchor int, isStart bool) int {
	if hour > 12 {
		return hour*60 + minute
	}
	v := resolveMeridiem(hour, minute, meridiem)
	ordered := v > anchor
	if isStart {
		ordered = v < anchor
	}
	if !ordered {
		v = resolveMeridiem(hour, minute, flipMeridiem(meridiem))
	}
	return v
}

// barePair resolves a range where neither side names a meridiem. The first
// number picks the shared meridiem by the business-hours heuristic; the
// second keeps it when it reads later in the day and flips otherwise, so
// "9-11" stays in the morning while "9 to 5" crosses noon. A bare 12 always
// reads as noon.
func barePair(h1, m1, h2, m2 int) (int, int, bool) {
	if h1 > 12 {
		start := h1*60 + m1
		end := h2*60 + m2
		if h2 <= 12 {
			end = resolveBare(h2, m2, "pm")
		}
		return start, end, true
	}
	label := bareMeridiem(h1)
	start := resolveBare(h1, m1, label)
	if h2 > 12 {
		return start, h2*60 + m2, true
	}
	if h2 < h1 || (h2 == h1 && m2 < m1) {
		label = flipMeridiem(label)
	}
	return start, resolveBare(h2, m2, label), true
}

// resolveBare is resolveMeridiem for heuristic labels: a bare 12 means noon
// regardless of the inferred label, since only an explicit "12am" is
// midnight.
func resolveBare(hour, minute int, label string) int {
	if hour == 12 {
		return 12*60 + minute
	}
	return resolveMeridiem(hour, minute, label)
}

// detectModifiers finds "quick"/"brief" immediately before a short-activity
// word, a fixed 15-minute cue. The adjective alone is not a duration.
func detectModifiers(text string) []candidate {
	var out []candidate
	for _, m := range modifierRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		c := durationCandidate(text, m[0], m[1], 15)
		c.priority = prioModifier
		out = append(out, c)
	}
	return out
}

// detectRelativeDurations finds "last hour" / "past 2 hours" / "past 30
// mins" phrases. A bare "last hour" means 60 minutes; a minute unit without
// a number stays untouched ("at the last minute" is an idiom, not a span).
func detectRelativeDurations(text string) []candidate {
	var out []candidate
	for _, m := range relDurRe.FindAllStringSubmatchIndex(text, -1) {
		if !spanOK(text, m[0], m[1]) {
			continue
		}
		number := group(text, m, 1)
		unit := group(text, m, 2)
		var minutes int
		if number == "" {
			if !isHourUnit(unit) {
				continue
			}
			minutes = 60
		} else {
			var ok bool
			if minutes, ok = unitMinutes(number, unit); !ok {
				continue
			}
		}
		c := durationCandidate(text, m[0], m[1], minutes)
		c.priority = prioRelative
		out = append(out, c)
	}
	return out
}

// allCandidates runs every detector over the text. Candidates may overlap;
// the resolver keeps one winner per span.
func allCandidates(text string) []candidate {
	var out []candidate
	out = append(out, detectRanges(text)...)
	out = append(out, detectModifiers(text)...)
	out = append(out, detectRelativeDurations(text)...)
	out = append(out, detectClockTimes(text)...)
	out = append(out, detectDurations(text)...)
	out = append(out, detectAtTimes(text)...)
	return out
}

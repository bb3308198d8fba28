package timeparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// timeToMinutes converts a zero-padded or plain "HH:MM" string to minutes
// since midnight. Returns false for anything that is not a valid clock time.
func timeToMinutes(s string) (int, bool) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

// minutesToTime converts minutes since midnight to "HH:MM", wrapping modulo
// 24h so arithmetic past midnight never overflows the clock.
func minutesToTime(m int) string {
	m = wrapMinutes(m)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func wrapMinutes(m int) int {
	m %= minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return m
}

// resolveMeridiem converts an explicit 12-hour clock reading to minutes.
// 12 AM is 00:MM, 12 PM is 12:MM, otherwise PM adds 12 to a 1-11 hour.
func resolveMeridiem(hour, minute int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	return hour*60 + minute
}

// inferBareHour applies the business-hours heuristic to an hour written
// without a meridiem: 8-12 read as morning (12 meaning noon), 1-7 read as
// afternoon/evening. Hours 13-23 are already unambiguous and pass through.
func inferBareHour(hour int) int {
	if hour >= 1 && hour <= 7 {
		return hour + 12
	}
	return hour
}

// bareMeridiem is the heuristic label inferBareHour implies for a 1-12 hour,
// used when a bare range pair must share one inferred meridiem.
func bareMeridiem(hour int) string {
	if hour >= 8 && hour <= 12 {
		return "am"
	}
	return "pm"
}

func flipMeridiem(meridiem string) string {
	if meridiem == "am" {
		return "pm"
	}
	return "am"
}

// hoursToMinutes converts a possibly fractional hour count to whole minutes,
// rounding to the nearest minute.
func hoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// parseNumber parses an integer or decimal numeral from a matched span.
// Detector regexes only capture digit runs, so failures degrade the
// candidate to a non-match instead of erroring.
func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

package timeparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireSingleDetection asserts one detection whose span sits exactly where
// the matched text appears in the input.
func requireSingleDetection(t *testing.T, text, matched string) Detection {
	t.Helper()
	detections := DetectTimePatterns(text)
	require.Len(t, detections, 1)

	d := detections[0]
	assert.Equal(t, matched, d.MatchedText)
	idx := strings.Index(text, matched)
	require.GreaterOrEqual(t, idx, 0, "matched text not present in input")
	assert.Equal(t, idx, d.StartIndex)
	assert.Equal(t, idx+len(matched), d.EndIndex)
	return d
}

func TestDetectTimePatterns_Durations(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantMinutes int
	}{
		{
			name:        "should detect plain hour count",
			text:        "worked 2 hours",
			wantMatched: "2 hours",
			wantMinutes: 120,
		},
		{
			name:        "should extend match over leading for",
			text:        "worked for 2 hours",
			wantMatched: "for 2 hours",
			wantMinutes: 120,
		},
		{
			name:        "should detect minute count",
			text:        "45 minutes of reading",
			wantMatched: "45 minutes",
			wantMinutes: 45,
		},
		{
			name:        "should detect abbreviated minutes",
			text:        "log 30 mins",
			wantMatched: "30 mins",
			wantMinutes: 30,
		},
		{
			name:        "should detect short form minutes",
			text:        "spent 90m on email",
			wantMatched: "90m",
			wantMinutes: 90,
		},
		{
			name:        "should detect short form hours",
			text:        "2h deep work",
			wantMatched: "2h",
			wantMinutes: 120,
		},
		{
			name:        "should detect abbreviated hours",
			text:        "3 hrs",
			wantMatched: "3 hrs",
			wantMinutes: 180,
		},
		{
			name:        "should convert decimal hours",
			text:        "1.5 hours",
			wantMatched: "1.5 hours",
			wantMinutes: 90,
		},
		{
			name:        "should convert decimal short form",
			text:        "2.5h",
			wantMatched: "2.5h",
			wantMinutes: 150,
		},
		{
			name:        "should detect half hour",
			text:        "half hour",
			wantMatched: "half hour",
			wantMinutes: 30,
		},
		{
			name:        "should detect half an hour",
			text:        "took half an hour",
			wantMatched: "half an hour",
			wantMinutes: 30,
		},
		{
			name:        "should detect quarter hour",
			text:        "quarter hour break",
			wantMatched: "quarter hour",
			wantMinutes: 15,
		},
		{
			name:        "should detect X and a half hours",
			text:        "2 and a half hours",
			wantMatched: "2 and a half hours",
			wantMinutes: 150,
		},
		{
			name:        "should include about prefix",
			text:        "about 2 hours",
			wantMatched: "about 2 hours",
			wantMinutes: 120,
		},
		{
			name:        "should include around prefix",
			text:        "around 30 mins",
			wantMatched: "around 30 mins",
			wantMinutes: 30,
		},
		{
			name:        "should include tilde prefix",
			text:        "~1h",
			wantMatched: "~1h",
			wantMinutes: 60,
		},
		{
			name:        "should include approximately prefix",
			text:        "approximately 15 minutes",
			wantMatched: "approximately 15 minutes",
			wantMinutes: 15,
		},
		{
			name:        "should combine for with approximation",
			text:        "for about 2 hours",
			wantMatched: "for about 2 hours",
			wantMinutes: 120,
		},
		{
			name:        "should tolerate tabs between number and unit",
			text:        "2\thours",
			wantMatched: "2\thours",
			wantMinutes: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeDuration, d.Type)
			assert.Equal(t, tt.wantMinutes, d.DurationMinutes)
		})
	}
}

func TestDetectTimePatterns_ClockTimes(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantStart   string
	}{
		{
			name:        "should detect hour minute with meridiem",
			text:        "meeting at 2:30pm",
			wantMatched: "2:30pm",
			wantStart:   "14:30",
		},
		{
			name:        "should detect bare hour with meridiem",
			text:        "2pm",
			wantMatched: "2pm",
			wantStart:   "14:00",
		},
		{
			name:        "should allow a space before the meridiem",
			text:        "done by 7 pm",
			wantMatched: "7 pm",
			wantStart:   "19:00",
		},
		{
			name:        "should treat 12am as midnight",
			text:        "12am",
			wantMatched: "12am",
			wantStart:   "00:00",
		},
		{
			name:        "should treat 12pm as noon",
			text:        "12pm",
			wantMatched: "12pm",
			wantStart:   "12:00",
		},
		{
			name:        "should carry minutes through midnight rule",
			text:        "12:45am",
			wantMatched: "12:45am",
			wantStart:   "00:45",
		},
		{
			name:        "should map noon keyword",
			text:        "noon",
			wantMatched: "noon",
			wantStart:   "12:00",
		},
		{
			name:        "should map midday keyword",
			text:        "midday",
			wantMatched: "midday",
			wantStart:   "12:00",
		},
		{
			name:        "should map midnight keyword",
			text:        "midnight",
			wantMatched: "midnight",
			wantStart:   "00:00",
		},
		{
			name:        "should map morning keyword",
			text:        "worked the morning",
			wantMatched: "morning",
			wantStart:   "09:00",
		},
		{
			name:        "should map afternoon keyword",
			text:        "afternoon",
			wantMatched: "afternoon",
			wantStart:   "14:00",
		},
		{
			name:        "should include this prefix on keywords",
			text:        "this evening",
			wantMatched: "this evening",
			wantStart:   "18:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeTime, d.Type)
			assert.Equal(t, tt.wantStart, d.StartTime)
			assert.Empty(t, d.EndTime)
		})
	}
}

func TestDetectTimePatterns_GreetingsAreNotTimes(t *testing.T) {
	// Arrange
	greetings := []string{"good morning", "Good Morning", "good evening team", "good afternoon"}

	for _, text := range greetings {
		t.Run(text, func(t *testing.T) {
			// Act + Assert
			assert.Empty(t, DetectTimePatterns(text))
		})
	}
}

func TestDetectTimePatterns_Meals(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "should map breakfast to a morning range",
			text:        "breakfast",
			wantMatched: "breakfast",
			wantStart:   "07:00",
			wantEnd:     "08:00",
		},
		{
			name:        "should map lunch to a midday range",
			text:        "lunch with team",
			wantMatched: "lunch",
			wantStart:   "12:00",
			wantEnd:     "13:00",
		},
		{
			name:        "should map dinner to an evening range",
			text:        "dinner",
			wantMatched: "dinner",
			wantStart:   "18:00",
			wantEnd:     "19:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeRange, d.Type)
			assert.Equal(t, tt.wantStart, d.StartTime)
			assert.Equal(t, tt.wantEnd, d.EndTime)
		})
	}
}

func TestDetectTimePatterns_AtBareNumbers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart string
	}{
		{
			name:      "should infer afternoon for small hours",
			text:      "at 3",
			wantStart: "15:00",
		},
		{
			name:      "should infer morning for business hours",
			text:      "at 9",
			wantStart: "09:00",
		},
		{
			name:      "should read bare 12 as noon",
			text:      "at 12",
			wantStart: "12:00",
		},
		{
			name:      "should infer evening for 7",
			text:      "call at 7",
			wantStart: "19:00",
		},
		{
			name:      "should keep 24-hour values",
			text:      "at 15",
			wantStart: "15:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			detections := DetectTimePatterns(tt.text)

			// Assert
			require.Len(t, detections, 1)
			assert.Equal(t, TypeTime, detections[0].Type)
			assert.Equal(t, tt.wantStart, detections[0].StartTime)
			assert.Contains(t, detections[0].MatchedText, "at ")
		})
	}
}

func TestDetectTimePatterns_AtBareNumberGuards(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "should not fire when a colon follows",
			text: "at 2:30",
		},
		{
			name: "should not fire on invalid hours",
			text: "at 99",
		},
		{
			name: "should not fire on version numbers",
			text: "at 2.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, DetectTimePatterns(tt.text))
		})
	}
}

func TestDetectTimePatterns_Ranges(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "should detect from-to with meridiems",
			text:        "worked from 9am to 5pm",
			wantMatched: "from 9am to 5pm",
			wantStart:   "09:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should detect to without from",
			text:        "9am to 5pm",
			wantMatched: "9am to 5pm",
			wantStart:   "09:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should detect hyphen ranges",
			text:        "9-11",
			wantMatched: "9-11",
			wantStart:   "09:00",
			wantEnd:     "11:00",
		},
		{
			name:        "should detect en-dash ranges",
			text:        "9–11",
			wantMatched: "9–11",
			wantStart:   "09:00",
			wantEnd:     "11:00",
		},
		{
			name:        "should detect hyphen ranges with meridiems",
			text:        "worked 9am-5pm",
			wantMatched: "9am-5pm",
			wantStart:   "09:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should infer afternoon for small bare pairs",
			text:        "3 to 5",
			wantMatched: "3 to 5",
			wantStart:   "15:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should span the working day for 9 to 5",
			text:        "9 to 5",
			wantMatched: "9 to 5",
			wantStart:   "09:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should read bare 12 as noon in pairs",
			text:        "12-2",
			wantMatched: "12-2",
			wantStart:   "12:00",
			wantEnd:     "14:00",
		},
		{
			name:        "should progress forward when the pair wraps noon",
			text:        "11-1",
			wantMatched: "11-1",
			wantStart:   "11:00",
			wantEnd:     "13:00",
		},
		{
			name:        "should not infer a bare side next to an explicit one",
			text:        "meeting 9am to 11",
			wantMatched: "9am to 11",
			wantStart:   "09:00",
			wantEnd:     "11:00",
		},
		{
			name:        "should resolve bare start against explicit end",
			text:        "9 to 5pm",
			wantMatched: "9 to 5pm",
			wantStart:   "09:00",
			wantEnd:     "17:00",
		},
		{
			name:        "should resolve bare end against explicit start",
			text:        "2pm to 4",
			wantMatched: "2pm to 4",
			wantStart:   "14:00",
			wantEnd:     "16:00",
		},
		{
			name:        "should carry minutes through bare pairs",
			text:        "2:30-4",
			wantMatched: "2:30-4",
			wantStart:   "14:30",
			wantEnd:     "16:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeRange, d.Type)
			assert.Equal(t, tt.wantStart, d.StartTime)
			assert.Equal(t, tt.wantEnd, d.EndTime)
		})
	}
}

func TestDetectTimePatterns_OneSidedRanges(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantStart   string
		wantEnd     string
	}{
		{
			name:        "should pin the end for until",
			text:        "until 5pm",
			wantMatched: "until 5pm",
			wantEnd:     "17:00",
		},
		{
			name:        "should infer a bare hour after till",
			text:        "till 5",
			wantMatched: "till 5",
			wantEnd:     "17:00",
		},
		{
			name:        "should accept keywords after until",
			text:        "worked until noon",
			wantMatched: "until noon",
			wantEnd:     "12:00",
		},
		{
			name:        "should pin the start for since",
			text:        "since 9am",
			wantMatched: "since 9am",
			wantStart:   "09:00",
		},
		{
			name:        "should pin the start for from without to",
			text:        "from 9am",
			wantMatched: "from 9am",
			wantStart:   "09:00",
		},
		{
			name:        "should pin the start for starting at",
			text:        "starting at 10",
			wantMatched: "starting at 10",
			wantStart:   "10:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeRange, d.Type)
			assert.Equal(t, tt.wantStart, d.StartTime)
			assert.Equal(t, tt.wantEnd, d.EndTime)
		})
	}
}

func TestDetectTimePatterns_DurationModifiers(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
	}{
		{
			name:        "should detect quick call",
			text:        "quick call",
			wantMatched: "quick call",
		},
		{
			name:        "should detect brief meeting",
			text:        "brief meeting",
			wantMatched: "brief meeting",
		},
		{
			name:        "should detect quick sync",
			text:        "quick sync with design",
			wantMatched: "quick sync",
		},
		{
			name:        "should ignore adjective case",
			text:        "Quick standup",
			wantMatched: "Quick standup",
		},
		{
			name:        "should detect brief review",
			text:        "brief review",
			wantMatched: "brief review",
		},
		{
			name:        "should detect quick check",
			text:        "quick check",
			wantMatched: "quick check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeDuration, d.Type)
			assert.Equal(t, 15, d.DurationMinutes)
		})
	}
}

func TestDetectTimePatterns_ModifierNeedsActivityWord(t *testing.T) {
	// Arrange
	inputs := []string{"quick", "quick brown fox", "briefing the team", "brief", "quickly done"}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			// Act + Assert
			assert.Empty(t, DetectTimePatterns(text))
		})
	}
}

func TestDetectTimePatterns_RelativeDurations(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMatched string
		wantMinutes int
	}{
		{
			name:        "should read last hour as sixty minutes",
			text:        "last hour",
			wantMatched: "last hour",
			wantMinutes: 60,
		},
		{
			name:        "should read past hour as sixty minutes",
			text:        "past hour",
			wantMatched: "past hour",
			wantMinutes: 60,
		},
		{
			name:        "should multiply hour counts",
			text:        "past 2 hours",
			wantMatched: "past 2 hours",
			wantMinutes: 120,
		},
		{
			name:        "should pass minute counts through",
			text:        "last 30 mins",
			wantMatched: "last 30 mins",
			wantMinutes: 30,
		},
		{
			name:        "should convert decimal hour counts",
			text:        "past 1.5 hours",
			wantMatched: "past 1.5 hours",
			wantMinutes: 90,
		},
		{
			name:        "should accept short form units",
			text:        "debugged last 45m",
			wantMatched: "last 45m",
			wantMinutes: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := requireSingleDetection(t, tt.text, tt.wantMatched)
			assert.Equal(t, TypeDuration, d.Type)
			assert.Equal(t, tt.wantMinutes, d.DurationMinutes)
		})
	}
}

func TestDetectTimePatterns_LastMinuteIdiom(t *testing.T) {
	assert.Empty(t, DetectTimePatterns("at the last minute"))
}

func TestDetectTimePatterns_NegativeConstraints(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "should ignore issue numbers",
			text: "issue #123",
		},
		{
			name: "should ignore version strings",
			text: "version 2.0.1",
		},
		{
			name: "should ignore room numbers",
			text: "room 404",
		},
		{
			name: "should ignore bare numbers without keyword context",
			text: "meeting room 12",
		},
		{
			name: "should ignore version ranges",
			text: "upgraded 2.0.1-3.0",
		},
		{
			name: "should ignore counts with unrelated units",
			text: "told them 5 times",
		},
		{
			name: "should ignore numbers inside words",
			text: "win32h build",
		},
		{
			name: "should ignore hash-prefixed spans",
			text: "ticket #2h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, DetectTimePatterns(tt.text))
		})
	}
}

func TestDetectTimePatterns_MixedPositiveAndNegative(t *testing.T) {
	// Act
	detections := DetectTimePatterns("PR #42 took 2 hours")

	// Assert
	require.Len(t, detections, 1)
	assert.Equal(t, TypeDuration, detections[0].Type)
	assert.Equal(t, "2 hours", detections[0].MatchedText)
	assert.Equal(t, 120, detections[0].DurationMinutes)
}

func TestDetectTimePatterns_CaseInsensitivity(t *testing.T) {
	// Arrange
	upper := DetectTimePatterns("2PM")
	lower := DetectTimePatterns("2pm")
	mixed := DetectTimePatterns("2Am")

	// Assert
	require.Len(t, upper, 1)
	require.Len(t, lower, 1)
	require.Len(t, mixed, 1)
	assert.Equal(t, "14:00", upper[0].StartTime)
	assert.Equal(t, upper[0].StartTime, lower[0].StartTime)
	assert.Equal(t, "02:00", mixed[0].StartTime)

	ranged := DetectTimePatterns("FROM 9AM TO 5PM")
	require.Len(t, ranged, 1)
	assert.Equal(t, "09:00", ranged[0].StartTime)
	assert.Equal(t, "17:00", ranged[0].EndTime)
}

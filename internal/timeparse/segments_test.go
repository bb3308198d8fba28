package timeparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestGetHighlightedSegments_RoundTrip(t *testing.T) {
	// Concatenated segment text must reconstruct the input exactly, with or
	// without detections.
	inputs := []string{
		"",
		"no time here",
		"worked for 2 hours",
		"meeting at 2:30pm",
		"worked from 9am to 5pm on the parser",
		"9–11 standup, then lunch",
		"good morning",
		"issue #123",
		"  leading and trailing  ",
		"café ☕ at 3",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			// Act
			segments := GetHighlightedSegments(text, DetectTimePatterns(text))

			// Assert
			assert.Equal(t, text, joinSegments(segments))
		})
	}
}

func TestGetHighlightedSegments_Structure(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Segment
	}{
		{
			name: "should emit a gap before the highlight",
			text: "meeting at 2:30pm",
			expected: []Segment{
				{Text: "meeting at "},
				{Text: "2:30pm", IsHighlighted: true},
			},
		},
		{
			name: "should emit a trailing plain segment",
			text: "2pm onwards",
			expected: []Segment{
				{Text: "2pm", IsHighlighted: true},
				{Text: " onwards"},
			},
		},
		{
			name: "should wrap a highlight between gaps",
			text: "worked 9-11 today",
			expected: []Segment{
				{Text: "worked "},
				{Text: "9-11", IsHighlighted: true},
				{Text: " today"},
			},
		},
		{
			name: "should emit alternating segments for multiple detections",
			text: "at 3 for 30 mins",
			expected: []Segment{
				{Text: "at 3", IsHighlighted: true},
				{Text: " "},
				{Text: "for 30 mins", IsHighlighted: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			segments := GetHighlightedSegments(tt.text, DetectTimePatterns(tt.text))

			// Assert
			require.Len(t, segments, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Text, segments[i].Text)
				assert.Equal(t, want.IsHighlighted, segments[i].IsHighlighted)
				if want.IsHighlighted {
					require.NotNil(t, segments[i].Detection)
					assert.Equal(t, want.Text, segments[i].Detection.MatchedText)
				} else {
					assert.Nil(t, segments[i].Detection)
				}
			}
		})
	}
}

func TestGetHighlightedSegments_NoDetections(t *testing.T) {
	// Act
	segments := GetHighlightedSegments("plain text", nil)

	// Assert
	require.Len(t, segments, 1)
	assert.Equal(t, "plain text", segments[0].Text)
	assert.False(t, segments[0].IsHighlighted)
	assert.Nil(t, segments[0].Detection)
}

func TestGetHighlightedSegments_EmptyText(t *testing.T) {
	// Act
	segments := GetHighlightedSegments("", nil)

	// Assert
	require.Len(t, segments, 1)
	assert.Equal(t, "", segments[0].Text)
}

func TestGetHighlightedSegments_SkipsInvalidDetections(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		detections []Detection
	}{
		{
			name: "should skip detections past the end of the text",
			text: "short",
			detections: []Detection{
				{Type: TypeTime, StartIndex: 50, EndIndex: 60},
			},
		},
		{
			name: "should skip inverted spans",
			text: "some text",
			detections: []Detection{
				{Type: TypeTime, StartIndex: 4, EndIndex: 2},
			},
		},
		{
			name: "should skip the second of two overlapping spans",
			text: "overlapping spans here",
			detections: []Detection{
				{Type: TypeTime, StartIndex: 0, EndIndex: 11},
				{Type: TypeTime, StartIndex: 5, EndIndex: 16},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			segments := GetHighlightedSegments(tt.text, tt.detections)

			// Assert: the walk never fails and always reconstructs the text.
			assert.Equal(t, tt.text, joinSegments(segments))
		})
	}
}

package timeparse

// DetectionType classifies what a matched span represents.
type DetectionType string

const (
	// TypeDuration is a span describing a length of time ("2 hours").
	TypeDuration DetectionType = "duration"
	// TypeTime is a span describing a single clock time ("2:30pm").
	TypeTime DetectionType = "time"
	// TypeRange is a span describing a start/end pair ("9am to 5pm").
	// One-sided phrases ("until 5pm") are ranges with one side empty.
	TypeRange DetectionType = "range"
)

// Detection is a single recognized time expression and its normalized value.
// StartIndex/EndIndex are byte offsets into the original text, half-open.
// Detections returned by DetectTimePatterns never overlap.
type Detection struct {
	Type            DetectionType `json:"type"`
	MatchedText     string        `json:"matchedText"`
	StartIndex      int           `json:"startIndex"`
	EndIndex        int           `json:"endIndex"`
	DurationMinutes int           `json:"durationMinutes,omitempty"`
	StartTime       string        `json:"startTime,omitempty"`
	EndTime         string        `json:"endTime,omitempty"`
}

// ParsedTime is the composed result of parsing one line of activity text.
// StartTime/EndTime are zero-padded 24-hour "HH:MM" strings, nil when the
// text did not pin them down.
type ParsedTime struct {
	StartTime       *string     `json:"startTime"`
	EndTime         *string     `json:"endTime"`
	CleanedActivity string      `json:"cleanedActivity"`
	HasTimePattern  bool        `json:"hasTimePattern"`
	Detections      []Detection `json:"detections"`
}

// Segment is one run of input text, highlighted when it carries a Detection.
// Concatenating the Text of all segments reconstructs the input exactly.
type Segment struct {
	Text          string     `json:"text"`
	IsHighlighted bool       `json:"isHighlighted"`
	Detection     *Detection `json:"detection,omitempty"`
}

// Detector priorities used to break ties between equal-length overlapping
// candidates. Higher wins.
const (
	prioAtTime = iota + 1
	prioDuration
	prioClockTime
	prioRelative
	prioModifier
	prioRange
)

// candidate is a raw detector match before overlap resolution.
type candidate struct {
	Detection
	priority int
}

func (c candidate) length() int {
	return c.EndIndex - c.StartIndex
}

func (c candidate) overlaps(o candidate) bool {
	return c.StartIndex < o.EndIndex && o.StartIndex < c.EndIndex
}

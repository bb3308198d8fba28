package timeparse

import "sort"

// GetHighlightedSegments splits the text into an ordered list of plain and
// highlighted runs from the given detections, for rendering inline
// highlights. Concatenating the segment texts reconstructs the input
// exactly. Detections with offsets that do not fit the text are skipped
// rather than failing the caller.
func GetHighlightedSegments(text string, detections []Detection) []Segment {
	if len(detections) == 0 {
		return []Segment{{Text: text}}
	}

	ordered := make([]Detection, len(detections))
	copy(ordered, detections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartIndex < ordered[j].StartIndex
	})

	var segments []Segment
	prev := 0
	for i := range ordered {
		d := ordered[i]
		if d.StartIndex < prev || d.StartIndex >= d.EndIndex || d.EndIndex > len(text) {
			continue
		}
		if d.StartIndex > prev {
			segments = append(segments, Segment{Text: text[prev:d.StartIndex]})
		}
		segments = append(segments, Segment{
			Text:          text[d.StartIndex:d.EndIndex],
			IsHighlighted: true,
			Detection:     &ordered[i],
		})
		prev = d.EndIndex
	}
	if prev < len(text) || len(segments) == 0 {
		segments = append(segments, Segment{Text: text[prev:]})
	}
	return segments
}

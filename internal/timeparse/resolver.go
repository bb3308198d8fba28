package timeparse

import "sort"

// resolveOverlaps reduces raw candidates to the final non-overlapping
// detection list. Between overlapping candidates the longer span wins;
// equal spans fall back to detector priority, then to text order. The
// result is ordered by start offset.
func resolveOverlaps(cands []candidate) []Detection {
	if len(cands) == 0 {
		return []Detection{}
	}

	ranked := make([]candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].length() != ranked[j].length() {
			return ranked[i].length() > ranked[j].length()
		}
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority > ranked[j].priority
		}
		return ranked[i].StartIndex < ranked[j].StartIndex
	})

	var kept []candidate
	for _, c := range ranked {
		conflict := false
		for _, k := range kept {
			if c.overlaps(k) {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].StartIndex < kept[j].StartIndex
	})

	out := make([]Detection, len(kept))
	for i, c := range kept {
		out[i] = c.Detection
	}
	return out
}

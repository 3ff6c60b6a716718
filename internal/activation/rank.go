package activation

import "sort"

// Result is the ranked set of skills that passed filtering, highest score
// first. An empty result is a normal outcome, not an error.
type Result struct {
	Candidates []Candidate `json:"candidates"`
}

// Empty reports whether no skills activated.
func (r Result) Empty() bool {
	return len(r.Candidates) == 0
}

// Names returns the activated skill names in rank order.
func (r Result) Names() []string {
	names := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		names[i] = c.Skill.Name
	}
	return names
}

// Rank filters and orders scored candidates. Candidates scoring strictly
// below threshold are dropped; survivors sort by score descending with
// manifest declaration order breaking ties; at most maxResults remain.
// A negative maxResults is treated as zero.
func Rank(candidates []Candidate, threshold, maxResults int) Result {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= threshold {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].position < kept[j].position
	})

	if maxResults < 0 {
		maxResults = 0
	}
	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}

	return Result{Candidates: kept}
}

package summarizer

import "sort"

const (
	poolWidthFactor    = 2
	sameAreaMultiplier = 1.2
	adjacentMultiplier = 1.1
	noImprovementScore = -1.0
)

// Select picks up to n sentences from scored, favouring candidates that sit
// close to the previously picked one, and returns them in document order.
func Select(scored []ScoredSentence, n int) []ScoredSentence {
	if len(scored) == 0 || n <= 0 {
		return nil
	}

	pool := make([]ScoredSentence, len(scored))
	copy(pool, scored)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Score > pool[j].Score
	})
	pool = pool[:min(n*poolWidthFactor, len(pool))]

	// The top candidate seeds the selection and stays at pool[0]; the scan
	// below starts at 1 so it is never picked twice.
	selected := make([]ScoredSentence, 0, n)
	selected = append(selected, pool[0])

	for len(selected) < n && len(pool) > 1 {
		last := selected[len(selected)-1]
		bestIdx := 1
		bestScore := noImprovementScore
		for i := 1; i < len(pool); i++ {
			if cs := contextualScore(pool[i], last); cs > bestScore {
				bestScore = cs
				bestIdx = i
			}
		}
		selected = append(selected, pool[bestIdx])
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Index < selected[j].Index
	})
	return selected
}

// contextualScore adjusts a candidate's score relative to the last picked
// sentence. Both multipliers compound.
func contextualScore(candidate, last ScoredSentence) float64 {
	score := candidate.Score
	if abs(candidate.ParagraphIndex-last.ParagraphIndex) <= 1 {
		score *= sameAreaMultiplier
	}
	if abs(candidate.Index-last.Index) == 1 {
		score *= adjacentMultiplier
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

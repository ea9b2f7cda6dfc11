package rank

import "sort"

// Candidate is a corpus paragraph scored against a query.
type Candidate struct {
	// Index is the paragraph's position in the corpus slice.
	Index int

	// Score is the cosine similarity to the query vector.
	Score float64
}

// Rank scores every corpus vector against the query, sorts descending
// by score, keeps the top k, then discards candidates scoring at or
// below floor. Ties break by corpus index so repeated calls over the
// same input stay deterministic.
//
// The returned slice may be empty; callers must then fall back to
// keyword matching rather than produce an empty answer.
func Rank(query Vector, corpus []Vector, k int, floor float64) []Candidate {
	if len(corpus) == 0 || k <= 0 {
		return nil
	}

	scored := make([]Candidate, len(corpus))
	for i, vec := range corpus {
		scored[i] = Candidate{Index: i, Score: Cosine(query, vec)}
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})

	if k > len(scored) {
		k = len(scored)
	}
	kept := make([]Candidate, 0, k)
	for _, c := range scored[:k] {
		if c.Score > floor {
			kept = append(kept, c)
		}
	}
	return kept
}

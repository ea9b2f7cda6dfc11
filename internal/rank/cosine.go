package rank

import "math"

// normEpsilon keeps the cosine denominator non-zero so that an
// all-zero vector scores 0 instead of NaN.
const normEpsilon = 1e-8

// Cosine returns the cosine similarity of two sparse vectors, roughly
// in [0,1] for non-negative weights.
func Cosine(a, b Vector) float64 {
	// Iterate over the smaller vector for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for tok, wa := range a {
		if wb, ok := b[tok]; ok {
			dot += wa * wb
		}
	}
	return dot / (norm(a)*norm(b) + normEpsilon)
}

func norm(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

package rank

import "math"

// Vector is a sparse term-weight vector. Absent tokens weigh 0.
type Vector map[string]float64

// BuildCorpusVectors tokenizes each paragraph and computes its TF-IDF
// vector together with the corpus document-frequency table. The weight
// of a term is tf * (ln((N+1)/(df+1)) + 1), the smoothed form that
// stays positive even for N=1 and terms present everywhere.
//
// An empty paragraph list yields an empty vector slice; callers must
// treat ranking as impossible in that case.
func BuildCorpusVectors(paragraphs []string) ([]Vector, map[string]int) {
	df := make(map[string]int)
	tokenized := make([][]string, len(paragraphs))

	for i, p := range paragraphs {
		tokens := Tokenize(p)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	n := len(paragraphs)
	vectors := make([]Vector, n)
	for i, tokens := range tokenized {
		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		vec := make(Vector, len(tf))
		for tok, count := range tf {
			vec[tok] = float64(count) * idf(n, df[tok])
		}
		vectors[i] = vec
	}
	return vectors, df
}

// VectorizeQuery computes a query vector against an existing
// document-frequency table and corpus size. Terms unseen in the corpus
// get df=0 and therefore the highest idf; rare or novel query terms are
// deliberately not down-weighted.
func VectorizeQuery(query string, df map[string]int, n int) Vector {
	tf := make(map[string]int)
	for _, tok := range Tokenize(query) {
		tf[tok]++
	}
	vec := make(Vector, len(tf))
	for tok, count := range tf {
		vec[tok] = float64(count) * idf(n, df[tok])
	}
	return vec
}

func idf(n, df int) float64 {
	return math.Log(float64(n+1)/float64(df+1)) + 1
}

// Package rank implements the lexical retrieval pipeline: tokenization,
// TF-IDF vectorization over a paragraph corpus, cosine similarity, and
// top-K candidate selection with a relevance floor.
//
// Vectors are sparse maps from token to weight; a token absent from a
// vector has weight 0. Statistics are rebuilt per query rather than
// cached: corpora are small (bounded by a section's paragraph count),
// and recomputing keeps the pipeline stateless.
package rank

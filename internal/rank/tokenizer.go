package rank

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase alphanumeric tokens. Every
// non-alphanumeric character acts as a separator and empty tokens are
// dropped. No stemming and no stopword removal happen here; callers
// filter stopwords where their path requires it.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// stopwords used by the keyword-fallback and query-term extraction
// paths. The ranked TF-IDF path keeps stopwords: their weights are
// naturally suppressed by document frequency.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"if": {}, "then": {}, "else": {}, "for": {}, "to": {}, "of": {},
	"in": {}, "on": {}, "at": {}, "by": {}, "with": {}, "as": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "it": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "from": {}, "up": {}, "down": {}, "over": {},
	"under": {}, "again": {}, "further": {}, "than": {}, "so": {},
	"such": {}, "into": {}, "about": {}, "between": {}, "through": {},
	"during": {}, "before": {}, "after": {}, "above": {}, "below": {},
	"out": {}, "off": {}, "own": {}, "same": {}, "too": {}, "very": {},
	"can": {}, "will": {}, "just": {}, "should": {}, "now": {},
	"what": {}, "how": {}, "why": {}, "when": {}, "where": {},
	"which": {}, "who": {}, "does": {}, "do": {}, "did": {},
}

// IsStopword reports whether token is a common word excluded from
// keyword matching.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// ContentTerms extracts up to max non-stopword tokens of at least
// minLen characters from text, preserving first-occurrence order and
// dropping duplicates.
func ContentTerms(text string, minLen, max int) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, tok := range Tokenize(text) {
		if len(tok) < minLen || IsStopword(tok) {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		terms = append(terms, tok)
		if len(terms) == max {
			break
		}
	}
	return terms
}

// Package summarizer produces extractive summaries: a subset of the
// source's own sentences, selected by scoring and re-joined in
// document order. No text is generated.
package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/rank"
)

// maxSummarySentences caps a summary regardless of input length.
const maxSummarySentences = 6

// selectionRatio is the fraction of sentences kept for long inputs.
const selectionRatio = 0.25

// sentenceSplit matches sentence-ending punctuation followed by
// whitespace. Splitting on it keeps abbreviating mid-text dots glued
// to their sentence more often than a naive split on '.' would.
var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

// Summarize returns an extractive summary of text. Inputs of three or
// fewer sentences come back unchanged (trimmed): they are already
// short enough to stand as their own summary.
//
// Longer inputs are scored per sentence as the sum of 1/frequency over
// the sentence's tokens, rewarding sentences rich in rare terms. The
// top min(6, ceil(n*0.25)) sentences are kept and re-sorted into their
// original order before joining; a summary never permutes the source.
func Summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	sentences := SplitSentences(trimmed)
	if len(sentences) <= 3 {
		return trimmed
	}

	freq := make(map[string]int)
	for _, s := range sentences {
		for _, tok := range rank.Tokenize(s) {
			freq[tok]++
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, s := range sentences {
		var sum float64
		for _, tok := range rank.Tokenize(s) {
			f := freq[tok]
			if f < 1 {
				f = 1
			}
			sum += 1 / float64(f)
		}
		scores[i] = scored{idx: i, score: sum}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	keep := int(math.Ceil(float64(len(sentences)) * selectionRatio))
	if keep > maxSummarySentences {
		keep = maxSummarySentences
	}
	if keep < 1 {
		keep = 1
	}

	selected := make([]int, keep)
	for i := 0; i < keep; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	parts := make([]string, keep)
	for i, idx := range selected {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " ")
}

// SplitSentences splits text on sentence-ending punctuation followed
// by whitespace, restoring the terminator on each piece. Empty pieces
// are dropped.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var sentences []string
	rest := text
	for {
		loc := sentenceSplit.FindStringIndex(rest)
		if loc == nil {
			if s := strings.TrimSpace(rest); s != "" {
				sentences = append(sentences, s)
			}
			return sentences
		}
		// loc[0] is the terminator; keep it with the sentence.
		if s := strings.TrimSpace(rest[:loc[0]+1]); s != "" {
			sentences = append(sentences, s)
		}
		rest = rest[loc[1]:]
	}
}

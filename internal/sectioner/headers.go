package sectioner

import (
	"regexp"
	"strings"
	"unicode"
)

// Lines that can never be headings, checked before the pattern table.
var (
	pageNumberLine = regexp.MustCompile(`(?i)^\s*(?:page\s+)?\d{1,4}\s*$`)
	separatorLine  = regexp.MustCompile(`^\s*[-=_*~.\s]{3,}\s*$`)
)

// headerPattern is one entry of the ordered heading table. Match
// returns the extracted title and whether the line matched.
type headerPattern struct {
	name  string
	match func(line string) (string, bool)
}

// headerPatterns is evaluated in priority order; the first match wins.
var headerPatterns = []headerPattern{
	{name: "numbered-keyword", match: matchNumberedKeyword},
	{name: "numbered-title", match: matchNumberedTitle},
	{name: "all-caps", match: matchAllCaps},
	{name: "markdown", match: matchMarkdown},
	{name: "toc-leader", match: matchTOCLeader},
	{name: "title-case", match: matchTitleCase},
	{name: "section-vocabulary", match: matchSectionVocabulary},
}

var (
	numberedKeywordRe = regexp.MustCompile(`(?i)^(?:chapter|section|part|unit)\s+(?:\d+|[IVXLCM]+)\s*[:.\-–]\s*(.+)$`)
	keywordOnlyRe     = regexp.MustCompile(`(?i)^((?:chapter|section|part|unit)\s+(?:\d+|[IVXLCM]+))\s*$`)
	numberedTitleRe   = regexp.MustCompile(`^\d{1,3}[.)]\s+(\S.*)$`)
	markdownRe        = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
	tocLeaderRe       = regexp.MustCompile(`^(.*\S)\s*\.{3,}\s*\d{1,4}$`)
	vocabularyRe      = regexp.MustCompile(`(?i)^(introduction|conclusion|summary|abstract|preface|acknowledgments)[.:]?\s*$`)
)

// "Chapter 3: The Sea" -> "The Sea"; a bare "Chapter 3" keeps its own
// label as the title.
func matchNumberedKeyword(line string) (string, bool) {
	if m := numberedKeywordRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := keywordOnlyRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// "2. Methods" or "2) Methods" -> "Methods".
func matchNumberedTitle(line string) (string, bool) {
	if m := numberedTitleRe.FindStringSubmatch(line); m != nil {
		title := strings.TrimSpace(m[1])
		// A decimal continuation like "2. 5 grams of..." is prose.
		if r := []rune(title); unicode.IsDigit(r[0]) {
			return "", false
		}
		return title, true
	}
	return "", false
}

// A long ALL-CAPS line (10-80 chars, no lowercase letters).
func matchAllCaps(line string) (string, bool) {
	if len(line) < 10 || len(line) > 80 {
		return "", false
	}
	hasUpper := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return "", false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	if !hasUpper {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// "# Heading" through "###### Heading", hashes stripped.
func matchMarkdown(line string) (string, bool) {
	if m := markdownRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// Table-of-contents style "Title ........ 23".
func matchTOCLeader(line string) (string, bool) {
	if m := tocLeaderRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// titleCaseConnectors may stay lowercase inside a Title-Case heading.
var titleCaseConnectors = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {},
	"in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {},
	"with": {},
}

// "The Rise of Modern Computing": every significant word capitalised,
// between two and eight words, no terminal punctuation. At least one
// lowercase letter must appear: fully uppercase lines belong to the
// length-bounded ALL-CAPS rule, not this one.
func matchTitleCase(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 5 || len(line) > 80 || endsInSentencePunct(line) {
		return "", false
	}
	if !strings.ContainsFunc(line, unicode.IsLower) {
		return "", false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 8 {
		return "", false
	}
	for i, w := range words {
		r := []rune(strings.Trim(w, `"'`))
		if len(r) == 0 {
			return "", false
		}
		if unicode.IsUpper(r[0]) || unicode.IsDigit(r[0]) {
			continue
		}
		if i > 0 {
			if _, ok := titleCaseConnectors[strings.ToLower(w)]; ok {
				continue
			}
		}
		return "", false
	}
	return line, true
}

// Fixed vocabulary of standalone section names.
func matchSectionVocabulary(line string) (string, bool) {
	if m := vocabularyRe.FindStringSubmatch(line); m != nil {
		word := strings.ToLower(m[1])
		return strings.ToUpper(word[:1]) + word[1:], true
	}
	return "", false
}

// isLikelyHeader runs the rejection checks, then the pattern table,
// then a final shape heuristic: moderately short, starts uppercase,
// no terminal punctuation, uppercase ratio strictly between 10% and
// 80% of its letters.
func isLikelyHeader(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if pageNumberLine.MatchString(line) || separatorLine.MatchString(line) || pageMarkerOnlyRe.MatchString(line) {
		return "", false
	}

	for _, p := range headerPatterns {
		if title, ok := p.match(line); ok && title != "" {
			return title, true
		}
	}

	if len(line) < 5 || len(line) > 100 || endsInSentencePunct(line) {
		return "", false
	}
	first := []rune(line)[0]
	if !unicode.IsUpper(first) {
		return "", false
	}
	letters, uppers := 0, 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	if letters == 0 {
		return "", false
	}
	ratio := float64(uppers) / float64(letters)
	if ratio <= 0.10 || ratio >= 0.80 {
		return "", false
	}
	return line, true
}

func endsInSentencePunct(line string) bool {
	return strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, "!") ||
		strings.HasSuffix(line, "?") ||
		strings.HasSuffix(line, ",") ||
		strings.HasSuffix(line, ";") ||
		strings.HasSuffix(line, ":")
}

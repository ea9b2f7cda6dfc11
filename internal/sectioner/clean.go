package sectioner

import (
	"fmt"
	"regexp"
	"strings"
)

// Page markers injected during tagging and stripped during cleaning.
var (
	pageMarkerRe     = regexp.MustCompile(`\[\[PAGE (\d+)\]\]`)
	pageMarkerOnlyRe = regexp.MustCompile(`^\s*\[\[PAGE \d+\]\]\s*$`)
)

var (
	hyphenBreakRe  = regexp.MustCompile(`(\p{L})-[ \t]*\n[ \t]*(\p{L})`)
	blankLineRe    = regexp.MustCompile(`\n[ \t]*\n[\s]*`)
	innerSpaceRe   = regexp.MustCompile(`[ \t\r\n]+`)
	punctSpacingRe = regexp.MustCompile(`\s+([.,;:!?)\]])`)
)

// pageMarker formats the inline marker for a 1-based page number.
func pageMarker(page int) string {
	return fmt.Sprintf("[[PAGE %d]]", page)
}

// CleanText normalises extracted text for storage and retrieval:
// hyphenated line-break word splits are merged, page markers removed,
// runs of whitespace collapsed, and spacing before punctuation fixed.
// Blank-line paragraph boundaries are preserved as exactly one empty
// line so downstream paragraph splitting keeps working.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = hyphenBreakRe.ReplaceAllString(text, "$1$2")
	text = pageMarkerRe.ReplaceAllString(text, " ")

	paragraphs := blankLineRe.Split(text, -1)
	cleaned := paragraphs[:0]
	for _, p := range paragraphs {
		p = innerSpaceRe.ReplaceAllString(p, " ")
		p = punctSpacingRe.ReplaceAllString(p, "$1")
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "\n\n")
}

// SplitParagraphs divides cleaned text into blank-line-delimited
// paragraphs and drops fragments of minLen characters or fewer.
// Paragraphs are ephemeral: they exist only within one retrieval call.
func SplitParagraphs(text string, minLen int) []string {
	var paragraphs []string
	for _, p := range blankLineRe.Split(text, -1) {
		p = strings.TrimSpace(p)
		if len(p) > minLen {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

package domain

import (
	"strconv"
	"time"
)

// Document represents an ingested source document.
// One document is active per session; ingesting replaces it.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title, usually the file name.
	Title string

	// URI is the original location (file path).
	URI string

	// PageCount is the number of extracted pages.
	PageCount int

	// IngestedAt is when the document was ingested.
	IngestedAt time.Time
}

// Section is a titled span of a document produced by heading detection.
// Sections are created in bulk by the sectioner and are immutable
// thereafter. Their order within a document follows document order.
type Section struct {
	// ID is the unique identifier for the section.
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Title is the detected or generated heading.
	Title string

	// StartPage is the 1-based first page, 0 when unknown.
	StartPage int

	// EndPage is the 1-based last page (inclusive), 0 when unknown.
	// When both pages are known, StartPage <= EndPage holds.
	EndPage int

	// Position is the ordinal position within the document.
	Position int

	// Text is the cleaned body text. Always longer than the
	// sectioner's minimum length except on the fixed-window
	// fallback path.
	Text string
}

// EstimatedTokens returns a rough token count for the section body,
// using the common four-characters-per-token approximation.
func (s *Section) EstimatedTokens() int {
	return (len(s.Text) + 3) / 4
}

// PageLabel returns a human-readable page range for citations:
// "pages 3-9", "page 3", or "source document" when pages are unknown.
func (s *Section) PageLabel() string {
	switch {
	case s.StartPage > 0 && s.EndPage > 0 && s.EndPage != s.StartPage:
		return "pages " + strconv.Itoa(s.StartPage) + "-" + strconv.Itoa(s.EndPage)
	case s.StartPage > 0:
		return "page " + strconv.Itoa(s.StartPage)
	default:
		return "source document"
	}
}

package driven

import "context"

// PageExtractor turns a source file into an ordered sequence of
// per-page plain-text strings. Extraction is best effort: malformed
// or encrypted documents are not repaired.
type PageExtractor interface {
	// Name returns the extractor identifier, e.g. "pdf".
	Name() string

	// Supports reports whether this extractor handles the file path.
	Supports(path string) bool

	// ExtractPages returns one string per page, in document order.
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

// Package plaintext provides a page extractor for plain-text and
// Markdown files.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// pageCharTarget is the approximate page size used when the file has
// no form-feed page breaks of its own.
const pageCharTarget = 3000

var supportedExtensions = map[string]struct{}{
	".txt":      {},
	".text":     {},
	".md":       {},
	".markdown": {},
}

// Extractor turns text files into page sequences. Form feeds split
// pages when present; otherwise the text is windowed into roughly
// equal pages at paragraph boundaries.
type Extractor struct{}

// New creates a plain-text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's name.
func (e *Extractor) Name() string {
	return "plaintext"
}

// Supports reports whether the extractor handles the file at path.
func (e *Extractor) Supports(path string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ExtractPages returns the file's text as pages.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if strings.Contains(text, "\f") {
		return strings.Split(text, "\f"), nil
	}
	return WindowPages(text), nil
}

// WindowPages splits text into pages of roughly pageCharTarget
// characters, breaking only at paragraph boundaries so no paragraph
// straddles a page. Shared with extractors for formats that carry no
// page markers of their own.
func WindowPages(text string) []string {
	paragraphs := strings.Split(text, "\n\n")

	var (
		pages   []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			pages = append(pages, current.String())
			current.Reset()
		}
	}

	for _, p := range paragraphs {
		if current.Len() > 0 && current.Len()+len(p) > pageCharTarget {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	flush()

	if len(pages) == 0 {
		pages = []string{text}
	}
	return pages
}

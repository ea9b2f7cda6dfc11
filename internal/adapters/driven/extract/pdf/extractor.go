// Package pdf provides a page extractor for PDF files.
package pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor extracts per-page plain text from PDF files.
type Extractor struct{}

// New creates a PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's name.
func (e *Extractor) Name() string {
	return "pdf"
}

// Supports reports whether the extractor handles the file at path.
func (e *Extractor) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// ExtractPages returns one string per page, in page order. Pages whose
// text cannot be decoded come back empty rather than failing the whole
// document; scanned image pages routinely have no text layer.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Page %d: could not decode text: %v", i, err)
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// Package html provides a page extractor for HTML files. Tags are
// stripped and the remaining text is windowed into pages, since HTML
// carries no page markers of its own.
package html

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/plaintext"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

var (
	scriptRe = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style.*?</style>`)
	// Block-level closers become paragraph breaks so the sectioner
	// still sees paragraph structure after tag stripping.
	blockRe = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|blockquote)>|<br\s*/?>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
	spaceRe = regexp.MustCompile(`[ \t]+`)
	blankRe = regexp.MustCompile(`\n{3,}`)
)

// Extractor turns HTML files into page sequences.
type Extractor struct{}

// New creates an HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's name.
func (e *Extractor) Name() string {
	return "html"
}

// Supports reports whether the extractor handles the file at path.
func (e *Extractor) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// ExtractPages strips markup and returns the text as pages.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return plaintext.WindowPages(stripHTML(string(data))), nil
}

// stripHTML converts HTML to plain text: scripts and styles dropped,
// block boundaries turned into paragraph breaks, entities decoded.
func stripHTML(content string) string {
	content = scriptRe.ReplaceAllString(content, "")
	content = styleRe.ReplaceAllString(content, "")
	content = blockRe.ReplaceAllString(content, "\n\n")
	content = tagRe.ReplaceAllString(content, " ")
	content = html.UnescapeString(content)

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = spaceRe.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	content = strings.Join(lines, "\n")
	content = blankRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

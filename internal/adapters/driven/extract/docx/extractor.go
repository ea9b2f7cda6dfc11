// Package docx provides a page extractor for Word documents. The text
// is pulled from the OOXML body and windowed into pages, since the
// format stores no fixed pagination.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/plaintext"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor turns DOCX files into page sequences.
type Extractor struct{}

// New creates a DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor's name.
func (e *Extractor) Name() string {
	return "docx"
}

// Supports reports whether the extractor handles the file at path.
func (e *Extractor) Supports(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".docx"
}

// ExtractPages reads the document body and returns its text as pages.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close() //nolint:errcheck

	text, err := extractBodyText(&reader.Reader)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content in %s", filepath.Base(path))
	}

	return plaintext.WindowPages(text), nil
}

// documentXML mirrors the parts of word/document.xml we read.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// extractBodyText finds word/document.xml and flattens its paragraphs,
// separated by blank lines so downstream paragraph splitting works.
func extractBodyText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document body: %w", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close() //nolint:errcheck
		if err != nil {
			return "", fmt.Errorf("read document body: %w", err)
		}

		var doc documentXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			return "", fmt.Errorf("parse document body: %w", err)
		}

		var b strings.Builder
		for _, para := range doc.Body.Paragraphs {
			var line strings.Builder
			for _, r := range para.Runs {
				for _, t := range r.Text {
					line.WriteString(t.Content)
				}
			}
			if strings.TrimSpace(line.String()) == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(line.String())
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("word/document.xml not found")
}

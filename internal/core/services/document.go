package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
	"github.com/readcast-labs/readcast-cli/internal/logger"
	"github.com/readcast-labs/readcast-cli/internal/sectioner"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService runs the ingest pipeline: extract pages, detect
// sections, store the result as the session's active document.
type DocumentService struct {
	extractors []driven.PageExtractor
	store      driven.SectionStore
	sectioner  *sectioner.Sectioner
}

// NewDocumentService creates a document service. Extractors are tried
// in order; the first one whose Supports returns true wins.
func NewDocumentService(
	extractors []driven.PageExtractor,
	store driven.SectionStore,
	sec *sectioner.Sectioner,
) *DocumentService {
	return &DocumentService{
		extractors: extractors,
		store:      store,
		sectioner:  sec,
	}
}

// Ingest extracts, sections, and stores the document at path,
// replacing any previously ingested document.
func (s *DocumentService) Ingest(ctx context.Context, path string) (*domain.Document, []domain.Section, error) {
	logger.Stage("Ingest")
	logger.Debug("Path: %s", path)

	extractor := s.extractorFor(path)
	if extractor == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
	logger.Debug("Extractor: %s", extractor.Name())

	pages, err := extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("extract pages: %w", err)
	}
	logger.Info("Extracted %d pages", len(pages))

	if !hasText(pages) {
		return nil, nil, domain.ErrEmptyDocument
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Title:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		URI:        path,
		PageCount:  len(pages),
		IngestedAt: time.Now(),
	}

	sections := s.sectioner.Split(doc.ID, pages)
	logger.Info("Detected %d sections", len(sections))

	if err := s.store.ReplaceDocument(ctx, doc, sections); err != nil {
		return nil, nil, fmt.Errorf("store document: %w", err)
	}
	return doc, sections, nil
}

// Active returns the currently ingested document.
func (s *DocumentService) Active(ctx context.Context) (*domain.Document, error) {
	return s.store.ActiveDocument(ctx)
}

// Sections lists the active document's sections in document order.
func (s *DocumentService) Sections(ctx context.Context) ([]domain.Section, error) {
	doc, err := s.store.ActiveDocument(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.ListSections(ctx, doc.ID)
}

// Section retrieves one section by ID.
func (s *DocumentService) Section(ctx context.Context, sectionID string) (*domain.Section, error) {
	return s.store.GetSection(ctx, sectionID)
}

func (s *DocumentService) extractorFor(path string) driven.PageExtractor {
	for _, e := range s.extractors {
		if e.Supports(path) {
			return e
		}
	}
	return nil
}

func hasText(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}

package memory

import (
	"context"
	"sync"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// Ensure SectionStore implements the interface.
var _ driven.SectionStore = (*SectionStore)(nil)

// SectionStore is an in-memory implementation of driven.SectionStore.
// It holds at most one document; ReplaceDocument swaps the whole state.
type SectionStore struct {
	mu       sync.RWMutex
	document *domain.Document
	sections []domain.Section
}

// NewSectionStore creates a new in-memory section store.
func NewSectionStore() *SectionStore {
	return &SectionStore{}
}

// ReplaceDocument clears the store and saves the document with its
// sections.
func (s *SectionStore) ReplaceDocument(_ context.Context, doc *domain.Document, sections []domain.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := *doc
	s.document = &d
	s.sections = make([]domain.Section, len(sections))
	copy(s.sections, sections)
	return nil
}

// ActiveDocument returns the stored document.
func (s *SectionStore) ActiveDocument(_ context.Context) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.document == nil {
		return nil, domain.ErrNoDocument
	}
	doc := *s.document
	return &doc, nil
}

// ListSections returns the document's sections in document order.
func (s *SectionStore) ListSections(_ context.Context, documentID string) ([]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Section
	for _, sec := range s.sections {
		if sec.DocumentID == documentID {
			result = append(result, sec)
		}
	}
	return result, nil
}

// GetSection retrieves a section by ID.
func (s *SectionStore) GetSection(_ context.Context, sectionID string) (*domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.ID == sectionID {
			found := sec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Clear removes the stored document and all sections.
func (s *SectionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = nil
	s.sections = nil
	return nil
}

// Close releases resources. A no-op for the in-memory store.
func (s *SectionStore) Close() error {
	return nil
}

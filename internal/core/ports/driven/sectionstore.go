package driven

import (
	"context"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// SectionStore persists the active document and its sections for the
// current session. Ingesting a document replaces whatever was stored
// before; nothing outlives the session's library.
type SectionStore interface {
	// ReplaceDocument atomically clears the store and saves the
	// document with its sections, preserving section order.
	ReplaceDocument(ctx context.Context, doc *domain.Document, sections []domain.Section) error

	// ActiveDocument returns the stored document.
	// Returns domain.ErrNoDocument when nothing has been ingested.
	ActiveDocument(ctx context.Context) (*domain.Document, error)

	// ListSections returns the document's sections in document order.
	ListSections(ctx context.Context, documentID string) ([]domain.Section, error)

	// GetSection retrieves a section by ID.
	// Returns domain.ErrNotFound when it does not exist.
	GetSection(ctx context.Context, sectionID string) (*domain.Section, error)

	// Clear removes the stored document and all sections.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}

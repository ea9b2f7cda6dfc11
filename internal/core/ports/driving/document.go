package driving

import (
	"context"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// DocumentService manages the session's active document.
type DocumentService interface {
	// Ingest extracts, sections, and stores the document at path,
	// replacing any previously ingested document.
	Ingest(ctx context.Context, path string) (*domain.Document, []domain.Section, error)

	// Active returns the currently ingested document.
	Active(ctx context.Context) (*domain.Document, error)

	// Sections lists the active document's sections in order.
	Sections(ctx context.Context) ([]domain.Section, error)

	// Section retrieves one section by ID.
	Section(ctx context.Context, sectionID string) (*domain.Section, error)
}

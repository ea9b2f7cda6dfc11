// Package tui provides an interactive terminal user interface for Readcast.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions about the active document.
	Ask driving.AskService

	// Document exposes the active document and its sections.
	Document driving.DocumentService

	// Summary produces section summaries.
	Summary driving.SummaryService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(ask driving.AskService, document driving.DocumentService) *Ports {
	return &Ports{
		Ask:      ask,
		Document: document,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	// Summary is optional; the sections view hides summaries without it.
	return nil
}

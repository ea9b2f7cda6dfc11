package mcp

import (
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions about the active document.
	Ask driving.AskService

	// Document exposes the active document and its sections.
	Document driving.DocumentService

	// Summary produces section summaries.
	Summary driving.SummaryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	// Document and Summary are optional; the matching tools and
	// resources degrade gracefully when they are absent.
	return nil
}

package driving

import (
	"context"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// AskService answers questions from the active document.
type AskService interface {
	// Ask composes an answer for the question, scoped to one section
	// or the whole document per opts. It never returns an empty
	// answer for expected "no good match" conditions; those surface
	// as keyword-fallback or guidance answers instead.
	Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error)
}

// SummaryService produces section summaries.
type SummaryService interface {
	// Summarize returns an extractive summary of the section, or the
	// responder's summary when useAI is set and the responder is
	// reachable.
	Summarize(ctx context.Context, sectionID string, useAI bool) (string, error)
}

// NarrationService generates podcast scripts.
type NarrationService interface {
	// Script builds a two-host narration script for the section.
	// A zero seed derives one from the input so identical inputs
	// yield identical scripts.
	Script(ctx context.Context, sectionID string, seed int64) ([]domain.NarrationSegment, error)
}

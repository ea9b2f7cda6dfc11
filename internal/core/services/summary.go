package services

import (
	"context"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
	"github.com/readcast-labs/readcast-cli/internal/logger"
	"github.com/readcast-labs/readcast-cli/internal/sectioner"
	"github.com/readcast-labs/readcast-cli/internal/summarizer"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// summaryMaxSentences is passed to the responder so external summaries
// match the extractive cap.
const summaryMaxSentences = 6

// SummaryService produces section summaries. The extractive pipeline
// is the source of truth; an external responder, when requested and
// reachable, replaces it for a single call and never becomes a
// dependency.
type SummaryService struct {
	store     driven.SectionStore
	responder driven.AIResponder
}

// NewSummaryService creates a summary service. responder may be nil.
func NewSummaryService(store driven.SectionStore, responder driven.AIResponder) *SummaryService {
	return &SummaryService{store: store, responder: responder}
}

// Summarize returns a summary of the section's body text.
func (s *SummaryService) Summarize(ctx context.Context, sectionID string, useAI bool) (string, error) {
	sec, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return "", err
	}

	logger.Stage("Summarize")
	logger.Debug("Section: %s (%s)", sec.Title, sec.PageLabel())

	cleaned := sectioner.CleanText(sec.Text)

	if useAI && s.responder != nil {
		summary, err := s.responder.Summarize(ctx, cleaned, summaryMaxSentences)
		if err == nil && strings.TrimSpace(summary) != "" {
			return strings.TrimSpace(summary), nil
		}
		if err != nil {
			logger.Warn("Responder %s failed: %v", s.responder.ModelName(), err)
		}
		logger.Info("Falling back to extractive summary")
	}

	return summarizer.Summarize(cleaned), nil
}

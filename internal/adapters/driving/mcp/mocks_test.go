package mcp

import (
	"context"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer *domain.Answer
	err    error
}

func (m *mockAskService) Ask(
	_ context.Context,
	_ string,
	_ domain.AskOptions,
) (*domain.Answer, error) {
	return m.answer, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	document *domain.Document
	sections []domain.Section
	section  *domain.Section
	err      error
}

func (m *mockDocumentService) Ingest(_ context.Context, _ string) (*domain.Document, []domain.Section, error) {
	return m.document, m.sections, m.err
}

func (m *mockDocumentService) Active(_ context.Context) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Sections(_ context.Context) ([]domain.Section, error) {
	return m.sections, m.err
}

func (m *mockDocumentService) Section(_ context.Context, _ string) (*domain.Section, error) {
	return m.section, m.err
}

// mockSummaryService is a mock implementation of driving.SummaryService.
type mockSummaryService struct {
	summary string
	err     error
}

func (m *mockSummaryService) Summarize(_ context.Context, _ string, _ bool) (string, error) {
	return m.summary, m.err
}

package sections

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/messages"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// mockDocumentService implements driving.DocumentService for testing.
type mockDocumentService struct {
	document *domain.Document
	sections []domain.Section
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
	return nil, m.err
}

// mockSummaryService implements driving.SummaryService for testing.
type mockSummaryService struct {
	summary       string
	err           error
	lastSectionID string
}

func (m *mockSummaryService) Summarize(_ context.Context, sectionID string, _ bool) (string, error) {
	m.lastSectionID = sectionID
	return m.summary, m.err
}

func testSections() []domain.Section {
	return []domain.Section{
		{ID: "sec-1", Title: "Origins", StartPage: 1, EndPage: 4, Position: 0},
		{ID: "sec-2", Title: "Departure", StartPage: 5, EndPage: 9, Position: 1},
	}
}

func loadedView(t *testing.T) *View {
	t.Helper()

	svc := &mockDocumentService{
		document: &domain.Document{Title: "Voyage", PageCount: 9},
		sections: testSections(),
	}
	view := NewView(nil, svc, &mockSummaryService{summary: "The ship departs."})
	view.SetDimensions(80, 24)

	cmd := view.Init()
	require.NotNil(t, cmd)
	view.Update(cmd())
	return view
}

func TestView_Init_LoadsSections(t *testing.T) {
	view := loadedView(t)

	assert.NoError(t, view.Err())
	assert.Len(t, view.Sections(), 2)
	assert.Contains(t, view.View(), "Voyage (9 pages)")
	assert.Contains(t, view.View(), "Origins")
	assert.Contains(t, view.View(), "pages 5-9")
}

func TestView_Init_NoDocument(t *testing.T) {
	svc := &mockDocumentService{err: domain.ErrNoDocument}
	view := NewView(nil, svc, nil)
	view.SetDimensions(80, 24)

	cmd := view.Init()
	require.NotNil(t, cmd)
	view.Update(cmd())

	assert.ErrorIs(t, view.Err(), domain.ErrNoDocument)
	assert.Contains(t, view.View(), "no document ingested")
}

func TestView_Update_Navigation(t *testing.T) {
	view := loadedView(t)

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(down)
	assert.Equal(t, 1, view.Selected())

	// Can't go past the last section.
	view.Update(down)
	assert.Equal(t, 1, view.Selected())

	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(up)
	assert.Equal(t, 0, view.Selected())
}

func TestView_Update_EnterChoosesSection(t *testing.T) {
	view := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	chosen, ok := cmd().(messages.SectionChosen)
	require.True(t, ok)
	assert.Equal(t, "sec-2", chosen.Section.ID)
}

func TestView_Update_EnterWithNoSections(t *testing.T) {
	svc := &mockDocumentService{document: &domain.Document{Title: "Empty"}}
	view := NewView(nil, svc, nil)
	view.SetDimensions(80, 24)
	view.Update(view.Init()())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Nil(t, view.SelectedSection())
}

func TestView_Update_SummarizeSelectedSection(t *testing.T) {
	view := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	require.NotNil(t, cmd)

	loaded, ok := cmd().(messages.SummaryLoaded)
	require.True(t, ok)
	assert.Equal(t, "sec-2", loaded.SectionID)
	assert.Equal(t, "The ship departs.", loaded.Summary)

	view.Update(loaded)
	assert.Contains(t, view.View(), "Summary: Departure")
	assert.Contains(t, view.View(), "The ship departs.")
}

func TestView_Update_SummarizeWithoutService(t *testing.T) {
	svc := &mockDocumentService{
		document: &domain.Document{Title: "Voyage", PageCount: 9},
		sections: testSections(),
	}
	view := NewView(nil, svc, nil)
	view.SetDimensions(80, 24)
	view.Update(view.Init()())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Nil(t, cmd)
	assert.NotContains(t, view.View(), "[s] Summarize")
}

func TestView_Update_EscReturnsToMenu(t *testing.T) {
	view := loadedView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

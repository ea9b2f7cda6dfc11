package cli

import (
	"context"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// --- Mock implementations ---

type mockDocumentService struct {
	document *domain.Document
	sections []domain.Section
	section  *domain.Section
	err      error

	ingestedPath string
}

func (m *mockDocumentService) Ingest(_ context.Context, path string) (*domain.Document, []domain.Section, error) {
	m.ingestedPath = path
	return m.document, m.sections, m.err
}

func (m *mockDocumentService) Active(_ context.Context) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Sections(_ context.Context) ([]domain.Section, error) {
	return m.sections, m.err
}

func (m *mockDocumentService) Section(_ context.Context, _ string) (*domain.Section, error) {
	if m.section == nil && m.err == nil {
		return nil, domain.ErrNotFound
	}
	return m.section, m.err
}

type mockAskService struct {
	answer *domain.Answer
	err    error

	lastQuestion string
	lastOpts     domain.AskOptions
}

func (m *mockAskService) Ask(_ context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	m.lastQuestion = question
	m.lastOpts = opts
	return m.answer, m.err
}

type mockSummaryService struct {
	summary string
	err     error

	lastSectionID string
	lastUseAI     bool
}

func (m *mockSummaryService) Summarize(_ context.Context, sectionID string, useAI bool) (string, error) {
	m.lastSectionID = sectionID
	m.lastUseAI = useAI
	return m.summary, m.err
}

type mockNarrationService struct {
	segments []domain.NarrationSegment
	err      error

	lastSeed int64
}

func (m *mockNarrationService) Script(_ context.Context, _ string, seed int64) ([]domain.NarrationSegment, error) {
	m.lastSeed = seed
	return m.segments, m.err
}

type mockSettingsStore struct {
	settings domain.Settings
	path     string
	loadErr  error
	saveErr  error

	saved *domain.Settings
}

func (m *mockSettingsStore) Load() (domain.Settings, error) {
	return m.settings, m.loadErr
}

func (m *mockSettingsStore) Save(settings domain.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &settings
	m.settings = settings
	return nil
}

func (m *mockSettingsStore) Path() string {
	if m.path == "" {
		return "/tmp/readcast/config.toml"
	}
	return m.path
}

// --- Test fixtures ---

func cliTestDocument() *domain.Document {
	return &domain.Document{
		ID:        "doc-1",
		Title:     "Field Notes",
		URI:       "/docs/field-notes.pdf",
		PageCount: 9,
	}
}

func cliTestSections() []domain.Section {
	return []domain.Section{
		{ID: "sec-1", DocumentID: "doc-1", Title: "Spring", StartPage: 1, EndPage: 4, Position: 0, Text: "Spring observations."},
		{ID: "sec-2", DocumentID: "doc-1", Title: "Autumn", StartPage: 5, EndPage: 9, Position: 1, Text: "Autumn observations."},
	}
}

func cliTestAnswer() *domain.Answer {
	return &domain.Answer{
		Text:     "The meltwater peaks in spring.\n\n*Based on \"Spring\" from pages 1-4*",
		Citation: `*Based on "Spring" from pages 1-4*`,
		Source:   domain.AnswerSourceRetrieval,
	}
}

// setupTestServices wires mock services into the command vars and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	prev := Services{
		Document:  documentService,
		Ask:       askService,
		Summary:   summaryService,
		Narration: narrationService,
		Settings:  settingsStore,
	}

	SetServices(Services{
		Document: &mockDocumentService{
			document: cliTestDocument(),
			sections: cliTestSections(),
			section:  &cliTestSections()[0],
		},
		Ask:     &mockAskService{answer: cliTestAnswer()},
		Summary: &mockSummaryService{summary: "Spring observations, condensed."},
		Narration: &mockNarrationService{segments: []domain.NarrationSegment{
			{Speaker: domain.SpeakerHost1, Text: "Welcome to the show."},
			{Speaker: domain.SpeakerHost2, Text: "Glad to be here."},
		}},
		Settings: &mockSettingsStore{settings: domain.DefaultSettings()},
	})

	return func() {
		SetServices(prev)
	}
}

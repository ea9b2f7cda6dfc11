package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/storage/memory"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockResponder implements driven.AIResponder for testing.
type mockResponder struct {
	answer       string
	answerErr    error
	summary      string
	summarizeErr error
	answerCalls  int
}

func (m *mockResponder) Answer(_ context.Context, _, _ string) (string, error) {
	m.answerCalls++
	if m.answerErr != nil {
		return "", m.answerErr
	}
	return m.answer, nil
}

func (m *mockResponder) Summarize(_ context.Context, _ string, _ int) (string, error) {
	if m.summarizeErr != nil {
		return "", m.summarizeErr
	}
	return m.summary, nil
}

func (m *mockResponder) ModelName() string {
	return "mock-model"
}

func (m *mockResponder) Ping(_ context.Context) error {
	return nil
}

func (m *mockResponder) Close() error {
	return nil
}

// --- Test helpers ---

const glaciersParagraph = "Glaciers form where snow accumulates faster than it melts over many years. " +
	"The snow compresses into dense ice under its own weight. " +
	"Gravity then pulls the ice mass slowly downhill, carving valleys as it moves."

const riversParagraph = "Rivers transport sediment from mountains to the sea. " +
	"Their flow rate depends on rainfall, terrain gradient, and channel width. " +
	"Deltas form where a river meets standing water and drops its load."

const climateParagraph = "Climate records from ice cores reveal temperature swings over millennia. " +
	"Trapped air bubbles preserve samples of ancient atmospheres for analysis."

func setupTestStore(t *testing.T) *memory.SectionStore {
	t.Helper()
	store := memory.NewSectionStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID:         "doc-1",
		Title:      "Earth Science Primer",
		URI:        "/docs/earth.pdf",
		PageCount:  20,
		IngestedAt: time.Now(),
	}
	sections := []domain.Section{
		{
			ID: "sec-glaciers", DocumentID: "doc-1", Title: "Glaciers",
			StartPage: 3, EndPage: 9, Position: 0,
			Text: glaciersParagraph + "\n\n" + climateParagraph,
		},
		{
			ID: "sec-rivers", DocumentID: "doc-1", Title: "Rivers",
			StartPage: 10, EndPage: 20, Position: 1,
			Text: riversParagraph,
		},
	}
	require.NoError(t, store.ReplaceDocument(ctx, doc, sections))
	return store
}

func deterministicSettings() domain.Settings {
	return domain.DefaultSettings()
}

// --- Tests ---

func TestNewAskService(t *testing.T) {
	store := memory.NewSectionStore()
	service := NewAskService(store, nil, domain.Settings{})

	require.NotNil(t, service)
	// Zero-valued settings are normalised on construction.
	assert.Equal(t, domain.ProviderDeterministic, service.settings.Provider)
	assert.Equal(t, 3, service.settings.Tuning.TopK)
}

func TestAskService_Ask_EmptyQuestion(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(), "   ", domain.AskOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, answer)
}

func TestAskService_Ask_NoDocument(t *testing.T) {
	service := NewAskService(memory.NewSectionStore(), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(), "how do glaciers form?", domain.AskOptions{})
	require.ErrorIs(t, err, domain.ErrNoDocument)
	assert.Nil(t, answer)
}

func TestAskService_Ask_RetrievalPath(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(), "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)
	require.NotNil(t, answer)

	assert.Equal(t, domain.AnswerSourceRetrieval, answer.Source)
	assert.Contains(t, answer.Text, "Glaciers form where snow accumulates")
	// "how" questions get the content lead-in.
	assert.Contains(t, answer.Text, "According to the content, ")
	assert.Contains(t, answer.Text, `*Based on "Earth Science Primer" from pages 1-20*`)
	assert.True(t, strings.HasSuffix(answer.Text, answer.Citation))
}

func TestAskService_Ask_SectionScoped(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(), "where does river sediment end up?",
		domain.AskOptions{SectionID: "sec-rivers"})
	require.NoError(t, err)

	assert.Equal(t, "sec-rivers", answer.SectionID)
	assert.Equal(t, `*Based on "Rivers" from pages 10-20*`, answer.Citation)
	assert.Contains(t, answer.Text, "sediment")
	assert.NotContains(t, answer.Text, "Glaciers form")
}

func TestAskService_Ask_SectionNotFound(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(), "anything", domain.AskOptions{SectionID: "missing"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, answer)
}

func TestAskService_Ask_KeywordFallback(t *testing.T) {
	// A question whose terms share vocabulary with the text only
	// through one content word, so cosine similarity stays below the
	// floor but the keyword scan still hits.
	store := memory.NewSectionStore()
	ctx := context.Background()
	doc := &domain.Document{ID: "doc-1", Title: "Notes", PageCount: 2}
	text := "Alpha beta gamma delta epsilon zeta eta theta iota kappa lambda. " +
		"Observatory staff recorded nothing unusual during night watch.\n\n" +
		"Mu nu xi omicron pi rho sigma tau upsilon phi chi psi omega words here."
	require.NoError(t, store.ReplaceDocument(ctx, doc, []domain.Section{
		{ID: "sec-1", DocumentID: "doc-1", Title: "Notes", StartPage: 1, EndPage: 2, Text: text},
	}))

	service := NewAskService(store, nil, deterministicSettings())
	answer, err := service.Ask(ctx, "tell me everything regarding the observatory findings please", domain.AskOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerSourceKeyword, answer.Source)
	assert.Contains(t, answer.Text, "observatory")
	assert.Contains(t, answer.Text, answer.Citation)
}

func TestAskService_Ask_GuidanceFallback(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())

	answer, err := service.Ask(context.Background(),
		"quantum chromodynamics lagrangian renormalization", domain.AskOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerSourceGuidance, answer.Source)
	assert.NotEmpty(t, answer.Text)
	assert.Contains(t, answer.Text, answer.Citation)
}

func TestAskService_Ask_ResponderSuccess(t *testing.T) {
	responder := &mockResponder{answer: "Glaciers are rivers of ice."}
	settings := deterministicSettings()
	settings.Provider = domain.ProviderOllama
	service := NewAskService(setupTestStore(t), responder, settings)

	answer, err := service.Ask(context.Background(), "how do glaciers form?", domain.AskOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerSourceResponder, answer.Source)
	assert.Contains(t, answer.Text, "Glaciers are rivers of ice.")
	assert.Contains(t, answer.Text, answer.Citation)
	assert.Equal(t, 1, responder.answerCalls)
}

func TestAskService_Ask_ResponderFailureFallsBack(t *testing.T) {
	responder := &mockResponder{answerErr: errors.New("connection refused")}
	settings := deterministicSettings()
	settings.Provider = domain.ProviderOllama
	service := NewAskService(setupTestStore(t), responder, settings)

	answer, err := service.Ask(context.Background(), "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)

	// The failed responder never surfaces as an error to the caller.
	assert.Equal(t, domain.AnswerSourceRetrieval, answer.Source)
	assert.Equal(t, 1, responder.answerCalls)
}

func TestAskService_Ask_ResponderEmptyAnswerFallsBack(t *testing.T) {
	responder := &mockResponder{answer: "  \n "}
	settings := deterministicSettings()
	settings.Provider = domain.ProviderOpenAI
	service := NewAskService(setupTestStore(t), responder, settings)

	answer, err := service.Ask(context.Background(), "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerSourceRetrieval, answer.Source)
}

func TestAskService_Ask_DeterministicProviderSkipsResponder(t *testing.T) {
	responder := &mockResponder{answer: "should not be used"}
	service := NewAskService(setupTestStore(t), responder, deterministicSettings())

	answer, err := service.Ask(context.Background(), "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.AnswerSourceRetrieval, answer.Source)
	assert.Zero(t, responder.answerCalls)
}

func TestAskService_Ask_Deterministic(t *testing.T) {
	service := NewAskService(setupTestStore(t), nil, deterministicSettings())
	ctx := context.Background()

	first, err := service.Ask(ctx, "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)
	second, err := service.Ask(ctx, "how do glaciers form from snow?", domain.AskOptions{})
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Source, second.Source)
}

func TestDocumentPageLabel(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		want      string
	}{
		{"multi page", 20, "pages 1-20"},
		{"single page", 1, "page 1"},
		{"unknown", 0, "source document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, documentPageLabel(tt.pageCount))
		})
	}
}

func TestLeadIn(t *testing.T) {
	assert.Equal(t, "According to the content, ", leadIn("How does it work?"))
	assert.Equal(t, "The document suggests that ", leadIn("Why is the sky blue?"))
	assert.Equal(t, "", leadIn("What is a glacier?"))
}

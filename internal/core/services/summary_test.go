package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/storage/memory"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/summarizer"
)

const longSectionText = "The harbour master kept meticulous records of every vessel. " +
	"Storms arrived without warning in the autumn months. " +
	"Fishermen learned to read the clouds and the behaviour of seabirds. " +
	"A red sky at dawn meant the boats stayed moored that day. " +
	"Trade with the inland towns depended entirely on the weekly cart convoy. " +
	"Salt, rope, and dried fish travelled east while grain and timber came west. " +
	"The village chronicle records only two shipwrecks in a hundred years. " +
	"Both happened within sight of the lighthouse on the northern point."

func setupSummaryStore(t *testing.T) *memory.SectionStore {
	t.Helper()
	store := memory.NewSectionStore()
	ctx := context.Background()

	doc := &domain.Document{ID: "doc-1", Title: "Village Chronicle", PageCount: 10}
	sections := []domain.Section{
		{ID: "sec-long", DocumentID: "doc-1", Title: "The Harbour", StartPage: 1, EndPage: 5, Text: longSectionText},
		{ID: "sec-short", DocumentID: "doc-1", Title: "Epilogue", StartPage: 10, EndPage: 10,
			Text: "The village still stands. The lighthouse still turns. Little else has changed."},
	}
	require.NoError(t, store.ReplaceDocument(ctx, doc, sections))
	return store
}

func TestSummaryService_Summarize_Extractive(t *testing.T) {
	service := NewSummaryService(setupSummaryStore(t), nil)

	summary, err := service.Summarize(context.Background(), "sec-long", false)
	require.NoError(t, err)
	require.NotEmpty(t, summary)

	// Extractive: every summary sentence must appear in the source.
	for _, sentence := range summarizer.SplitSentences(summary) {
		assert.Contains(t, longSectionText, sentence)
	}
	assert.Less(t, len(summary), len(longSectionText))
}

func TestSummaryService_Summarize_ShortSectionUnchanged(t *testing.T) {
	service := NewSummaryService(setupSummaryStore(t), nil)

	summary, err := service.Summarize(context.Background(), "sec-short", false)
	require.NoError(t, err)
	assert.Equal(t, "The village still stands. The lighthouse still turns. Little else has changed.", summary)
}

func TestSummaryService_Summarize_SectionNotFound(t *testing.T) {
	service := NewSummaryService(setupSummaryStore(t), nil)

	summary, err := service.Summarize(context.Background(), "missing", false)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, summary)
}

func TestSummaryService_Summarize_ResponderUsed(t *testing.T) {
	responder := &mockResponder{summary: "A village by the sea, seen through its harbour records."}
	service := NewSummaryService(setupSummaryStore(t), responder)

	summary, err := service.Summarize(context.Background(), "sec-long", true)
	require.NoError(t, err)
	assert.Equal(t, "A village by the sea, seen through its harbour records.", summary)
}

func TestSummaryService_Summarize_ResponderFailureFallsBack(t *testing.T) {
	responder := &mockResponder{summarizeErr: errors.New("timeout")}
	service := NewSummaryService(setupSummaryStore(t), responder)

	summary, err := service.Summarize(context.Background(), "sec-long", true)
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	// Fell back to the extractive pipeline.
	assert.True(t, strings.Contains(longSectionText, summarizer.SplitSentences(summary)[0]))
}

func TestSummaryService_Summarize_NoResponderIgnoresUseAI(t *testing.T) {
	service := NewSummaryService(setupSummaryStore(t), nil)

	summary, err := service.Summarize(context.Background(), "sec-long", true)
	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func storeTestDocument(id string) *domain.Document {
	return &domain.Document{
		ID:         id,
		Title:      "Field Notes",
		URI:        "/docs/field-notes.pdf",
		PageCount:  9,
		IngestedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func storeTestSections(docID string) []domain.Section {
	return []domain.Section{
		{ID: "sec-1", DocumentID: docID, Title: "Spring", StartPage: 1, EndPage: 4, Position: 0, Text: "Spring observations."},
		{ID: "sec-2", DocumentID: docID, Title: "Autumn", StartPage: 5, EndPage: 9, Position: 1, Text: "Autumn observations."},
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "library.db"), store.Path())
}

func TestNewStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), storeTestSections("doc-1")))
	require.NoError(t, store.Close())

	// Reopening runs migrations idempotently and keeps the data.
	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	doc, err := reopened.ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, 9, doc.PageCount)
}

func TestStore_ActiveDocument_Empty(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.ActiveDocument(context.Background())
	require.ErrorIs(t, err, domain.ErrNoDocument)
	assert.Nil(t, doc)
}

func TestStore_ReplaceDocument_Success(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), storeTestSections("doc-1")))

	doc, err := store.ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Field Notes", doc.Title)

	sections, err := store.ListSections(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Spring", sections[0].Title)
	assert.Equal(t, "Autumn", sections[1].Title)
}

func TestStore_ReplaceDocument_ReplacesPrevious(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), storeTestSections("doc-1")))
	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-2"), storeTestSections("doc-2")[:1]))

	doc, err := store.ActiveDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "doc-2", doc.ID)

	// Cascade removed the old document's sections.
	old, err := store.ListSections(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestStore_ListSections_OrderedByPosition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Insert out of order; position must win.
	sections := storeTestSections("doc-1")
	sections[0], sections[1] = sections[1], sections[0]
	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), sections))

	listed, err := store.ListSections(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, 0, listed[0].Position)
	assert.Equal(t, 1, listed[1].Position)
}

func TestStore_GetSection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), storeTestSections("doc-1")))

	sec, err := store.GetSection(ctx, "sec-2")
	require.NoError(t, err)
	assert.Equal(t, "Autumn", sec.Title)
	assert.Equal(t, 5, sec.StartPage)
	assert.Equal(t, 9, sec.EndPage)

	_, err = store.GetSection(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceDocument(ctx, storeTestDocument("doc-1"), storeTestSections("doc-1")))
	require.NoError(t, store.Clear(ctx))

	_, err := store.ActiveDocument(ctx)
	assert.ErrorIs(t, err, domain.ErrNoDocument)

	sections, err := store.ListSections(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, sections)
}

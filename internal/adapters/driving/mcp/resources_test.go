package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

func TestExtractSectionID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid section URI",
			uri:      "readcast://sections/sec-123",
			expected: "sec-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://sections/sec-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractSectionID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document service returns not found", func(t *testing.T) {
		ports := &Ports{Ask: &mockAskService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://document")
		_, err = server.handleDocumentResource(ctx, req)
		assert.Error(t, err)
	})

	t.Run("returns document with sections", func(t *testing.T) {
		mockDoc := &mockDocumentService{
			document: &domain.Document{Title: "Field Notes", URI: "/docs/notes.pdf", PageCount: 9},
			sections: []domain.Section{
				{ID: "sec-1", Title: "Spring", StartPage: 1, EndPage: 4},
			},
		}

		ports := &Ports{Ask: &mockAskService{}, Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://document")
		result, err := server.handleDocumentResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"title": "Field Notes"`)
		assert.Contains(t, result.Contents[0].Text, `"pages": "pages 1-4"`)
	})

	t.Run("propagates document errors", func(t *testing.T) {
		mockDoc := &mockDocumentService{err: domain.ErrNoDocument}

		ports := &Ports{Ask: &mockAskService{}, Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://document")
		_, err = server.handleDocumentResource(ctx, req)
		assert.ErrorIs(t, err, domain.ErrNoDocument)
	})
}

func TestServer_handleSectionResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns section text", func(t *testing.T) {
		mockDoc := &mockDocumentService{
			section: &domain.Section{ID: "sec-1", Title: "Spring", Text: "Spring observations."},
		}

		ports := &Ports{Ask: &mockAskService{}, Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://sections/sec-1")
		result, err := server.handleSectionResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "Spring observations.", result.Contents[0].Text)
	})

	t.Run("malformed URI returns not found", func(t *testing.T) {
		ports := &Ports{Ask: &mockAskService{}, Document: &mockDocumentService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://other/sec-1")
		_, err = server.handleSectionResource(ctx, req)
		assert.Error(t, err)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		mockDoc := &mockDocumentService{err: errors.New("db gone")}

		ports := &Ports{Ask: &mockAskService{}, Document: mockDoc}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("readcast://sections/sec-1")
		_, err = server.handleSectionResource(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db gone")
	})
}

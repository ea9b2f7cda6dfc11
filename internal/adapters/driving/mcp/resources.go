package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Readcast resources.
	uriScheme = "readcast://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the active document's section listing.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "document",
		Name:        "document",
		Description: "The active document and its sections",
		MIMEType:    "application/json",
	}, s.handleDocumentResource)

	// Template for section text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sections/{sectionId}",
		Name:        "section-text",
		Description: "Full text of a specific section",
		MIMEType:    "text/plain",
	}, s.handleSectionResource)
}

// handleDocumentResource returns the active document with its sections.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc, err := s.ports.Document.Active(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting active document: %w", err)
	}

	sections, err := s.ports.Document.Sections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	type sectionInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Pages string `json:"pages"`
	}
	type docInfo struct {
		Title     string        `json:"title"`
		URI       string        `json:"uri"`
		PageCount int           `json:"page_count"`
		Sections  []sectionInfo `json:"sections"`
	}

	info := docInfo{
		Title:     doc.Title,
		URI:       doc.URI,
		PageCount: doc.PageCount,
		Sections:  make([]sectionInfo, len(sections)),
	}
	for i := range sections {
		info.Sections[i] = sectionInfo{
			ID:    sections[i].ID,
			Title: sections[i].Title,
			Pages: sections[i].PageLabel(),
		}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource returns the full text of a specific section.
func (s *Server) handleSectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Document == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract sectionId from URI: readcast://sections/{sectionId}
	sectionID := extractSectionID(req.Params.URI)
	if sectionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sec, err := s.ports.Document.Section(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     sec.Text,
		}},
	}, nil
}

// extractSectionID extracts the section ID from a URI like readcast://sections/{sectionId}.
func extractSectionID(uri string) string {
	const prefix = uriScheme + "sections/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	Question  string `json:"question" jsonschema:"the question to answer from the active document"`
	SectionID string `json:"section_id,omitempty" jsonschema:"restrict the question to one section"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Answer   string `json:"answer"`
	Citation string `json:"citation"`
	Source   string `json:"source"`
}

// SummarizeInput is the input schema for the summarize_section tool.
type SummarizeInput struct {
	SectionID string `json:"section_id" jsonschema:"the section to summarize"`
	UseAI     bool   `json:"use_ai,omitempty" jsonschema:"use the configured AI provider instead of the extractive summarizer"`
}

// SummarizeOutput is the output schema for the summarize_section tool.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// SectionsOutput is the output schema for the list_sections tool.
type SectionsOutput struct {
	DocumentTitle string          `json:"document_title"`
	Sections      []SectionOutput `json:"sections"`
	Count         int             `json:"count"`
}

// SectionOutput represents a single section in a listing.
type SectionOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PageLabel string `json:"page_label"`
	Position  int    `json:"position"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Ask a question about the active document; the answer cites its source pages",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize_section",
		Description: "Summarize one section of the active document",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List the sections of the active document",
	}, s.handleListSections)
}

// handleAsk handles the ask_document tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	opts := domain.AskOptions{SectionID: input.SectionID}
	answer, err := s.ports.Ask.Ask(ctx, input.Question, opts)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:   answer.Text,
		Citation: answer.Citation,
		Source:   string(answer.Source),
	}, nil
}

// handleSummarize handles the summarize_section tool invocation.
func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	if s.ports.Summary == nil {
		return nil, SummarizeOutput{}, errors.New("summary service not available")
	}

	summary, err := s.ports.Summary.Summarize(ctx, input.SectionID, input.UseAI)
	if err != nil {
		return nil, SummarizeOutput{}, err
	}

	return nil, SummarizeOutput{Summary: summary}, nil
}

// handleListSections handles the list_sections tool invocation.
func (s *Server) handleListSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, SectionsOutput, error) {
	if s.ports.Document == nil {
		return nil, SectionsOutput{}, errors.New("document service not available")
	}

	doc, err := s.ports.Document.Active(ctx)
	if err != nil {
		return nil, SectionsOutput{}, err
	}

	sections, err := s.ports.Document.Sections(ctx)
	if err != nil {
		return nil, SectionsOutput{}, err
	}

	output := SectionsOutput{
		DocumentTitle: doc.Title,
		Sections:      make([]SectionOutput, len(sections)),
		Count:         len(sections),
	}

	for i := range sections {
		output.Sections[i] = SectionOutput{
			ID:        sections[i].ID,
			Title:     sections[i].Title,
			PageLabel: sections[i].PageLabel(),
			Position:  sections[i].Position,
		}
	}

	return nil, output, nil
}

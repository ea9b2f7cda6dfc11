// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

// AskCompleted carries a composed answer back to the model.
type AskCompleted struct {
	Answer *domain.Answer
	Err    error
}

// SectionsLoaded carries the active document and its sections.
type SectionsLoaded struct {
	Document *domain.Document
	Sections []domain.Section
	Err      error
}

// SummaryLoaded carries a section summary back to the sections view.
type SummaryLoaded struct {
	SectionID string
	Title     string
	Summary   string
	Err       error
}

// SectionChosen is sent when a section is selected as the ask scope.
type SectionChosen struct {
	Section domain.Section
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewAsk is the question input and answer view.
	ViewAsk
	// ViewSections is the section listing view.
	ViewSections
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewAsk:
		return "ask"
	case ViewSections:
		return "sections"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

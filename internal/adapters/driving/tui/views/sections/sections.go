// Package sections provides the section listing view for the TUI.
package sections

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/messages"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/styles"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
)

// View lists the active document's sections. Selecting a section
// scopes the ask view to it; 's' shows an inline summary.
type View struct {
	styles *styles.Styles

	documentService driving.DocumentService
	summaryService  driving.SummaryService
	ctx             context.Context

	document *domain.Document
	sections []domain.Section
	selected int

	summaryTitle string
	summary      string
	summaryErr   error

	width  int
	height int
	ready  bool
	loaded bool
	err    error
}

// NewView creates a new sections view. summaryService may be nil, in
// which case the summarize key is disabled.
func NewView(s *styles.Styles, documentService driving.DocumentService, summaryService driving.SummaryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		documentService: documentService,
		summaryService:  summaryService,
		ctx:             context.Background(),
		width:           80,
		height:          24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init triggers the initial section load.
func (v *View) Init() tea.Cmd {
	return v.loadSections()
}

// Update handles messages for the sections view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SectionsLoaded:
		v.loaded = true
		v.err = msg.Err
		v.document = msg.Document
		v.sections = msg.Sections
		if v.selected >= len(v.sections) {
			v.selected = 0
		}
		return v, nil

	case messages.SummaryLoaded:
		v.summaryTitle = msg.Title
		v.summary = msg.Summary
		v.summaryErr = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.sections)-1 {
			v.selected++
		}
		return v, nil

	case "r":
		v.loaded = false
		return v, v.loadSections()

	case "s":
		if v.summaryService == nil || len(v.sections) == 0 {
			return v, nil
		}
		return v, v.loadSummary(v.sections[v.selected])

	case "enter":
		if len(v.sections) == 0 {
			return v, nil
		}
		sec := v.sections[v.selected]
		return v, func() tea.Msg {
			return messages.SectionChosen{Section: sec}
		}
	}

	return v, nil
}

// loadSections fetches the active document and its sections.
func (v *View) loadSections() tea.Cmd {
	return func() tea.Msg {
		doc, err := v.documentService.Active(v.ctx)
		if err != nil {
			return messages.SectionsLoaded{Err: err}
		}

		sections, err := v.documentService.Sections(v.ctx)
		if err != nil {
			return messages.SectionsLoaded{Document: doc, Err: err}
		}

		return messages.SectionsLoaded{Document: doc, Sections: sections}
	}
}

// loadSummary fetches an extractive summary of the section.
func (v *View) loadSummary(sec domain.Section) tea.Cmd {
	return func() tea.Msg {
		summary, err := v.summaryService.Summarize(v.ctx, sec.ID, false)
		return messages.SummaryLoaded{
			SectionID: sec.ID,
			Title:     sec.Title,
			Summary:   summary,
			Err:       err,
		}
	}
}

// View renders the sections view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := v.styles.Title.Render("Sections")
	b.WriteString(title)
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")

	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")

	case len(v.sections) == 0:
		b.WriteString(v.styles.Muted.Render("No sections. Ingest a document first."))
		b.WriteString("\n")

	default:
		if v.document != nil {
			b.WriteString(v.styles.Subtitle.Render(
				fmt.Sprintf("%s (%d pages)", v.document.Title, v.document.PageCount)))
			b.WriteString("\n\n")
		}

		for i, sec := range v.sections {
			cursor := "  "
			line := fmt.Sprintf("%s (%s)", sec.Title, sec.PageLabel())

			if i == v.selected {
				cursor = "> "
				line = v.styles.Selected.Render(line)
			} else {
				line = v.styles.Normal.Render(line)
			}

			b.WriteString(cursor + line)
			b.WriteString("\n")
		}

		if v.summaryErr != nil {
			b.WriteString("\n")
			b.WriteString(v.styles.Error.Render("Summary error: " + v.summaryErr.Error()))
			b.WriteString("\n")
		} else if v.summary != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Subtitle.Render("Summary: " + v.summaryTitle))
			b.WriteString("\n")
			b.WriteString(v.styles.Normal.Render(v.summary))
			b.WriteString("\n")
		}
	}

	hints := "[j/k] Navigate  [Enter] Ask about section  [r] Reload  [Esc] Back"
	if v.summaryService != nil {
		hints = "[j/k] Navigate  [Enter] Ask about section  [s] Summarize  [r] Reload  [Esc] Back"
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(hints))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedSection returns the currently selected section, nil when
// the list is empty.
func (v *View) SelectedSection() *domain.Section {
	if len(v.sections) == 0 {
		return nil
	}
	return &v.sections[v.selected]
}

// Sections returns the loaded sections.
func (v *View) Sections() []domain.Section {
	return v.sections
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

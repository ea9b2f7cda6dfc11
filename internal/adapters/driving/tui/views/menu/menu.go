// Package menu provides the TUI's landing view.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/messages"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/styles"
)

// Item is one menu entry. A zero target with Quit unset is invalid.
type Item struct {
	Label string
	Hint  string
	View  messages.ViewType
	Quit  bool
}

// View is the landing menu.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates the menu with the fixed readcast entries.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Ask", Hint: "question the active document", View: messages.ViewAsk},
			{Label: "Sections", Hint: "browse detected sections", View: messages.ViewSections},
			{Label: "Quit", Hint: "leave readcast", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init implements the view contract; the menu needs no startup work.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case "enter":
			chosen := v.items[v.selected]
			if chosen.Quit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: chosen.View}
			}
		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Readcast"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Document Question Answering"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> ")
			b.WriteString(v.styles.Selected.Render(item.Label))
		} else {
			b.WriteString("  ")
			b.WriteString(v.styles.Normal.Render(item.Label))
		}
		b.WriteString("  ")
		b.WriteString(v.styles.Muted.Render(item.Hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions records the window size and marks the view ready.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the index of the highlighted entry.
func (v *View) Selected() int {
	return v.selected
}

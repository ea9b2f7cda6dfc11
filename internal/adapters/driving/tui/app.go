package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/messages"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/styles"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/views/ask"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/views/menu"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/views/sections"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// menuView is the main navigation menu.
	menuView *menu.View

	// askView is the question-and-answer view.
	askView *ask.View

	// sectionsView is the section listing view.
	sectionsView *sections.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		askView:      ask.NewView(s, nil, ports.Ask),
		sectionsView: sections.NewView(s, ports.Document, ports.Summary),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	a.sectionsView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("readcast - Document Q&A"),
		a.sectionsView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.askView.SetDimensions(msg.Width, msg.Height)
		a.sectionsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
			return a, cmd

		case messages.ViewSections:
			a.sectionsView, cmd = a.sectionsView.Update(msg)
			return a, cmd
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSections {
			return a, a.sectionsView.Init()
		}
		return a, nil

	case messages.SectionChosen:
		// Choosing a section jumps to the ask view scoped to it.
		a.askView, _ = a.askView.Update(msg)
		a.currentView = messages.ViewAsk
		return a, nil

	case messages.AskCompleted:
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd

	case messages.SectionsLoaded:
		a.sectionsView, cmd = a.sectionsView.Update(msg)
		return a, cmd

	case messages.SummaryLoaded:
		a.sectionsView, cmd = a.sectionsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
// It renders the currently active view.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewAsk:
		return a.askView.View()
	case messages.ViewSections:
		return a.sectionsView.View()
	default:
		return a.menuView.View()
	}
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Package ask provides the question-and-answer view for the TUI.
package ask

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/components/input"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/components/status"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/keymap"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/messages"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/tui/styles"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
)

// View represents the ask view with question input, answer display,
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	statusbar *status.Bar

	askService driving.AskService
	ctx        context.Context

	// scope restricts questions to one section when set.
	scope *domain.Section

	answer *domain.Answer

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = answer mode
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, askService driving.AskService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQuestionInput(s),
		statusbar:  status.NewBar(s, km),
		askService: askService,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AskCompleted:
		v.handleAskCompleted(msg)
		return v, nil

	case messages.SectionChosen:
		v.SetScope(&msg.Section)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to go back to menu
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Enter in input mode submits the question
	if msg.Type == tea.KeyEnter && v.focusInput {
		question := v.input.Value()
		if question == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateThinking)
		v.focusInput = false
		v.input.Blur()
		return v, v.performAsk(question)
	}

	// Input mode: all keys go to input
	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		return v, nil
	}

	// Answer mode
	if msg.String() == "n" {
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		return v, nil
	}

	return v, nil
}

// performAsk asks the question and returns the answer as a message.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		opts := domain.AskOptions{}
		if v.scope != nil {
			opts.SectionID = v.scope.ID
		}

		answer, err := v.askService.Ask(v.ctx, question, opts)
		return messages.AskCompleted{Answer: answer, Err: err}
	}
}

// handleAskCompleted processes a composed answer.
func (v *View) handleAskCompleted(msg messages.AskCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.answer = msg.Answer
	v.statusbar.SetState(status.StateAnswer)
	v.focusInput = false
	v.input.Blur()
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Readcast")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	if v.answer != nil {
		sections = append(sections, v.renderAnswer(), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderAnswer renders the answer body with the citation line styled
// separately.
func (v *View) renderAnswer() string {
	body := v.answer.Text
	citation := v.answer.Citation
	if citation != "" {
		body = strings.TrimSuffix(strings.TrimSuffix(body, citation), "\n\n")
	}

	wrap := v.width - 4
	if wrap < 20 {
		wrap = 20
	}

	lines := []string{
		v.styles.Normal.Width(wrap).Render(body),
	}
	if citation != "" {
		lines = append(lines, "", v.styles.Citation.Render(citation))
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// SetScope restricts questions to one section; nil means the whole
// document.
func (v *View) SetScope(sec *domain.Section) {
	v.scope = sec
	if sec == nil {
		v.statusbar.SetScope("")
		return
	}
	v.statusbar.SetScope(sec.Title)
}

// Scope returns the current section scope, nil for whole document.
func (v *View) Scope() *domain.Section {
	return v.scope
}

// Question returns the current question text.
func (v *View) Question() string {
	return v.input.Value()
}

// Answer returns the last composed answer.
func (v *View) Answer() *domain.Answer {
	return v.answer
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.answer = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

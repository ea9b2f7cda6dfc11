// Package styles holds the lipgloss styling shared by the TUI views.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the readcast colour scheme. Orange carries the brand;
// cyan marks citations and secondary headings.
type Palette struct {
	Accent     lipgloss.Color
	Highlight  lipgloss.Color
	Text       lipgloss.Color
	Faint      lipgloss.Color
	Alert      lipgloss.Color
	Frame      lipgloss.Color
	BarSurface lipgloss.Color
}

// DefaultPalette returns the standard readcast colours.
func DefaultPalette() Palette {
	return Palette{
		Accent:     lipgloss.Color("#F97316"),
		Highlight:  lipgloss.Color("#06B6D4"),
		Text:       lipgloss.Color("#CDD6F4"),
		Faint:      lipgloss.Color("#6C7086"),
		Alert:      lipgloss.Color("#F38BA8"),
		Frame:      lipgloss.Color("#45475A"),
		BarSurface: lipgloss.Color("#181825"),
	}
}

// Styles are the pre-built lipgloss styles the views render with.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Citation   lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style
}

// FromPalette builds the view styles from a palette.
func FromPalette(p Palette) *Styles {
	frame := lipgloss.RoundedBorder()

	return &Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.Highlight),
		Normal:   lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Faint),
		Selected: lipgloss.NewStyle().Bold(true).
			Foreground(p.Text).
			Background(p.Accent),
		Error:    lipgloss.NewStyle().Foreground(p.Alert),
		Citation: lipgloss.NewStyle().Italic(true).Foreground(p.Highlight),
		InputField: lipgloss.NewStyle().
			BorderStyle(frame).
			BorderForeground(p.Frame).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(p.Faint).
			Background(p.BarSurface).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(frame).
			BorderForeground(p.Frame),
	}
}

// DefaultStyles returns styles built from the default palette.
func DefaultStyles() *Styles {
	return FromPalette(DefaultPalette())
}

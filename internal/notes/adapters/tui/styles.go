package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	muted       = lipgloss.Color("#7a8594")
	destructive = lipgloss.Color("#e53935")
	border      = lipgloss.Color("#2a3850")
)

// Styles стили экрана заметок.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Text     lipgloss.Style
	Meta     lipgloss.Style
	Empty    lipgloss.Style
	Form     lipgloss.Style
	Label    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles возвращает стандартную палитру.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Text:     lipgloss.NewStyle().PaddingLeft(2),
		Meta:     lipgloss.NewStyle().PaddingLeft(2).Foreground(muted).Italic(true),
		Empty:    lipgloss.NewStyle().Foreground(muted),
		Form:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1).MarginTop(1),
		Label:    lipgloss.NewStyle().Foreground(muted),
		Status:   lipgloss.NewStyle().Foreground(destructive),
		Help:     lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}

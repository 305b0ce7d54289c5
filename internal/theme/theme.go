package theme

import "github.com/charmbracelet/lipgloss"

const (
	accent = lipgloss.Color("#b4befe")
	subtle = lipgloss.Color("#bac2de")
	muted  = lipgloss.Color("#6c7086")
	alert  = lipgloss.Color("#f38ba8")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Prompt        *lipgloss.Style
	Query         *lipgloss.Style
	Cursor        *lipgloss.Style
	Item          *lipgloss.Style
	ItemIndicator *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Info          *lipgloss.Style
	Suggestion    *lipgloss.Style
	Notice        *lipgloss.Style
	Footer        *lipgloss.Style
	Title         *lipgloss.Style
}

var defaultStyles = Styles{
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(accent).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(subtle),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(subtle),
	),
	Item: ptr(
		lipgloss.NewStyle(),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(accent),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(muted).Italic(true),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(subtle),
	),
	Notice: ptr(
		lipgloss.NewStyle().Foreground(alert),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(muted),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(subtle),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

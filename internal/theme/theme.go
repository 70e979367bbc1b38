package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border      *lipgloss.Style
	Title       *lipgloss.Style
	Tab         *lipgloss.Style
	ActiveTab   *lipgloss.Style
	Divider     *lipgloss.Style
	Content     *lipgloss.Style
	HelpKey     *lipgloss.Style
	HelpDesc    *lipgloss.Style
	HelpDivider *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Content: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	HelpDesc: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	HelpDivider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

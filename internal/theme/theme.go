package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Label         *lipgloss.Style
	FocusedLabel  *lipgloss.Style
	Field         *lipgloss.Style
	FocusedField  *lipgloss.Style
	Button        *lipgloss.Style
	FocusedButton *lipgloss.Style
	Divider       *lipgloss.Style
	Link          *lipgloss.Style
	FocusedLink   *lipgloss.Style
	Popup         *lipgloss.Style
	PopupSelected *lipgloss.Style
	Status        *lipgloss.Style
	Footer        *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	FocusedField: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
	),
	FocusedLink: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Underline(true),
	),
	Popup: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
	),
	PopupSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

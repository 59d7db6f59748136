package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	ActiveBorder  *lipgloss.Style
	HoveredBorder *lipgloss.Style
	IdleBorder    *lipgloss.Style
	Title         *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Timestamp     *lipgloss.Style
	Author        *lipgloss.Style
	MessageText   *lipgloss.Style
	Placeholder   *lipgloss.Style
	Input         *lipgloss.Style
	Cursor        *lipgloss.Style
	Error         *lipgloss.Style
	Footer        *lipgloss.Style
}

var defaultStyles = Styles{
	ActiveBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	),
	HoveredBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	),
	IdleBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Bold(true),
	),
	Timestamp: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	Author: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	MessageText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Input: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Border picks the border style for a pane: active wins over hovered.
func (s *Styles) Border(active, hovered bool) *lipgloss.Style {
	switch {
	case active:
		return s.ActiveBorder
	case hovered:
		return s.HoveredBorder
	default:
		return s.IdleBorder
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

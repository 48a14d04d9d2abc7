package theme

import "charm.land/lipgloss/v2"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading       *lipgloss.Style
	Tab           *lipgloss.Style
	ActiveTab     *lipgloss.Style
	TableHeader   *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Monitored     *lipgloss.Style
	Unmonitored   *lipgloss.Style
	Downloaded    *lipgloss.Style
	Missing       *lipgloss.Style
	Error         *lipgloss.Style
	Success       *lipgloss.Style
	Info          *lipgloss.Style
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Popup         *lipgloss.Style
	PopupTitle    *lipgloss.Style
	Input         *lipgloss.Style
	FocusedInput  *lipgloss.Style
	Cursor        *lipgloss.Style
	Button        *lipgloss.Style
	FocusedButton *lipgloss.Style
	HelpKey       *lipgloss.Style
	HelpDesc      *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true).Underline(true).Padding(0, 1),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Monitored: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Unmonitored: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Downloaded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Missing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Success: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Popup: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
	),
	PopupTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Input: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
	),
	FocusedInput: ptr(
		lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("34")).
			Padding(0, 1),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 2),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("34")).Bold(true).Padding(0, 2),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	HelpDesc: ptr(
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

package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSubtle = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	colorText   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	colorBody   = lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#A8A8A8"}
)

// Text styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	ValueStyle  = lipgloss.NewStyle().Foreground(colorText)
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	InfoStyle   = lipgloss.NewStyle().Foreground(colorAccent)
)

// Row styles.
var (
	RowStyle         = lipgloss.NewStyle().Foreground(colorText)
	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	BodyStyle        = lipgloss.NewStyle().Foreground(colorBody).PaddingLeft(bodyIndent)
)

// Control styles.
var (
	OptionStyle         = lipgloss.NewStyle().Foreground(colorText)
	SelectedOptionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	ButtonStyle         = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	DisabledButtonStyle = lipgloss.NewStyle().Foreground(colorSubtle).Faint(true)
)

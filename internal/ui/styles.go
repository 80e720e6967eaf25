package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for keys, borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for the elapsed flash
)

// ScreenWidth is the width of the watch screen in terminal columns.
const ScreenWidth = 24

// ScreenHeight is the number of text rows inside the watch screen.
const ScreenHeight = 7

// Styles contains shared style definitions used by the watch face.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - app title above the screen
	Screen   lipgloss.Style // Watch screen with rounded border
	Flash    lipgloss.Style // Watch screen while the elapsed pulse plays
	Text     lipgloss.Style // Display text inside the screen
	Prompt   lipgloss.Style // Feedback prompt inside the screen
	Status   lipgloss.Style // Interval line under the screen
	Error    lipgloss.Style // Haptic failures
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Screen: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Width(ScreenWidth).
		Height(ScreenHeight).
		Align(lipgloss.Center, lipgloss.Center),
	Flash: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Width(ScreenWidth).
		Height(ScreenHeight).
		Align(lipgloss.Center, lipgloss.Center),
	Text: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Prompt: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

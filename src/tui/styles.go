package tui

import "github.com/charmbracelet/lipgloss"

// Dracula colors, shared with the rest of the apimgr tooling
var (
	cyan   = lipgloss.Color("#8be9fd")
	red    = lipgloss.Color("#ff5555")
	purple = lipgloss.Color("#bd93f9")
)

// Semantic style roles rather than numbered pairs
var (
	// headerStyle highlights the list-view banner
	headerStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	// summaryStyle is the emphasis role for per-game summary lines
	summaryStyle = lipgloss.NewStyle().
			Foreground(cyan)

	// statusBarStyle is the reverse-video footer row
	statusBarStyle = lipgloss.NewStyle().
			Reverse(true)
)

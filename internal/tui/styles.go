package tui

import "github.com/charmbracelet/lipgloss"

var asciiBorder = lipgloss.Border{
	Top:         "-",
	Bottom:      "-",
	Left:        "|",
	Right:       "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("247"))

	focusedLabelStyle = labelStyle.Copy().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	verseStyle = lipgloss.NewStyle().
			Border(asciiBorder).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))

	missStyle = verseStyle.Copy().
			BorderForeground(lipgloss.Color("161")).
			Foreground(lipgloss.Color("230"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110")).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

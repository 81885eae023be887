// Package tui provides the Bubble Tea models for gallows: the main
// menu, the round setup flow, the round itself, the custom-words
// editor, and the score history screen.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shared styles, in the muted palette the score table uses.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))
)

// TickMsg is sent once a second while a round is running so the clock
// readout stays fresh. It never mutates game state; the clock is only
// charged when a guess is submitted.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

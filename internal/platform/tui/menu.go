package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceAddWords
	MenuChoiceScores
	MenuChoiceQuit
)

type menuItem struct {
	choice MenuChoice
	title  string
}

// MenuModel is the Bubble Tea model for the top-level menu.
type MenuModel struct {
	items    []menuItem
	cursor   int
	width    int
	height   int
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items: []menuItem{
			{MenuChoicePlay, "Play"},
			{MenuChoiceAddWords, "Add Custom Words"},
			{MenuChoiceScores, "High Scores"},
			{MenuChoiceQuit, "Exit"},
		},
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			m.selected = MenuChoiceQuit
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case "enter", " ":
			m.selected = m.items[m.cursor].choice
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  G A L L O W S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(faintStyle.Render("A word against the clock"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, item.title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(faintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the outcome of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Width  int
	Height int
}

// RunMenu runs the top-level menu and returns the selection.
func RunMenu(width, height int) (MenuResult, error) {
	model := NewMenuModel(width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Width: width, Height: height}, nil
	}

	choice := m.selected
	if choice == MenuChoiceNone {
		choice = MenuChoiceQuit
	}
	return MenuResult{Choice: choice, Width: m.width, Height: m.height}, nil
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/game"
	"github.com/avolkov/gallows/internal/savegame"
)

// setupStage tracks where the player is in the pre-round flow.
type setupStage int

const (
	stageAskLoad setupStage = iota
	stagePickSave
	stagePickDifficulty
)

// SetupResult is the outcome of the setup flow: either a loaded state
// to resume, or a difficulty to start fresh with, or Back to the menu.
type SetupResult struct {
	Loaded     *game.State
	SaveName   string
	Difficulty config.Difficulty
	Back       bool
	Width      int
	Height     int
}

// SetupModel walks the player through load-or-new and difficulty
// selection before a round starts.
type SetupModel struct {
	saves *savegame.Store
	cfg   config.Config

	stage     setupStage
	saveFiles []string
	cursor    int
	message   string

	loaded     *game.State
	saveName   string
	difficulty config.Difficulty
	back       bool
	quitting   bool

	width  int
	height int
}

// NewSetupModel creates the setup model.
func NewSetupModel(saves *savegame.Store, cfg config.Config, width, height int) SetupModel {
	return SetupModel{
		saves:  saves,
		cfg:    cfg,
		stage:  stageAskLoad,
		width:  width,
		height: height,
	}
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup flow.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			m.back = true
			return m, tea.Quit
		}

		switch m.stage {
		case stageAskLoad:
			return m.handleAskLoad(msg)
		case stagePickSave:
			return m.handlePickSave(msg)
		case stagePickDifficulty:
			return m.handlePickDifficulty(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleAskLoad processes the "load saved game? (y/n)" prompt. Any
// other key re-prompts.
func (m SetupModel) handleAskLoad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		files, err := m.saves.List()
		if err != nil || len(files) == 0 {
			m.message = "No saved games found. Starting a new game instead."
			m.stage = stagePickDifficulty
			m.cursor = 0
			return m, nil
		}
		m.saveFiles = files
		m.stage = stagePickSave
		m.cursor = 0
		m.message = ""

	case "n":
		m.stage = stagePickDifficulty
		m.cursor = 0
		m.message = ""

	case "esc", "q":
		m.back = true
		return m, tea.Quit

	default:
		m.message = "Please press y or n."
	}
	return m, nil
}

// handlePickSave processes the save-file list.
func (m SetupModel) handlePickSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.saveFiles)-1 {
			m.cursor++
		}

	case "enter", " ":
		name := m.saveFiles[m.cursor]
		st, err := m.saves.Load(name)
		if err != nil {
			// Corrupt or unreadable save: report and fall back to a
			// new round rather than aborting.
			m.message = fmt.Sprintf("Could not load %s. Starting a new game instead.", name)
			m.stage = stagePickDifficulty
			m.cursor = 0
			return m, nil
		}
		m.loaded = &st
		m.saveName = name
		return m, tea.Quit

	case "esc", "0":
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// handlePickDifficulty processes the difficulty list.
func (m SetupModel) handlePickDifficulty(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := config.Difficulties()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(choices)-1 {
			m.cursor++
		}

	case "enter", " ":
		m.difficulty = choices[m.cursor]
		return m, tea.Quit

	case "esc":
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current setup stage.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("New Round"), m.width))
	b.WriteString("\n\n")

	switch m.stage {
	case stageAskLoad:
		b.WriteString(centerText("Load a saved game? (y/n)", m.width))
		b.WriteString("\n")

	case stagePickSave:
		b.WriteString(centerText("Available saved games:", m.width))
		b.WriteString("\n\n")
		for i, f := range m.saveFiles {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%s%d. %s", cursor, i+1, f), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(faintStyle.Render("Enter: Load  |  Esc: Back"), m.width))
		b.WriteString("\n")

	case stagePickDifficulty:
		b.WriteString(centerText("Choose difficulty:", m.width))
		b.WriteString("\n\n")
		for i, d := range config.Difficulties() {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			rng := m.cfg.Difficulties[d]
			line := fmt.Sprintf("%s%-7s %s", cursor, d, faintStyle.Render(fmt.Sprintf("(%d-%d letters)", rng.Min, rng.Max)))
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText(faintStyle.Render("Enter: Start  |  Esc: Back"), m.width))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(centerText(errorStyle.Render(m.message), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// RunSetup runs the pre-round flow and returns its result.
func RunSetup(saves *savegame.Store, cfg config.Config, width, height int) (SetupResult, error) {
	model := NewSetupModel(saves, cfg, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{Back: true, Width: width, Height: height}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Back: true, Width: width, Height: height}, nil
	}

	return SetupResult{
		Loaded:     m.loaded,
		SaveName:   m.saveName,
		Difficulty: m.difficulty,
		Back:       m.back,
		Width:      m.width,
		Height:     m.height,
	}, nil
}

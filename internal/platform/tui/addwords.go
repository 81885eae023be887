package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/gallows/internal/words"
)

// AddWordsModel is the Bubble Tea model for extending the custom word
// list interactively.
type AddWordsModel struct {
	source   *words.Source
	input    textinput.Model
	message  string
	isError  bool
	added    int
	quitting bool
	width    int
	height   int
}

// NewAddWordsModel creates the add-words model.
func NewAddWordsModel(source *words.Source, minLen, maxLen, width, height int) AddWordsModel {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("word (%d-%d letters) or \"done\"", minLen, maxLen)
	input.CharLimit = 32
	input.Width = 34
	input.Focus()

	return AddWordsModel{
		source: source,
		input:  input,
		width:  width,
		height: height,
	}
}

// Init initializes the add-words model.
func (m AddWordsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the add-words screen.
func (m AddWordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			word := strings.ToLower(strings.TrimSpace(m.input.Value()))
			m.input.Reset()

			if word == "done" || word == "" {
				m.quitting = true
				return m, tea.Quit
			}

			if err := m.source.AddCustom(word); err != nil {
				m.isError = true
				switch {
				case errors.Is(err, words.ErrDuplicateWord):
					m.message = fmt.Sprintf("%q already exists!", word)
				case errors.Is(err, words.ErrInvalidWord):
					m.message = "Only alphabetic words within the length bounds are allowed."
				default:
					m.message = "Could not save the word."
				}
				return m, nil
			}

			m.added++
			m.isError = false
			m.message = fmt.Sprintf("Added %q to custom words!", word)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the add-words screen.
func (m AddWordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("Add Custom Words"), m.width))
	b.WriteString("\n\n")

	current := m.source.CustomWords()
	b.WriteString(centerText(faintStyle.Render(fmt.Sprintf("%d words on the custom list", len(current))), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString("\n")
		if m.isError {
			b.WriteString(centerText(errorStyle.Render(m.message), m.width))
		} else {
			b.WriteString(centerText(hintStyle.Render(m.message), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(faintStyle.Render("Enter: Add word  |  \"done\" or Esc: Back"), m.width))
	b.WriteString("\n")

	return b.String()
}

// RunAddWords runs the add-words screen. Returns how many words were
// added.
func RunAddWords(source *words.Source, minLen, maxLen, width, height int) (int, error) {
	model := NewAddWordsModel(source, minLen, maxLen, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(AddWordsModel)
	if !ok {
		return 0, nil
	}
	return m.added, nil
}

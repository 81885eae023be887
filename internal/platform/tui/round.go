package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/game"
	"github.com/avolkov/gallows/internal/savegame"
	"github.com/avolkov/gallows/internal/storage"
	"github.com/avolkov/gallows/internal/words"
)

// roundPhase tracks what the round screen is currently asking for.
type roundPhase int

const (
	phasePlaying roundPhase = iota
	phaseSaveName
	phaseContinue
)

// RoundDeps bundles the collaborators a round needs. Store may be nil
// when the history database is unavailable; recording is best-effort.
type RoundDeps struct {
	Source *words.Source
	Saves  *savegame.Store
	Store  *storage.Store
	Config config.Config
	Seed   int64
}

// RoundModel drives one or more rounds of the game. Elapsed thinking
// time is measured from the moment the prompt is shown to the moment
// the guess is submitted, then charged against the clock in one piece.
type RoundModel struct {
	deps  RoundDeps
	rules game.Rules

	round      *game.Round
	difficulty config.Difficulty
	startClock int // TimeLeft when this round started or resumed

	phase       roundPhase
	promptStart time.Time
	input       textinput.Model
	saveInput   textinput.Model

	message      string
	hint         string
	continueWarn bool
	recorded     bool
	quitting     bool

	width  int
	height int
}

// rulesFrom converts the config rules section into game rules.
func rulesFrom(cfg config.Config) game.Rules {
	return game.Rules{
		InitialScore:  cfg.Rules.InitialScore,
		InitialTime:   cfg.Rules.InitialTime,
		WrongPenalty:  cfg.Rules.WrongPenalty,
		HintThreshold: cfg.Rules.HintThreshold,
	}
}

// NewRoundModel creates the model for a fresh round on the given word.
func NewRoundModel(word string, difficulty config.Difficulty, deps RoundDeps, width, height int) RoundModel {
	rules := rulesFrom(deps.Config)
	m := newRoundModel(deps, rules, width, height)
	m.round = game.NewRound(word, rules, deps.Seed)
	m.difficulty = difficulty
	m.startClock = m.round.State.TimeLeft
	return m
}

// NewResumedRoundModel creates the model for a round loaded from a
// save file.
func NewResumedRoundModel(st game.State, deps RoundDeps, width, height int) RoundModel {
	rules := rulesFrom(deps.Config)
	m := newRoundModel(deps, rules, width, height)
	m.round = game.Resume(st, rules, deps.Seed)
	m.difficulty = difficultyForWord(deps.Config, st.Word)
	m.startClock = m.round.State.TimeLeft
	m.message = "Game loaded. Good luck!"
	return m
}

func newRoundModel(deps RoundDeps, rules game.Rules, width, height int) RoundModel {
	input := textinput.New()
	input.Placeholder = "letter, word, or \"save\""
	input.CharLimit = 32
	input.Width = 30
	input.Focus()

	saveInput := textinput.New()
	saveInput.Placeholder = "save filename (spaces allowed)"
	saveInput.CharLimit = 64
	saveInput.Width = 40

	return RoundModel{
		deps:        deps,
		rules:       rules,
		input:       input,
		saveInput:   saveInput,
		promptStart: time.Now(),
		width:       width,
		height:      height,
	}
}

// difficultyForWord maps a word back to the first difficulty whose
// length range contains it. Used when resuming a save, which does not
// record the difficulty it was started on.
func difficultyForWord(cfg config.Config, word string) config.Difficulty {
	for _, d := range config.Difficulties() {
		if cfg.Difficulties[d].Contains(len(word)) {
			return d
		}
	}
	return config.DifficultyHard
}

// Init starts the display clock.
func (m RoundModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update handles messages for the round.
func (m RoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.phase {
		case phasePlaying:
			return m.handlePlayingKey(msg)
		case phaseSaveName:
			return m.handleSaveNameKey(msg)
		case phaseContinue:
			return m.handleContinueKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		// Display refresh only; the clock is charged on submit.
		return m, tickCmd()
	}

	return m, nil
}

// handlePlayingKey processes input while the round is live.
func (m RoundModel) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "enter" {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	raw := m.input.Value()
	m.input.Reset()

	elapsed := int(time.Since(m.promptStart).Seconds())
	res := m.round.Guess(raw, elapsed)
	m.promptStart = time.Now()

	st := &m.round.State
	switch res.Outcome {
	case game.OutcomeSaveRequested:
		m.phase = phaseSaveName
		m.saveInput.Focus()
		m.input.Blur()
		m.message = ""
		return m, textinput.Blink

	case game.OutcomeTimeUp:
		m.message = fmt.Sprintf("Time's up! The word was %q.", st.Word)
		m.finishRound()
		return m, nil

	case game.OutcomeWordGuessed:
		m.message = fmt.Sprintf("You guessed the word %q! Final score: %d.", st.Word, st.Score)
		m.finishRound()
		return m, nil

	case game.OutcomeInvalid:
		m.message = "Invalid input. Enter a single letter or the full word."
		return m, nil

	case game.OutcomeRepeat:
		m.message = "You already guessed that letter."
		return m, nil

	case game.OutcomeCorrect:
		m.message = "Good guess!"

	case game.OutcomeWrong:
		m.message = fmt.Sprintf("Wrong guess! %q is not in the word.", strings.ToLower(strings.TrimSpace(raw)))
	}

	if res.Hint != "" {
		m.hint = fmt.Sprintf("Hint: the letter %q is in the word!", res.Hint)
	}

	switch st.Status {
	case game.StatusWon:
		m.message = fmt.Sprintf("You guessed the word %q! Final score: %d.", st.Word, st.Score)
		m.finishRound()
	case game.StatusLostScore:
		m.message = fmt.Sprintf("You ran out of points. The word was %q.", st.Word)
		m.finishRound()
	}

	return m, nil
}

// handleSaveNameKey processes the save-filename prompt.
func (m RoundModel) handleSaveNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel the save and keep playing; no turn was consumed.
		m.round.State.Status = game.StatusInProgress
		m.phase = phasePlaying
		m.saveInput.Reset()
		m.saveInput.Blur()
		m.input.Focus()
		m.promptStart = time.Now()
		return m, textinput.Blink

	case "enter":
		name := strings.TrimSpace(m.saveInput.Value())
		if name == "" {
			m.message = "Please enter a filename."
			return m, nil
		}
		filename, err := m.deps.Saves.Save(name, m.round.State)
		if err != nil {
			m.message = "Could not save the game. Try another name."
			return m, nil
		}
		m.message = fmt.Sprintf("Game saved as %s. Goodbye!", filename)
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

// handleContinueKey processes the play-again prompt. Anything but y or
// n re-prompts.
func (m RoundModel) handleContinueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		word, err := m.deps.Source.Pick(m.difficulty)
		if err != nil {
			m.message = "No words available for this difficulty."
			m.quitting = true
			return m, tea.Quit
		}
		m.round = game.NewRound(word, m.rules, time.Now().UnixNano())
		m.startClock = m.round.State.TimeLeft
		m.phase = phasePlaying
		m.message = ""
		m.hint = ""
		m.continueWarn = false
		m.recorded = false
		m.input.Reset()
		m.input.Focus()
		m.promptStart = time.Now()
		return m, tea.Batch(textinput.Blink, tickCmd())

	case "n", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	default:
		m.continueWarn = true
		return m, nil
	}
}

// finishRound records the result and moves to the play-again prompt.
func (m *RoundModel) finishRound() {
	m.phase = phaseContinue
	m.input.Blur()

	if m.recorded || m.deps.Store == nil {
		return
	}
	st := m.round.State

	timeLeft := st.TimeLeft
	if timeLeft < 0 {
		timeLeft = 0
	}
	//nolint:errcheck // Best-effort record, game continues regardless
	m.deps.Store.SaveResult(storage.RoundEntry{
		Word:       st.Word,
		Difficulty: string(m.difficulty),
		Score:      st.Score,
		Outcome:    st.Status.String(),
		Duration:   m.startClock - timeLeft,
	})
	m.recorded = true
}

// remainingForDisplay is the provisional clock readout: time left at
// the last check minus time spent on the current prompt.
func (m RoundModel) remainingForDisplay() int {
	remaining := m.round.State.TimeLeft
	if m.phase == phasePlaying {
		remaining -= int(time.Since(m.promptStart).Seconds())
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// View renders the round screen.
func (m RoundModel) View() string {
	if m.quitting {
		if m.message != "" {
			return m.message + "\n"
		}
		return ""
	}

	st := &m.round.State
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(fmt.Sprintf("GALLOWS - %s", m.difficulty)), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(wordStyle.Render(st.Masked()), m.width))
	b.WriteString("\n\n")

	guessed := strings.Join(st.GuessedList(), ", ")
	if guessed == "" {
		guessed = "(none)"
	}
	b.WriteString(centerText(fmt.Sprintf("Guessed: %s", guessed), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Score: %d    Time: %ds", st.Score, m.remainingForDisplay()), m.width))
	b.WriteString("\n\n")

	if m.hint != "" {
		b.WriteString(centerText(hintStyle.Render(m.hint), m.width))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(centerText(m.message, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.phase {
	case phasePlaying:
		b.WriteString(centerText(m.input.View(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(faintStyle.Render("Guess a letter or the word; type \"save\" to save & exit."), m.width))
		b.WriteString("\n")

	case phaseSaveName:
		b.WriteString(centerText(m.saveInput.View(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(faintStyle.Render("Enter: Save & exit  |  Esc: Keep playing"), m.width))
		b.WriteString("\n")

	case phaseContinue:
		b.WriteString(centerText("Play again? (y/n)", m.width))
		b.WriteString("\n")
		if m.continueWarn {
			b.WriteString(centerText(errorStyle.Render("Please press y or n."), m.width))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RunRound runs a fresh round on the given word until the player
// stops, saves, or quits.
func RunRound(word string, difficulty config.Difficulty, deps RoundDeps, width, height int) error {
	return runRound(NewRoundModel(word, difficulty, deps, width, height))
}

// RunResumedRound runs a round restored from a save file.
func RunResumedRound(st game.State, deps RoundDeps, width, height int) error {
	return runRound(NewResumedRoundModel(st, deps, width, height))
}

func runRound(model RoundModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

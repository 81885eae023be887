// Package game implements the round state machine for gallows: one
// word, a growing set of guessed letters, a score, and a clock that
// only ever counts down. The round owns its RNG so hint selection is
// reproducible under a fixed seed.
package game

import (
	"math/rand"
	"sort"
	"strings"
)

// SaveCommand is the special input that suspends a round for saving.
const SaveCommand = "save"

// Status is the lifecycle state of a round. All statuses other than
// StatusInProgress are terminal.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLostTime
	StatusLostScore
	StatusSaved
)

// Terminal reports whether the round has ended.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLostTime:
		return "lost_time"
	case StatusLostScore:
		return "lost_score"
	case StatusSaved:
		return "saved"
	default:
		return "unknown"
	}
}

// Outcome describes what a single call to Guess did.
type Outcome int

const (
	// OutcomeInvalid: input was not a letter, the word, or "save".
	// Nothing changed; the caller should re-prompt.
	OutcomeInvalid Outcome = iota
	// OutcomeRepeat: letter was already guessed. No penalty, no turn.
	OutcomeRepeat
	// OutcomeCorrect: fresh letter, present in the word.
	OutcomeCorrect
	// OutcomeWrong: fresh letter, absent from the word. Penalized.
	OutcomeWrong
	// OutcomeWordGuessed: the full word was entered.
	OutcomeWordGuessed
	// OutcomeTimeUp: the clock ran out before the input was evaluated.
	OutcomeTimeUp
	// OutcomeSaveRequested: the player typed "save".
	OutcomeSaveRequested
)

// Rules are the fixed parameters of a round, sourced from config.
type Rules struct {
	InitialScore  int
	InitialTime   int
	WrongPenalty  int
	HintThreshold int
}

// DefaultRules returns the classic ruleset.
func DefaultRules() Rules {
	return Rules{
		InitialScore:  100,
		InitialTime:   30,
		WrongPenalty:  10,
		HintThreshold: 3,
	}
}

// State is the mutable record of one round.
type State struct {
	Word             string
	Guessed          map[string]bool
	Score            int
	TimeLeft         int
	IncorrectGuesses int
	HintUsed         bool
	Status           Status
}

// NewState creates the state for a fresh round on the given word.
func NewState(word string, rules Rules) State {
	return State{
		Word:     strings.ToLower(word),
		Guessed:  make(map[string]bool),
		Score:    rules.InitialScore,
		TimeLeft: rules.InitialTime,
	}
}

// Masked returns the word with unguessed letters replaced by "_",
// space-separated for display.
func (s *State) Masked() string {
	parts := make([]string, 0, len(s.Word))
	for _, r := range s.Word {
		l := string(r)
		if s.Guessed[l] {
			parts = append(parts, l)
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// GuessedList returns the guessed letters in sorted order.
func (s *State) GuessedList() []string {
	letters := make([]string, 0, len(s.Guessed))
	for l := range s.Guessed {
		letters = append(letters, l)
	}
	sort.Strings(letters)
	return letters
}

// covered reports whether every letter of the word has been guessed.
func (s *State) covered() bool {
	for _, r := range s.Word {
		if !s.Guessed[string(r)] {
			return false
		}
	}
	return true
}

// unguessedLetters returns the distinct letters of the word not yet
// guessed, in order of first appearance.
func (s *State) unguessedLetters() []string {
	seen := make(map[string]bool)
	var missing []string
	for _, r := range s.Word {
		l := string(r)
		if s.Guessed[l] || seen[l] {
			continue
		}
		seen[l] = true
		missing = append(missing, l)
	}
	return missing
}

// Result is what a single guess produced.
type Result struct {
	Outcome Outcome
	// Hint is the revealed letter when the wrong-guess threshold was
	// crossed this turn, otherwise empty.
	Hint string
}

// Round couples a State with its rules and RNG.
type Round struct {
	rules Rules
	rng   *rand.Rand

	State State
}

// NewRound starts a round on the given word.
func NewRound(word string, rules Rules, seed int64) *Round {
	return &Round{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		State: NewState(word, rules),
	}
}

// Resume continues a round from a previously saved state.
func Resume(st State, rules Rules, seed int64) *Round {
	if st.Guessed == nil {
		st.Guessed = make(map[string]bool)
	}
	st.Status = StatusInProgress
	return &Round{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
		State: st,
	}
}

// Rules returns the ruleset the round was started with.
func (r *Round) Rules() Rules {
	return r.rules
}

// Guess applies one turn of input to the round. elapsedSeconds is the
// wall-clock time the player spent before submitting, truncated to
// whole seconds; it is charged against the clock before the input is
// evaluated. Invalid input mutates nothing.
func (r *Round) Guess(raw string, elapsedSeconds int) Result {
	st := &r.State
	if st.Status.Terminal() {
		return Result{Outcome: OutcomeInvalid}
	}

	input := strings.ToLower(strings.TrimSpace(raw))

	// Saving neither consumes a turn nor charges the clock.
	if input == SaveCommand {
		st.Status = StatusSaved
		return Result{Outcome: OutcomeSaveRequested}
	}

	st.TimeLeft -= elapsedSeconds
	if st.TimeLeft <= 0 {
		st.Status = StatusLostTime
		return Result{Outcome: OutcomeTimeUp}
	}

	if input == st.Word {
		st.Status = StatusWon
		return Result{Outcome: OutcomeWordGuessed}
	}

	if !isLetter(input) {
		return Result{Outcome: OutcomeInvalid}
	}

	if st.Guessed[input] {
		return Result{Outcome: OutcomeRepeat}
	}

	st.Guessed[input] = true

	outcome := OutcomeCorrect
	if !strings.Contains(st.Word, input) {
		outcome = OutcomeWrong
		st.IncorrectGuesses++
		st.Score -= r.rules.WrongPenalty
	}

	switch {
	case st.covered():
		st.Status = StatusWon
		return Result{Outcome: outcome}
	case st.Score <= 0:
		st.Status = StatusLostScore
		return Result{Outcome: outcome}
	}

	var hint string
	if st.IncorrectGuesses >= r.rules.HintThreshold && !st.HintUsed {
		if missing := st.unguessedLetters(); len(missing) > 0 {
			hint = missing[r.rng.Intn(len(missing))]
			st.HintUsed = true
		}
	}

	return Result{Outcome: outcome, Hint: hint}
}

// isLetter reports whether s is exactly one lowercase ASCII letter.
func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'z'
}

// ValidWord reports whether a word is usable as a round target or
// custom list entry: entirely ASCII letters, within the length bounds.
func ValidWord(word string, minLen, maxLen int) bool {
	if len(word) < minLen || len(word) > maxLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i] | 0x20 // fold to lowercase
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

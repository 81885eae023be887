package game

import (
	"strings"
	"testing"
)

func TestCleanWin(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	// One wrong guess, then the three letters of the word
	res := r.Guess("x", 1)
	if res.Outcome != OutcomeWrong {
		t.Fatalf("Expected OutcomeWrong for 'x', got %v", res.Outcome)
	}

	for _, l := range []string{"c", "a", "t"} {
		res = r.Guess(l, 1)
		if res.Outcome != OutcomeCorrect {
			t.Fatalf("Expected OutcomeCorrect for %q, got %v", l, res.Outcome)
		}
	}

	if r.State.Status != StatusWon {
		t.Errorf("Expected StatusWon, got %v", r.State.Status)
	}
	if r.State.Score != 90 {
		t.Errorf("Expected score 90 after one wrong guess, got %d", r.State.Score)
	}
	if r.State.HintUsed {
		t.Error("Hint should not fire with a single wrong guess")
	}
}

func TestFullWordGuess(t *testing.T) {
	r := NewRound("zeppelin", DefaultRules(), 1)

	res := r.Guess("zeppelin", 2)
	if res.Outcome != OutcomeWordGuessed {
		t.Fatalf("Expected OutcomeWordGuessed, got %v", res.Outcome)
	}
	if r.State.Status != StatusWon {
		t.Errorf("Expected StatusWon, got %v", r.State.Status)
	}
	if r.State.Score != 100 {
		t.Errorf("Full word guess should not cost score, got %d", r.State.Score)
	}
}

func TestTimeExpiresBeforeEvaluation(t *testing.T) {
	r := NewRound("bat", DefaultRules(), 1)

	// The player takes 31 seconds on a 30-second clock. Even a correct
	// letter loses the round because the clock is charged first.
	res := r.Guess("b", 31)
	if res.Outcome != OutcomeTimeUp {
		t.Fatalf("Expected OutcomeTimeUp, got %v", res.Outcome)
	}
	if r.State.Status != StatusLostTime {
		t.Errorf("Expected StatusLostTime, got %v", r.State.Status)
	}
	if r.State.Guessed["b"] {
		t.Error("Letter should not be recorded after the clock ran out")
	}
}

func TestRepeatGuessIsFree(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	r.Guess("x", 1)
	scoreAfterFirst := r.State.Score
	wrongAfterFirst := r.State.IncorrectGuesses

	res := r.Guess("x", 1)
	if res.Outcome != OutcomeRepeat {
		t.Fatalf("Expected OutcomeRepeat, got %v", res.Outcome)
	}
	if r.State.Score != scoreAfterFirst {
		t.Errorf("Repeat guess changed score: %d vs %d", r.State.Score, scoreAfterFirst)
	}
	if r.State.IncorrectGuesses != wrongAfterFirst {
		t.Errorf("Repeat guess changed wrong count: %d vs %d", r.State.IncorrectGuesses, wrongAfterFirst)
	}

	// Repeating a correct letter is also free
	r.Guess("c", 1)
	res = r.Guess("c", 1)
	if res.Outcome != OutcomeRepeat {
		t.Errorf("Expected OutcomeRepeat for repeated correct letter, got %v", res.Outcome)
	}
}

func TestScoreExhaustion(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	// Ten wrong letters at -10 each drain the initial 100
	wrongLetters := []string{"b", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, l := range wrongLetters {
		res := r.Guess(l, 0)
		if res.Outcome != OutcomeWrong {
			t.Fatalf("Guess %d (%q): expected OutcomeWrong, got %v", i, l, res.Outcome)
		}
		if r.State.Status.Terminal() {
			break
		}
	}

	if r.State.Status != StatusLostScore {
		t.Errorf("Expected StatusLostScore, got %v", r.State.Status)
	}
	if r.State.Score != 0 {
		t.Errorf("Expected score exactly 0 at exhaustion, got %d", r.State.Score)
	}
	if r.State.IncorrectGuesses != 10 {
		t.Errorf("Expected exactly 10 wrong guesses to exhaust, got %d", r.State.IncorrectGuesses)
	}
}

func TestHintFiresOnceAtThreshold(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 42)

	res := r.Guess("x", 0)
	if res.Hint != "" {
		t.Error("Hint fired after 1 wrong guess")
	}
	res = r.Guess("y", 0)
	if res.Hint != "" {
		t.Error("Hint fired after 2 wrong guesses")
	}

	res = r.Guess("z", 0)
	if res.Hint == "" {
		t.Fatal("Hint did not fire after the 3rd wrong guess")
	}
	if !strings.Contains("cat", res.Hint) {
		t.Errorf("Hint %q is not a letter of the word", res.Hint)
	}
	if r.State.Guessed[res.Hint] {
		t.Errorf("Hinted letter %q should not count as guessed", res.Hint)
	}
	if !r.State.HintUsed {
		t.Error("HintUsed not set after the hint fired")
	}

	// A fourth wrong guess must not produce a second hint
	res = r.Guess("w", 0)
	if res.Hint != "" {
		t.Errorf("Second hint %q after the first was used", res.Hint)
	}
}

func TestHintDeterministicUnderSeed(t *testing.T) {
	hintFor := func(seed int64) string {
		r := NewRound("planet", DefaultRules(), seed)
		r.Guess("x", 0)
		r.Guess("y", 0)
		return r.Guess("z", 0).Hint
	}

	if hintFor(7) != hintFor(7) {
		t.Error("Same seed produced different hints")
	}
}

func TestInvalidInputMutatesNothing(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)
	before := r.State

	for _, input := range []string{"", "ab", "1", "?", "CAT5", "  "} {
		res := r.Guess(input, 0)
		if res.Outcome != OutcomeInvalid {
			t.Errorf("Input %q: expected OutcomeInvalid, got %v", input, res.Outcome)
		}
	}

	if r.State.Score != before.Score || r.State.IncorrectGuesses != before.IncorrectGuesses {
		t.Error("Invalid input changed score or wrong count")
	}
	if len(r.State.Guessed) != 0 {
		t.Errorf("Invalid input recorded letters: %v", r.State.GuessedList())
	}
	if r.State.Status != StatusInProgress {
		t.Errorf("Invalid input ended the round: %v", r.State.Status)
	}
}

func TestUppercaseInputIsFolded(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	res := r.Guess("C", 1)
	if res.Outcome != OutcomeCorrect {
		t.Fatalf("Expected OutcomeCorrect for 'C', got %v", res.Outcome)
	}
	if !r.State.Guessed["c"] {
		t.Error("Uppercase guess should be stored lowercase")
	}

	res = r.Guess("CAT", 1)
	if res.Outcome != OutcomeWordGuessed {
		t.Errorf("Expected OutcomeWordGuessed for 'CAT', got %v", res.Outcome)
	}
}

func TestSaveShortCircuitsTheClock(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	// Even a glacial save request costs no time
	res := r.Guess("save", 500)
	if res.Outcome != OutcomeSaveRequested {
		t.Fatalf("Expected OutcomeSaveRequested, got %v", res.Outcome)
	}
	if r.State.Status != StatusSaved {
		t.Errorf("Expected StatusSaved, got %v", r.State.Status)
	}
	if r.State.TimeLeft != 30 {
		t.Errorf("Save charged the clock: TimeLeft = %d", r.State.TimeLeft)
	}
}

func TestGuessAfterTerminalIsRejected(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)
	r.Guess("cat", 1)

	if r.State.Status != StatusWon {
		t.Fatalf("Setup failed: expected StatusWon, got %v", r.State.Status)
	}

	res := r.Guess("x", 1)
	if res.Outcome != OutcomeInvalid {
		t.Errorf("Guess on a finished round should be invalid, got %v", res.Outcome)
	}
	if r.State.Score != 100 {
		t.Errorf("Guess on a finished round changed the score: %d", r.State.Score)
	}
}

func TestResumeResetsStatus(t *testing.T) {
	st := State{
		Word:     "planet",
		Guessed:  map[string]bool{"p": true, "z": true},
		Score:    90,
		TimeLeft: 12,
		Status:   StatusSaved,
	}

	r := Resume(st, DefaultRules(), 1)
	if r.State.Status != StatusInProgress {
		t.Errorf("Resumed round should be in progress, got %v", r.State.Status)
	}

	res := r.Guess("l", 1)
	if res.Outcome != OutcomeCorrect {
		t.Errorf("Expected OutcomeCorrect after resume, got %v", res.Outcome)
	}
	if r.State.TimeLeft != 11 {
		t.Errorf("Expected TimeLeft 11 after 1s turn, got %d", r.State.TimeLeft)
	}
}

func TestResumeNilGuessedMap(t *testing.T) {
	r := Resume(State{Word: "cat", Score: 100, TimeLeft: 30}, DefaultRules(), 1)

	res := r.Guess("c", 0)
	if res.Outcome != OutcomeCorrect {
		t.Errorf("Expected OutcomeCorrect, got %v", res.Outcome)
	}
}

func TestMasked(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)

	if got := r.State.Masked(); got != "_ _ _" {
		t.Errorf("Fresh mask: expected %q, got %q", "_ _ _", got)
	}

	r.Guess("c", 0)
	r.Guess("t", 0)
	if got := r.State.Masked(); got != "c _ t" {
		t.Errorf("Partial mask: expected %q, got %q", "c _ t", got)
	}
}

func TestGuessedListSorted(t *testing.T) {
	r := NewRound("cat", DefaultRules(), 1)
	r.Guess("t", 0)
	r.Guess("b", 0)
	r.Guess("c", 0)

	got := r.State.GuessedList()
	want := []string{"b", "c", "t"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d letters, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GuessedList[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestValidWord(t *testing.T) {
	cases := []struct {
		word     string
		min, max int
		want     bool
	}{
		{"cat", 1, 20, true},
		{"Planet", 4, 20, true},
		{"cat", 4, 20, false},
		{"abcdefghijklmnopqrstu", 4, 20, false},
		{"ca-t", 1, 20, false},
		{"c4t", 1, 20, false},
		{"", 1, 20, false},
		{"two words", 1, 20, false},
	}

	for _, c := range cases {
		if got := ValidWord(c.word, c.min, c.max); got != c.want {
			t.Errorf("ValidWord(%q, %d, %d) = %v, want %v", c.word, c.min, c.max, got, c.want)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	cases := map[Status]string{
		StatusInProgress: "in_progress",
		StatusWon:        "won",
		StatusLostTime:   "lost_time",
		StatusLostScore:  "lost_score",
		StatusSaved:      "saved",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

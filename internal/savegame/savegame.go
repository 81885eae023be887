// Package savegame serializes an in-progress round to a flat text
// file and back. The layout is one field per line: word, comma-joined
// guessed letters, remaining time, score. Older three-line files
// (which predate score persistence) still load, with the score reset
// to the configured initial value.
package savegame

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/game"
)

// ErrCorruptSave is returned when a save file cannot be decoded.
var ErrCorruptSave = errors.New("savegame: corrupt save file")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9 .]`)

// Store reads and writes save files in a single directory, discovered
// by extension.
type Store struct {
	dir          string
	ext          string
	defaultScore int
}

// NewStore creates a save-file store rooted at dir.
func NewStore(dir string, cfg config.Config) *Store {
	return &Store{
		dir:          dir,
		ext:          cfg.Files.SaveExtension,
		defaultScore: cfg.Rules.InitialScore,
	}
}

// SanitizeName replaces every character outside [A-Za-z0-9 .] with an
// underscore and appends the save extension if absent. Applied on
// both save and load lookups so the two always agree.
func (st *Store) SanitizeName(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	if !strings.HasSuffix(name, st.ext) {
		name += st.ext
	}
	return name
}

// Save writes the state under the sanitized filename and returns the
// filename used.
func (st *Store) Save(name string, s game.State) (string, error) {
	filename := st.SanitizeName(name)
	path := filepath.Join(st.dir, filename)
	if err := os.WriteFile(path, []byte(Encode(s)), 0o644); err != nil {
		return "", fmt.Errorf("savegame: cannot write %s: %w", filename, err)
	}
	return filename, nil
}

// Load reads and decodes the save with the given (possibly
// unsanitized) name.
func (st *Store) Load(name string) (game.State, error) {
	filename := st.SanitizeName(name)
	data, err := os.ReadFile(filepath.Join(st.dir, filename))
	if err != nil {
		return game.State{}, fmt.Errorf("savegame: cannot read %s: %w", filename, err)
	}
	return st.Decode(string(data))
}

// List returns the save filenames in the store directory, sorted.
func (st *Store) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot list %s: %w", st.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), st.ext) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Encode renders a state in the line-oriented save layout.
func Encode(s game.State) string {
	var b strings.Builder
	b.WriteString(s.Word)
	b.WriteString("\n")
	b.WriteString(strings.Join(s.GuessedList(), ","))
	b.WriteString("\n")
	b.WriteString(strconv.Itoa(s.TimeLeft))
	b.WriteString("\n")
	b.WriteString(strconv.Itoa(s.Score))
	b.WriteString("\n")
	return b.String()
}

// Decode parses the save layout back into a state. It fails with
// ErrCorruptSave when fewer than three lines are present, when a
// numeric field is not an integer, or when the word is unusable.
func (st *Store) Decode(data string) (game.State, error) {
	lines := strings.Split(strings.TrimRight(data, "\n"), "\n")
	if len(lines) < 3 {
		return game.State{}, fmt.Errorf("%w: expected at least 3 lines, got %d", ErrCorruptSave, len(lines))
	}

	word := strings.ToLower(strings.TrimSpace(lines[0]))
	if !game.ValidWord(word, 1, len(word)) {
		return game.State{}, fmt.Errorf("%w: bad word %q", ErrCorruptSave, lines[0])
	}

	guessed := make(map[string]bool)
	for _, l := range strings.Split(strings.TrimSpace(lines[1]), ",") {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if len(l) != 1 {
			return game.State{}, fmt.Errorf("%w: bad guessed letter %q", ErrCorruptSave, l)
		}
		guessed[l] = true
	}

	timeLeft, err := strconv.Atoi(strings.TrimSpace(lines[2]))
	if err != nil {
		return game.State{}, fmt.Errorf("%w: bad time field %q", ErrCorruptSave, lines[2])
	}

	// Legacy saves predate score persistence; reset to the default.
	score := st.defaultScore
	if len(lines) >= 4 {
		score, err = strconv.Atoi(strings.TrimSpace(lines[3]))
		if err != nil {
			return game.State{}, fmt.Errorf("%w: bad score field %q", ErrCorruptSave, lines[3])
		}
	}

	incorrect := 0
	for l := range guessed {
		if !strings.Contains(word, l) {
			incorrect++
		}
	}

	return game.State{
		Word:             word,
		Guessed:          guessed,
		Score:            score,
		TimeLeft:         timeLeft,
		IncorrectGuesses: incorrect,
	}, nil
}

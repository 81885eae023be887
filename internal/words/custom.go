package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrInvalidWord means the word is non-alphabetic or outside the
	// configured length bounds.
	ErrInvalidWord = errors.New("words: word must be alphabetic and within the length bounds")
	// ErrDuplicateWord means the word is already on the custom list.
	ErrDuplicateWord = errors.New("words: word already exists in the custom list")
)

// CustomWords returns the current custom list.
func (s *Source) CustomWords() []string {
	return LoadList(s.CustomPath())
}

// AddCustom validates a word and appends it to the custom list.
func (s *Source) AddCustom(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))

	min := s.cfg.Rules.MinWordLength
	max := s.cfg.Rules.MaxWordLength
	if !isAlpha(word) || len(word) < min || len(word) > max {
		return fmt.Errorf("%w: %q (need %d-%d letters)", ErrInvalidWord, word, min, max)
	}

	for _, existing := range s.CustomWords() {
		if existing == word {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, word)
		}
	}

	f, err := os.OpenFile(s.CustomPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("words: cannot open custom list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{word}); err != nil {
		return fmt.Errorf("words: cannot append word: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("words: cannot append word: %w", err)
	}
	return nil
}

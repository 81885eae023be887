// Package words supplies candidate words for a round. Words come from
// two delimited-text lists per pick: the shared custom list and the
// per-difficulty list, both filtered to the difficulty's length range.
// Missing or unreadable lists degrade to empty rather than erroring.
package words

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/avolkov/gallows/internal/config"
)

// ErrNoWords is returned when the filtered candidate pool is empty.
// A round must not start in that case.
var ErrNoWords = errors.New("words: no words available for this difficulty")

// Source selects words from the word-list files in a data directory.
type Source struct {
	dataDir string
	cfg     config.Config
	rng     *rand.Rand
}

// NewSource creates a word source rooted at dataDir.
func NewSource(dataDir string, cfg config.Config, seed int64) *Source {
	return &Source{
		dataDir: dataDir,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Pick returns a uniformly random word for the difficulty, or
// ErrNoWords when the pool is empty.
func (s *Source) Pick(d config.Difficulty) (string, error) {
	pool := s.Candidates(d)
	if len(pool) == 0 {
		return "", ErrNoWords
	}
	return pool[s.rng.Intn(len(pool))], nil
}

// Candidates returns the filtered pool for a difficulty: custom list
// plus the difficulty list, restricted to the configured length range.
func (s *Source) Candidates(d config.Difficulty) []string {
	rng, ok := s.cfg.Difficulties[d]
	if !ok {
		return nil
	}

	all := append(LoadList(s.CustomPath()), LoadList(s.ListPath(d))...)
	pool := all[:0]
	for _, w := range all {
		if rng.Contains(len(w)) {
			pool = append(pool, w)
		}
	}
	return pool
}

// CustomPath returns the path of the shared custom word list.
func (s *Source) CustomPath() string {
	return filepath.Join(s.dataDir, s.cfg.Files.CustomWords)
}

// ListPath returns the path of a difficulty's word list, e.g.
// "easy_words.csv".
func (s *Source) ListPath(d config.Difficulty) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_words%s", d, s.cfg.Files.ListExtension))
}

// LoadList reads one word per row from a delimited-text file, taking
// the first field and keeping it only if it is entirely alphabetic
// after trimming. A missing or unreadable file yields an empty list.
func LoadList(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil
	}

	var list []string
	for _, row := range records {
		if len(row) == 0 {
			continue
		}
		w := strings.ToLower(strings.TrimSpace(row[0]))
		if w == "" || !isAlpha(w) {
			continue
		}
		list = append(list, w)
	}
	return list
}

// isAlpha reports whether s consists only of ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return len(s) > 0
}

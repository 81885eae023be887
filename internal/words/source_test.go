package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avolkov/gallows/internal/config"
)

func writeList(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "easy_words.csv", "cats\nDOGS\nbirds,extra field\n\nc4ts\nsnakes\n")

	list := LoadList(filepath.Join(dir, "easy_words.csv"))

	want := []string{"cats", "dogs", "birds", "snakes"}
	if len(list) != len(want) {
		t.Fatalf("Expected %v, got %v", want, list)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("LoadList[%d] = %q, want %q", i, list[i], want[i])
		}
	}
}

func TestLoadListMissingFile(t *testing.T) {
	if list := LoadList(filepath.Join(t.TempDir(), "absent.csv")); list != nil {
		t.Errorf("Missing file should yield nil, got %v", list)
	}
}

func TestCandidatesFilterByLength(t *testing.T) {
	dir := t.TempDir()
	// "toolong" (7) and "cat" (3) fall outside easy's 4-5 range
	writeList(t, dir, "easy_words.csv", "cats\ntoolong\ncat\nhorse\n")

	s := NewSource(dir, config.Default(), 1)
	pool := s.Candidates(config.DifficultyEasy)

	want := []string{"cats", "horse"}
	if len(pool) != len(want) {
		t.Fatalf("Expected %v, got %v", want, pool)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Errorf("Candidates[%d] = %q, want %q", i, pool[i], want[i])
		}
	}
}

func TestCandidatesIncludeCustomList(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "easy_words.csv", "cats\n")
	writeList(t, dir, "custom_words.csv", "lions\nelephant\n")

	s := NewSource(dir, config.Default(), 1)
	pool := s.Candidates(config.DifficultyEasy)

	// "lions" (5) qualifies for easy, "elephant" (8) does not
	found := map[string]bool{}
	for _, w := range pool {
		found[w] = true
	}
	if !found["lions"] {
		t.Error("Custom word 'lions' missing from easy pool")
	}
	if found["elephant"] {
		t.Error("Custom word 'elephant' should not be in the easy pool")
	}
	if !found["cats"] {
		t.Error("List word 'cats' missing from easy pool")
	}
}

func TestPickReturnsPoolWord(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "medium_words.csv", "planet\nrocket\nnebula\n")

	s := NewSource(dir, config.Default(), 99)
	word, err := s.Pick(config.DifficultyMedium)
	if err != nil {
		t.Fatalf("Pick() failed: %v", err)
	}

	switch word {
	case "planet", "rocket", "nebula":
	default:
		t.Errorf("Pick() returned %q, not a pool word", word)
	}
}

func TestPickEmptyPool(t *testing.T) {
	s := NewSource(t.TempDir(), config.Default(), 1)

	_, err := s.Pick(config.DifficultyHard)
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("Expected ErrNoWords for empty pool, got %v", err)
	}
}

func TestPickUnknownDifficulty(t *testing.T) {
	s := NewSource(t.TempDir(), config.Default(), 1)

	_, err := s.Pick(config.Difficulty("impossible"))
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("Expected ErrNoWords for unknown difficulty, got %v", err)
	}
}

func TestAddCustom(t *testing.T) {
	s := NewSource(t.TempDir(), config.Default(), 1)

	if err := s.AddCustom("Zeppelin"); err != nil {
		t.Fatalf("AddCustom() failed: %v", err)
	}

	list := s.CustomWords()
	if len(list) != 1 || list[0] != "zeppelin" {
		t.Errorf("Expected custom list [zeppelin], got %v", list)
	}
}

func TestAddCustomDuplicate(t *testing.T) {
	s := NewSource(t.TempDir(), config.Default(), 1)

	if err := s.AddCustom("zeppelin"); err != nil {
		t.Fatalf("AddCustom() failed: %v", err)
	}

	err := s.AddCustom("ZEPPELIN")
	if !errors.Is(err, ErrDuplicateWord) {
		t.Errorf("Expected ErrDuplicateWord, got %v", err)
	}

	if list := s.CustomWords(); len(list) != 1 {
		t.Errorf("Duplicate add grew the list: %v", list)
	}
}

func TestAddCustomInvalid(t *testing.T) {
	s := NewSource(t.TempDir(), config.Default(), 1)

	for _, w := range []string{"cat", "c4ts", "two words", "", "abcdefghijklmnopqrstu"} {
		if err := s.AddCustom(w); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("AddCustom(%q): expected ErrInvalidWord, got %v", w, err)
		}
	}
}

func TestWriteStarterLists(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	written, err := WriteStarterLists(dir, cfg)
	if err != nil {
		t.Fatalf("WriteStarterLists() failed: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("Expected 3 lists written, got %v", written)
	}

	// Every difficulty ends up with a non-empty pool
	s := NewSource(dir, cfg, 1)
	for _, d := range config.Difficulties() {
		if _, err := s.Pick(d); err != nil {
			t.Errorf("Pick(%s) after init failed: %v", d, err)
		}
	}
}

func TestWriteStarterListsNeverClobbers(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()

	writeList(t, dir, "easy_words.csv", "mine\n")

	written, err := WriteStarterLists(dir, cfg)
	if err != nil {
		t.Fatalf("WriteStarterLists() failed: %v", err)
	}
	if len(written) != 2 {
		t.Errorf("Expected 2 lists written around the existing one, got %v", written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "easy_words.csv"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "mine\n" {
		t.Error("Existing word list was overwritten")
	}

	// Second run is a no-op
	written, err = WriteStarterLists(dir, cfg)
	if err != nil {
		t.Fatalf("second WriteStarterLists() failed: %v", err)
	}
	if len(written) != 0 {
		t.Errorf("Second run should write nothing, got %v", written)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
rules:
  initial_score: 200
  initial_time: 60
difficulties:
  easy:
    min: 3
    max: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Rules.InitialScore != 200 {
		t.Errorf("Expected initial score 200, got %d", cfg.Rules.InitialScore)
	}
	if cfg.Rules.InitialTime != 60 {
		t.Errorf("Expected initial time 60, got %d", cfg.Rules.InitialTime)
	}
	if cfg.Difficulties[DifficultyEasy].Min != 3 {
		t.Errorf("Expected easy min 3, got %d", cfg.Difficulties[DifficultyEasy].Min)
	}

	// Omitted fields fall back to defaults
	if cfg.Rules.WrongPenalty != 10 {
		t.Errorf("Expected default wrong penalty 10, got %d", cfg.Rules.WrongPenalty)
	}
	if cfg.Difficulties[DifficultyHard].Max != 20 {
		t.Errorf("Expected default hard max 20, got %d", cfg.Difficulties[DifficultyHard].Max)
	}
	if cfg.Files.SaveExtension != ".save" {
		t.Errorf("Expected default save extension, got %q", cfg.Files.SaveExtension)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() of a missing explicit config should fail")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [not a map"), 0o644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() of invalid YAML should fail")
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML and Default() must agree so the fallback chain
	// behaves the same wherever it bottoms out.
	dir := t.TempDir()
	path := filepath.Join(dir, "embedded.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	fromYAML, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of embedded YAML failed: %v", err)
	}
	hardcoded := Default()

	if fromYAML.Rules != hardcoded.Rules {
		t.Errorf("Rules mismatch: %+v vs %+v", fromYAML.Rules, hardcoded.Rules)
	}
	if fromYAML.Files != hardcoded.Files {
		t.Errorf("Files mismatch: %+v vs %+v", fromYAML.Files, hardcoded.Files)
	}
	for _, d := range Difficulties() {
		if fromYAML.Difficulties[d] != hardcoded.Difficulties[d] {
			t.Errorf("Difficulty %s mismatch: %+v vs %+v", d, fromYAML.Difficulties[d], hardcoded.Difficulties[d])
		}
	}
}

func TestValidateFillsZeroValues(t *testing.T) {
	var cfg Config
	cfg.Validate()

	def := Default()
	if cfg.Rules != def.Rules {
		t.Errorf("Validate() on zero config: rules %+v, want %+v", cfg.Rules, def.Rules)
	}
	if len(cfg.Difficulties) != 3 {
		t.Errorf("Validate() should fill all difficulties, got %v", cfg.Difficulties)
	}
}

func TestValidateRepairsInconsistentRange(t *testing.T) {
	cfg := Default()
	cfg.Difficulties[DifficultyMedium] = LengthRange{Min: 9, Max: 2}
	cfg.Validate()

	if cfg.Difficulties[DifficultyMedium] != Default().Difficulties[DifficultyMedium] {
		t.Errorf("Inverted range not repaired: %+v", cfg.Difficulties[DifficultyMedium])
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, ok := ParseDifficulty(string(d))
		if !ok || got != d {
			t.Errorf("ParseDifficulty(%q) = (%q, %v)", d, got, ok)
		}
	}

	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Error("ParseDifficulty accepted an unknown name")
	}
}

func TestLengthRangeContains(t *testing.T) {
	r := LengthRange{Min: 4, Max: 5}

	for n, want := range map[int]bool{3: false, 4: true, 5: true, 6: false} {
		if got := r.Contains(n); got != want {
			t.Errorf("Contains(%d) = %v, want %v", n, got, want)
		}
	}
}

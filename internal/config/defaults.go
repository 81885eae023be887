package config

import (
	_ "embed"
)

//go:embed defaults/gallows.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It mirrors
// defaults/gallows.yaml and is the fallback of last resort.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			InitialScore:  100,
			InitialTime:   30,
			WrongPenalty:  10,
			HintThreshold: 3,
			MinWordLength: 4,
			MaxWordLength: 20,
		},
		Difficulties: map[Difficulty]LengthRange{
			DifficultyEasy:   {Min: 4, Max: 5},
			DifficultyMedium: {Min: 6, Max: 7},
			DifficultyHard:   {Min: 8, Max: 20},
		},
		Files: FilesConfig{
			ListExtension: ".csv",
			SaveExtension: ".save",
			CustomWords:   "custom_words.csv",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based configuration loading for the
// gallows game: round rules, difficulty length ranges, and file layout.
package config

// Config contains all tunable settings for the game.
type Config struct {
	Rules        RulesConfig                `yaml:"rules"`
	Difficulties map[Difficulty]LengthRange `yaml:"difficulties"`
	Files        FilesConfig                `yaml:"files"`
}

// RulesConfig defines the scoring and timing rules for a round.
type RulesConfig struct {
	InitialScore  int `yaml:"initial_score"`  // Score a round starts with
	InitialTime   int `yaml:"initial_time"`   // Seconds on the clock at round start
	WrongPenalty  int `yaml:"wrong_penalty"`  // Score lost per wrong letter
	HintThreshold int `yaml:"hint_threshold"` // Wrong guesses before the hint fires
	MinWordLength int `yaml:"min_word_length"`
	MaxWordLength int `yaml:"max_word_length"`
}

// LengthRange is an inclusive word-length range for a difficulty.
type LengthRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Contains reports whether n falls inside the range.
func (r LengthRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// FilesConfig defines where word lists and save files live and how
// they are named.
type FilesConfig struct {
	ListExtension string `yaml:"list_extension"` // Word-list extension (".csv")
	SaveExtension string `yaml:"save_extension"` // Save-file extension (".save")
	CustomWords   string `yaml:"custom_words"`   // Custom word list filename
}

// Difficulty represents a named word-length bucket.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// Validate fills in zero or inconsistent values from the defaults so a
// partial YAML file cannot produce an unplayable game.
func (c *Config) Validate() {
	def := Default()

	if c.Rules.InitialScore <= 0 {
		c.Rules.InitialScore = def.Rules.InitialScore
	}
	if c.Rules.InitialTime <= 0 {
		c.Rules.InitialTime = def.Rules.InitialTime
	}
	if c.Rules.WrongPenalty <= 0 {
		c.Rules.WrongPenalty = def.Rules.WrongPenalty
	}
	if c.Rules.HintThreshold <= 0 {
		c.Rules.HintThreshold = def.Rules.HintThreshold
	}
	if c.Rules.MinWordLength <= 0 {
		c.Rules.MinWordLength = def.Rules.MinWordLength
	}
	if c.Rules.MaxWordLength < c.Rules.MinWordLength {
		c.Rules.MaxWordLength = def.Rules.MaxWordLength
	}

	if len(c.Difficulties) == 0 {
		c.Difficulties = def.Difficulties
	} else {
		for _, d := range Difficulties() {
			r, ok := c.Difficulties[d]
			if !ok || r.Min <= 0 || r.Max < r.Min {
				c.Difficulties[d] = def.Difficulties[d]
			}
		}
	}

	if c.Files.ListExtension == "" {
		c.Files.ListExtension = def.Files.ListExtension
	}
	if c.Files.SaveExtension == "" {
		c.Files.SaveExtension = def.Files.SaveExtension
	}
	if c.Files.CustomWords == "" {
		c.Files.CustomWords = def.Files.CustomWords
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/platform/tui"
	"github.com/avolkov/gallows/internal/savegame"
	"github.com/avolkov/gallows/internal/words"
)

var (
	flagDifficulty string
	flagLoad       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round directly",
	Long: `Start a round without going through the menu.

During a round:
  - type a letter and press Enter to guess it
  - type the whole word to go for the win
  - type "save" to store the round and exit

Difficulty options:
  easy    - 4-5 letter words
  medium  - 6-7 letter words
  hard    - 8-20 letter words

Examples:
  gallows play
  gallows play --difficulty hard
  gallows play --load "my save"`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagLoad, "load", "", "Save file to resume")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openHistory()
	defer closeHistory(store)

	source := words.NewSource(flagDataDir, cfg, seedOrNow())
	saves := savegame.NewStore(flagDataDir, cfg)

	width, height := termSize()

	deps := tui.RoundDeps{
		Source: source,
		Saves:  saves,
		Store:  store,
		Config: cfg,
		Seed:   seedOrNow(),
	}

	// Resume an explicit save if requested; fall back to a new round
	// when it cannot be read.
	if flagLoad != "" {
		st, err := saves.Load(flagLoad)
		if err != nil {
			logger.Warn("could not load save, starting a new game", "save", flagLoad, "error", err)
		} else {
			if err := tui.RunResumedRound(st, deps, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	difficulty, ok := config.ParseDifficulty(flagDifficulty)
	if flagDifficulty != "" && !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, medium, or hard)\n", flagDifficulty)
		os.Exit(1)
	}
	if flagDifficulty == "" {
		setup, err := tui.RunSetup(saves, cfg, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if setup.Back {
			return
		}
		width, height = setup.Width, setup.Height
		if setup.Loaded != nil {
			if err := tui.RunResumedRound(*setup.Loaded, deps, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		difficulty = setup.Difficulty
	}

	word, err := source.Pick(difficulty)
	if err != nil {
		if errors.Is(err, words.ErrNoWords) {
			fmt.Fprintln(os.Stderr, "No words available for this difficulty.")
			fmt.Fprintln(os.Stderr, "Run 'gallows init' for starter lists or add custom words.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := tui.RunRound(word, difficulty, deps, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

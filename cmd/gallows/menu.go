package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/platform/tui"
	"github.com/avolkov/gallows/internal/savegame"
	"github.com/avolkov/gallows/internal/storage"
	"github.com/avolkov/gallows/internal/words"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start gallows in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a round ends, you return here.

Examples:
  gallows menu
  gallows menu --data-dir ~/words
  gallows menu --db ./history.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openHistory()

	source := words.NewSource(flagDataDir, cfg, seedOrNow())
	saves := savegame.NewStore(flagDataDir, cfg)

	width, height := termSize()

	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		width, height = result.Width, result.Height

		switch result.Choice {
		case tui.MenuChoicePlay:
			startRound(cfg, source, saves, store, width, height)

		case tui.MenuChoiceAddWords:
			if _, err := tui.RunAddWords(source, cfg.Rules.MinWordLength, cfg.Rules.MaxWordLength, width, height); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				closeHistory(store)
				return
			}

		case tui.MenuChoiceQuit:
			closeHistory(store)
			return
		}
	}

	closeHistory(store)
}

// startRound runs the setup flow and then the round itself.
func startRound(cfg config.Config, source *words.Source, saves *savegame.Store, store *storage.Store, width, height int) {
	setup, err := tui.RunSetup(saves, cfg, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if setup.Back {
		return
	}

	deps := tui.RoundDeps{
		Source: source,
		Saves:  saves,
		Store:  store,
		Config: cfg,
		Seed:   seedOrNow(),
	}

	if setup.Loaded != nil {
		if err := tui.RunResumedRound(*setup.Loaded, deps, setup.Width, setup.Height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	word, err := source.Pick(setup.Difficulty)
	if err != nil {
		if errors.Is(err, words.ErrNoWords) {
			fmt.Println("No words available for this difficulty.")
			fmt.Println("Run 'gallows init' for starter lists or add custom words.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	if err := tui.RunRound(word, setup.Difficulty, deps, setup.Width, setup.Height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func closeHistory(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// gallows is a terminal hangman with a ticking clock and a score that
// only goes down.
//
// Usage:
//
//	gallows menu              - Interactive menu (play, custom words, scores)
//	gallows play              - Start a round directly
//	gallows words add <word>  - Add words to the custom list
//	gallows saves             - List save files
//	gallows scores            - Show the best recorded rounds
//	gallows init              - Write starter word lists into the data dir
//
// Global flags:
//
//	--data-dir <dir>  - Where word lists and save files live (default: .)
//	--db <path>       - Round history database (default: ~/.gallows/history.db)
//	--config <path>   - Custom rules/difficulty YAML
//	--seed <value>    - RNG seed for reproducible word picks (0 = random)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/gallows/internal/config"
	"github.com/avolkov/gallows/internal/storage"
)

var (
	// Global flags
	flagDataDir string
	flagDBPath  string
	flagConfig  string
	flagSeed    int64

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gallows",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gallows",
	Short: "Gallows - guess the word before the clock or your score runs out",
	Long: `Gallows is a terminal word-guessing game. Each round you get a
hidden word, 100 points, and 30 seconds of thinking time. Wrong letters
cost points, slow thinking costs seconds, and three misses buy you one
hint.

Available commands:
  menu     - Interactive menu (play, custom words, scores)
  play     - Start a round directly
  words    - Manage the custom word list
  saves    - List save files in the data dir
  scores   - Show the best recorded rounds
  init     - Write starter word lists into the data dir

Examples:
  gallows init
  gallows menu
  gallows play --difficulty hard
  gallows play --load "my save"
  gallows words add zeppelin
  gallows scores --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", ".", "Directory with word lists and save files")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gallows/history.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(initCmd)
}

// loadConfig loads the game configuration, exiting only when an
// explicitly requested config file is unusable.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openHistory opens the round-history store. The game works without
// it; failures are logged and nil is returned.
func openHistory() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// seedOrNow resolves the --seed flag.
func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// termSize returns the terminal size, with defaults for pipes.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/gallows/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the custom word list",
	Long: `Manage the shared custom word list. Custom words join the
per-difficulty lists when a round's word is picked.

Examples:
  gallows words add zeppelin labyrinth
  gallows words list`,
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <word>...",
	Short: "Add words to the custom list",
	Args:  cobra.MinimumNArgs(1),
	Run:   runWordsAdd,
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the custom list",
	Run:   runWordsList,
}

func init() {
	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
}

func runWordsAdd(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	source := words.NewSource(flagDataDir, cfg, seedOrNow())

	failed := 0
	for _, word := range args {
		err := source.AddCustom(word)
		switch {
		case err == nil:
			fmt.Printf("Added %q to custom words.\n", word)
		case errors.Is(err, words.ErrDuplicateWord):
			fmt.Printf("Skipped %q: already on the list.\n", word)
		case errors.Is(err, words.ErrInvalidWord):
			fmt.Printf("Skipped %q: must be %d-%d alphabetic letters.\n",
				word, cfg.Rules.MinWordLength, cfg.Rules.MaxWordLength)
			failed++
		default:
			fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", word, err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func runWordsList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	source := words.NewSource(flagDataDir, cfg, seedOrNow())

	list := source.CustomWords()
	if len(list) == 0 {
		fmt.Println("The custom word list is empty.")
		fmt.Println("Run 'gallows words add <word>' to extend it.")
		return
	}

	fmt.Printf("Custom words (%d):\n", len(list))
	for _, w := range list {
		fmt.Printf("  %s\n", w)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/gallows/internal/words"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter word lists into the data dir",
	Long: `Writes the built-in starter word lists (easy, medium, hard)
into the data directory so a fresh install has something to play with.
Existing lists are never overwritten.

Examples:
  gallows init
  gallows init --data-dir ~/games`,
	Run: runInit,
}

func runInit(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	written, err := words.WriteStarterLists(flagDataDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(written) == 0 {
		fmt.Println("Word lists already present; nothing to do.")
		return
	}

	for _, name := range written {
		fmt.Printf("Wrote %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'gallows menu' to start playing.")
}

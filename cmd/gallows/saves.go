package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/gallows/internal/savegame"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save files in the data dir",
	Long: `Shows the save files discovered in the data directory.

Examples:
  gallows saves
  gallows saves --data-dir ~/games`,
	Run: runSaves,
}

func runSaves(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	saves := savegame.NewStore(flagDataDir, cfg)

	files, err := saves.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saves: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Println("No saved games found.")
		fmt.Println("Type \"save\" during a round to create one.")
		return
	}

	fmt.Println("Saved games:")
	fmt.Println()
	for i, f := range files {
		fmt.Printf("  %d. %s\n", i+1, f)
	}
	fmt.Println()
	fmt.Println("Run 'gallows play --load <name>' to resume one.")
}

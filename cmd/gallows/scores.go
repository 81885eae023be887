package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded rounds",
	Long: `Display the best-scoring finished rounds and overall stats.

Examples:
  gallows scores
  gallows scores --limit 5`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "How many rounds to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store := openHistory()
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: history database is unavailable")
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.TopScores(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Gallows")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'gallows play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-7s  %-10s  %s\n", "Rank", "Word", "Difficulty", "Score", "Outcome", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-7s  %-10s  %s\n", "----", "----", "----------", "-----", "-------", "----")

	for i, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-14s  %-10s  %-7d  %-10s  %s\n", i+1, e.Word, e.Difficulty, e.Score, e.Outcome, dateStr)
	}

	stats, err := store.GetStats()
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Best: %d  Avg: %.1f\n", stats.Played, stats.Won, stats.BestScore, stats.AvgScore)
	}
}

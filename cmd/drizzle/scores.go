package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the saved high scores",
	Long: `Display the top 10 saved runs.

Examples:
  drizzle scores
  drizzle scores --db /tmp/scores.db`,
	Run: runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	repo, err := newRepository(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = repo.Close(ctx)
	}()

	records, err := repo.TopScores(ctx, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Drizzle")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'drizzle' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Caught", "Missed", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "------", "------", "----", "----")

	for i, record := range records {
		timeStr := fmt.Sprintf("%.0fs", record.Duration)
		dateStr := record.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-8d  %-8s  %s\n", i+1, record.Score, record.DropsCaught, record.DropsMissed, timeStr, dateStr)
	}

	fmt.Println()
	if highScore, err := repo.HighScore(ctx); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/planetary/internal/games/planetary"
	"github.com/vovakirdan/planetary/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top high scores, the most recent runs and lifetime totals.

Examples:
  planetary scores
  planetary scores --limit 20
  planetary scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores and runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(planetary.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(planetary.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Planetary")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'planetary play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(planetary.GameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Recent Runs")
		fmt.Println()
		fmt.Printf("  %-16s  %-8s  %-6s  %-6s  %-5s  %-5s  %s\n", "Date", "Score", "Time", "Robots", "Ships", "Shots", "Difficulty")
		for _, r := range runs {
			fmt.Printf("  %-16s  %-8d  %-6s  %-6d  %-5d  %-5d  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"),
				r.Score,
				formatDuration(r.Ticks),
				r.RobotsKilled,
				r.ShipsKilled,
				r.ShotsFired,
				r.Difficulty,
			)
		}
	}

	totals, err := store.RunTotals(planetary.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	stats, err := store.GetGameStats(planetary.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Println()
	writeSummary(os.Stdout, totals, stats)
	return nil
}

// writeSummary prints lifetime run totals and score statistics.
func writeSummary(w io.Writer, totals *storage.RunTotals, stats *storage.GameStats) {
	fmt.Fprintf(w, "Best: %d  Runs: %d  Longest: %s  Robots: %d  Ships: %d  Shots: %d\n",
		totals.BestScore, totals.Runs, formatDuration(totals.LongestTicks),
		totals.RobotsKilled, totals.ShipsKilled, totals.ShotsFired)

	lastPlayed := "never"
	if !stats.LastPlayed.IsZero() {
		lastPlayed = stats.LastPlayed.Format("2006-01-02 15:04")
	}
	fmt.Fprintf(w, "Games: %d  Average: %.0f  Total: %d  Last played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.TotalScore, lastPlayed)
}

// formatDuration renders a tick count at the configured rate as m:ss.
func formatDuration(ticks int) string {
	secs := ticks / max(flagFPS, 1)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

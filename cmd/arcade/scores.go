package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowball-arcade/internal/registry"
	"github.com/vovakirdan/snowball-arcade/internal/storage"
)

var flagShowRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.
With --runs, show the most recent finished runs and their statistics.

Examples:
  arcade scores snowball
  arcade scores snowball --runs`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs instead of top scores")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagShowRuns {
		if err := printRuns(store, gameID, title); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(highScore)))
	}
}

// printRuns lists the ten most recent runs of a game.
func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-5s  %-5s  %-8s  %-6s  %s\n", "Score", "Ended", "Snow", "Hits", "Distance", "Combo", "When")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-8s  %-5d  %-5d  %-8s  x%-5d  %s\n",
			humanize.Comma(int64(r.Score)),
			r.Reason,
			r.Stats.Collected,
			r.Stats.Hits,
			humanize.Comma(int64(r.Stats.Distance)),
			r.Stats.MaxCombo,
			humanize.Time(r.CreatedAt),
		)
	}
	return nil
}

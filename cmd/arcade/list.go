package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowball-arcade/internal/registry"
)

var flagTag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows a list of all games registered in the arcade.

Examples:
  arcade list
  arcade list --tag physics`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagTag, "tag", "", "Only list games with this tag")
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if flagTag != "" {
		games = registry.ByTag(flagTag)
	}

	if len(games) == 0 {
		if flagTag != "" {
			fmt.Printf("No games tagged %q.\n", flagTag)
			fmt.Printf("Known tags: %s\n", strings.Join(registry.Tags(), ", "))
			return
		}
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Tags")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, strings.Join(g.Tags, ", "))
		if g.Description != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Description)
		}
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

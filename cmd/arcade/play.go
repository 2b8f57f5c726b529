package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/games/snowball"
	"github.com/vovakirdan/snowball-arcade/internal/platform/tui"
	"github.com/vovakirdan/snowball-arcade/internal/registry"
	"github.com/vovakirdan/snowball-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (Snowball Descent):
  Left/A     - Brake
  Right/D    - Push downhill
  Space/Up   - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, longer invincibility after hits
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, obstacles wear the snowball faster
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snowball
  arcade play snowball --difficulty easy
  arcade play snowball --seed 42
  arcade play snowball --config ./my-snowball.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands --config and --difficulty to the game packages
// before a game is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "snowball":
		snowball.SetConfigPath(flagConfig)
		snowball.SetDifficultyPreset(flagDifficulty)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	logger := newLogger("arcade")

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

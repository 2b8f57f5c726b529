package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/games/snowball"
	"github.com/vovakirdan/snowball-arcade/internal/sim"
	"github.com/vovakirdan/snowball-arcade/internal/storage"
)

var (
	flagSimTicks     int
	flagSimDT        time.Duration
	flagSimAutopilot bool
	flagSimSave      bool
	flagSimScreen    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run Snowball Descent without a terminal UI",
	Long: `Run the snowball simulation headless for a fixed number of steps and
print a summary. Useful for tuning configs and checking determinism: the
same --seed, --config and --dt always produce the same run.

Game events are logged at debug level.

Examples:
  arcade sim --seed 42
  arcade sim --ticks 7200 --dt 33ms --log-level debug
  arcade sim --config ./my-snowball.yaml --difficulty hard --save
  arcade sim --autopilot=false --screen`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of steps to run")
	simCmd.Flags().DurationVar(&flagSimDT, "dt", 0, "Time per step (0 = one tick at --fps)")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", true, "Jump over obstacles ahead")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the scores database")
	simCmd.Flags().BoolVar(&flagSimScreen, "screen", false, "Print the final frame")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger("sim")
	applyGameFlags("snowball")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed

	game := snowball.New()
	game.Reset(cfg)
	logger.Info("starting run", "seed", seed, "ticks", flagSimTicks, "dt", flagSimDT)

	frame := core.NewInputFrame()
	steps := 0
	var state core.GameState
	for steps < flagSimTicks && !state.GameOver {
		frame.Clear()
		frame.Elapsed = flagSimDT
		if flagSimAutopilot && obstacleAhead(game.World()) {
			frame.Set(core.ActionJump)
		}

		result := game.Step(frame)
		state = result.State
		steps++
		logEvents(logger, game.World().Ticks(), result.Events)
	}

	stats := game.Stats()
	reason := game.Reason()
	if reason == "" {
		reason = "timeout"
	}
	logger.Info("run finished",
		"reason", reason,
		"steps", steps,
		"score", humanize.Comma(int64(state.Score)),
		"collected", stats.Collected,
		"hits", stats.Hits,
		"distance", humanize.Comma(int64(stats.Distance)),
		"max_speed", fmt.Sprintf("%.2f", stats.MaxSpeed),
		"max_combo", stats.MaxCombo,
		"sim_time", stats.Duration.Round(time.Millisecond),
	)

	if flagSimScreen {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Fprintln(os.Stdout, screen.String())
	}

	if !flagSimSave || !state.GameOver {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			return err
		}
	}
	id, err := store.SaveRun(storage.RunRecord{
		GameID: game.ID(),
		Seed:   seed,
		Score:  state.Score,
		Reason: game.Reason(),
		Stats:  stats,
	})
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id)
	return nil
}

// obstacleAhead reports whether a grounded player is about to reach an
// obstacle.
func obstacleAhead(w *sim.World) bool {
	if !w.Grounded() {
		return false
	}
	p := w.Player()
	for _, e := range w.Entities() {
		if e.Kind != sim.Obstacle {
			continue
		}
		gap := e.Body.Pos.X - e.Body.Radius - (p.Pos.X + p.Radius)
		if gap > 0 && gap < 8*p.Vel.X+20 {
			return true
		}
	}
	return false
}

func logEvents(logger *log.Logger, tick int, events []core.Event) {
	for _, ev := range events {
		logger.Debug("event", "tick", tick, "name", ev.Name, "value", ev.Value)
	}
}

package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/storage"
)

type plainGame struct{ id string }

func (g *plainGame) ID() string { return g.id }
func (g *plainGame) Title() string { return g.id }
func (g *plainGame) Reset(core.RuntimeConfig) {}
func (g *plainGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *plainGame) Render(*core.Screen) {}
func (g *plainGame) State() core.GameState { return core.GameState{} }

type statsGame struct {
	plainGame
	stats core.Stats
}

func (g *statsGame) Stats() core.Stats { return g.stats }
func (g *statsGame) Reason() string { return "crushed" }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordRunWithStats(t *testing.T) {
	store := openStore(t)
	game := &statsGame{plainGame: plainGame{id: "rolling"}, stats: core.Stats{Collected: 4, Hits: 2, Distance: 900}}

	if err := recordRun(store, game, 7, 120); err != nil {
		t.Fatalf("recordRun() failed: %v", err)
	}

	high, err := store.HighScore("rolling")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, expected 120", high)
	}

	runs, err := store.RecentRuns("rolling", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns() returned %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Seed != 7 || r.Score != 120 || r.Reason != "crushed" {
		t.Errorf("run = seed %d score %d reason %q, expected 7 120 crushed", r.Seed, r.Score, r.Reason)
	}
	if r.Stats.Collected != 4 || r.Stats.Hits != 2 || r.Stats.Distance != 900 {
		t.Errorf("run stats = %+v", r.Stats)
	}
}

func TestRecordRunZeroScore(t *testing.T) {
	store := openStore(t)
	game := &statsGame{plainGame: plainGame{id: "rolling"}}

	if err := recordRun(store, game, 1, 0); err != nil {
		t.Fatalf("recordRun() failed: %v", err)
	}

	scores, err := store.TopScores("rolling", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not reach the high score table, got %d entries", len(scores))
	}

	// The run itself is still kept
	runs, err := store.RecentRuns("rolling", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("RecentRuns() returned %d runs, expected 1", len(runs))
	}
}

func TestRecordRunWithoutStats(t *testing.T) {
	store := openStore(t)

	if err := recordRun(store, &plainGame{id: "blocks"}, 1, 50); err != nil {
		t.Fatalf("recordRun() failed: %v", err)
	}
	runs, err := store.RecentRuns("blocks", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("games without stats should only save scores, got %d runs", len(runs))
	}
}

func TestRecordRunNilStore(t *testing.T) {
	if err := recordRun(nil, &plainGame{id: "blocks"}, 1, 50); err != nil {
		t.Errorf("recordRun(nil) = %v, expected nil", err)
	}
}

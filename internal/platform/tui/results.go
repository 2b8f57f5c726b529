package tui

import (
	"github.com/vovakirdan/snowball-arcade/internal/registry"
	"github.com/vovakirdan/snowball-arcade/internal/storage"
)

// recordRun saves a finished run: the score for the high score table and,
// for games that track them, the run statistics. Zero scores are not kept
// on the high score table.
func recordRun(store *storage.Store, game registry.Game, seed int64, score int) error {
	if store == nil {
		return nil
	}
	if score > 0 {
		if _, err := store.SaveScore(game.ID(), score); err != nil {
			return err
		}
	}

	r, ok := game.(registry.StatsReporter)
	if !ok {
		return nil
	}
	_, err := store.SaveRun(storage.RunRecord{
		GameID: game.ID(),
		Seed:   seed,
		Score:  score,
		Reason: r.Reason(),
		Stats:  r.Stats(),
	})
	return err
}

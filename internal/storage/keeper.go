package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// Keeper adapts a Store to the engine's fire-and-forget score interfaces.
// Errors are logged, never returned.
type Keeper struct {
	store      *Store
	difficulty string
	logger     *log.Logger
}

// NewKeeper binds store to one difficulty. A nil logger discards output.
func NewKeeper(store *Store, difficulty string, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{store: store, difficulty: difficulty, logger: logger}
}

// LoadHighScore returns the stored high score, or 0 on error.
func (k *Keeper) LoadHighScore() int {
	score, err := k.store.HighScore(k.difficulty)
	if err != nil {
		k.logger.Error("load high score", "err", err)
		return 0
	}
	return score
}

// SaveHighScore persists score if it is a new record.
func (k *Keeper) SaveHighScore(score int) {
	if err := k.store.SetHighScore(k.difficulty, score); err != nil {
		k.logger.Error("save high score", "score", score, "err", err)
	}
}

// RecordRun appends a finished run to the history.
func (k *Keeper) RecordRun(run core.RunSummary) {
	id, err := k.store.SaveRun(Run{
		Score:      run.Score,
		Wave:       run.Wave,
		Kills:      run.Kills,
		BossKills:  run.BossKills,
		Duration:   run.Duration,
		Difficulty: k.difficulty,
	})
	if err != nil {
		k.logger.Error("record run", "score", run.Score, "err", err)
		return
	}
	k.logger.Debug("run recorded", "id", id, "score", run.Score, "wave", run.Wave)
}

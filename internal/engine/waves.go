package engine

import (
	"github.com/vovakirdan/nebula-defender/internal/catalog"
)

// upgradeChoices is how many options the upgrade screen offers.
const upgradeChoices = 3

// advanceWave moves to the next wave once the kill target is met and the
// field is clear, then opens either the boss warning or the upgrade screen.
func (e *Engine) advanceWave() {
	if e.bossAlive() || e.run.WaveKills < e.run.KillTarget || len(e.enemies) > 0 {
		return
	}

	w := e.cfg.Waves
	cleared := e.run.Wave
	e.run.Wave++
	e.run.WaveKills = 0
	e.run.KillTarget = min(w.KillTargetCap, e.run.KillTarget+w.KillTargetStep)
	e.run.SpawnBudget = w.BaseBudget + w.BudgetPerWave*e.run.Wave
	e.run.RemainingBudget = e.run.SpawnBudget
	e.run.SpawnTimer = w.FirstSpawnDelay
	e.logger.Debug("wave cleared", "wave", cleared, "score", e.run.Score, "next", e.run.Wave)

	if e.run.Wave%w.BossEvery == 0 {
		e.spawnBoss()
		e.mode = ModeWarning
		e.run.WarningTimer = e.cfg.Timing.WarningDuration
		e.run.SlowmoTimer = e.cfg.Timing.WarningDuration
		e.audio.Warning()
		return
	}

	e.options = e.rollOptions()
	e.mode = ModeUpgrade
}

// rollOptions draws distinct upgrades uniformly without replacement.
func (e *Engine) rollOptions() []catalog.UpgradeID {
	perm := e.rng.Perm(int(catalog.NumUpgrades))
	out := make([]catalog.UpgradeID, upgradeChoices)
	for i := range out {
		out[i] = catalog.UpgradeID(perm[i])
	}
	return out
}

package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

type fakeAudio struct {
	shoot, explosion, pickup, hit, warning int
	enabled                                bool
}

func (a *fakeAudio) Shoot()            { a.shoot++ }
func (a *fakeAudio) Explosion()        { a.explosion++ }
func (a *fakeAudio) Pickup()           { a.pickup++ }
func (a *fakeAudio) Hit()              { a.hit++ }
func (a *fakeAudio) Warning()          { a.warning++ }
func (a *fakeAudio) SetEnabled(b bool) { a.enabled = b }

type fakeScores struct {
	high  int
	saved []int
}

func (s *fakeScores) LoadHighScore() int      { return s.high }
func (s *fakeScores) SaveHighScore(score int) { s.saved = append(s.saved, score) }

type fakeRuns struct {
	runs []core.RunSummary
}

func (r *fakeRuns) RecordRun(run core.RunSummary) { r.runs = append(r.runs, run) }

type harness struct {
	*Engine
	audio  *fakeAudio
	scores *fakeScores
	runs   *fakeRuns
	input  *core.InputFrame
}

func newHarness(t *testing.T, seed int64) *harness {
	t.Helper()
	h := &harness{
		audio:  &fakeAudio{},
		scores: &fakeScores{},
		runs:   &fakeRuns{},
		input:  &core.InputFrame{},
	}
	h.Engine = New(Options{
		Seed:   seed,
		Input:  h.input,
		Audio:  h.audio,
		Scores: h.scores,
		Runs:   h.runs,
	})
	return h
}

func TestNewStartsInMenu(t *testing.T) {
	h := newHarness(t, 1)
	if h.Mode() != ModeMenu {
		t.Errorf("Mode() = %s, expected menu", h.Mode())
	}
	if !h.audio.enabled {
		t.Error("default settings should enable sound")
	}
	if len(h.stars) != h.cfg.Effects.Stars {
		t.Errorf("stars = %d, expected %d", len(h.stars), h.cfg.Effects.Stars)
	}

	// Gameplay does not advance outside playing.
	h.input.Set(core.KeyFire)
	for i := 0; i < 30; i++ {
		h.Update(0.016)
	}
	if len(h.bullets) != 0 || h.run.Elapsed != 0 {
		t.Error("menu mode advanced gameplay")
	}
}

func TestDamagePlayerScenario(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.player.Shield = 0

	h.damagePlayer(30)
	if h.player.HP != 70 || h.player.Shield != 0 {
		t.Fatalf("after 30 damage: hp=%v shield=%v, expected 70/0", h.player.HP, h.player.Shield)
	}
	if h.Mode() != ModePlaying {
		t.Fatalf("mode = %s, expected playing", h.Mode())
	}

	h.damagePlayer(150)
	if h.player.HP > 0 {
		t.Errorf("hp = %v, expected <= 0", h.player.HP)
	}
	if h.Mode() != ModeGameOver {
		t.Fatalf("mode = %s, expected gameOver", h.Mode())
	}

	hits := h.audio.hit
	h.damagePlayer(10)
	h.Update(0.016)
	if len(h.runs.runs) != 1 {
		t.Errorf("RecordRun called %d times, expected exactly 1", len(h.runs.runs))
	}
	if h.audio.hit != hits {
		t.Error("damage applied after game over")
	}
}

func TestShieldAbsorbsFirst(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()

	h.damagePlayer(30) // shield 45 -> 15
	if h.player.HP != 100 || h.player.Shield != 15 {
		t.Fatalf("hp=%v shield=%v, expected 100/15", h.player.HP, h.player.Shield)
	}
	h.damagePlayer(40) // shield 15 -> 0, hp 100 -> 75
	if h.player.HP != 75 || h.player.Shield != 0 {
		t.Fatalf("hp=%v shield=%v, expected 75/0", h.player.HP, h.player.Shield)
	}
	if h.player.HitFlash != 1 || h.run.Shake != 14 {
		t.Errorf("hitFlash=%v shake=%v, expected 1/14", h.player.HitFlash, h.run.Shake)
	}

	h.player.Invuln = 0.2
	h.damagePlayer(50)
	if h.player.HP != 75 {
		t.Error("damage applied while invulnerable")
	}
}

func TestEnemyKilledAfterTwoHits(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.spawnEnemy(catalog.Enemy(catalog.Drifter), core.V(480, 200), false)
	id := h.enemies[0].ID

	shoot := func() {
		h.bullets = append(h.bullets, Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true})
	}

	shoot()
	h.resolveCollisions()
	if len(h.bullets) != 0 {
		t.Fatal("bullet with pierce 0 survived a hit")
	}
	if len(h.enemies) != 1 || h.enemies[0].HP != 1 {
		t.Fatalf("expected enemy %d with 1 hp, got %+v", id, h.enemies)
	}

	shoot()
	h.resolveCollisions()
	if len(h.enemies) != 0 {
		t.Fatal("enemy not removed after second hit")
	}
	if h.run.WaveKills != 1 || h.run.TotalKills != 1 {
		t.Errorf("kills = %d/%d, expected 1/1", h.run.WaveKills, h.run.TotalKills)
	}
	// First kill: combo 1.2, drifter 100 points.
	if h.run.Score != 120 || h.run.Combo != 1.2 {
		t.Errorf("score=%d combo=%v, expected 120/1.2", h.run.Score, h.run.Combo)
	}

	h.resolveCollisions()
	if h.run.WaveKills != 1 {
		t.Error("kill counted twice")
	}
}

func TestPierceConsumedAfterKPlusOneHits(t *testing.T) {
	for k := 0; k <= 3; k++ {
		h := newHarness(t, 1)
		h.Start()
		for i := 0; i < 4; i++ {
			h.spawnEnemy(catalog.Enemy(catalog.Tank), core.V(480, 200), false)
		}
		h.bullets = append(h.bullets, Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true, Pierce: k})

		hits := 0
		for len(h.bullets) > 0 && hits < 10 {
			h.resolveCollisions()
			hits++
		}
		if hits != k+1 {
			t.Errorf("pierce %d: bullet removed after %d hits, expected %d", k, hits, k+1)
		}
	}
}

func TestPierceHitsEachEnemyOnce(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.spawnEnemy(catalog.Enemy(catalog.Tank), core.V(480, 200), false)
	h.bullets = append(h.bullets, Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true, Pierce: 3})

	for i := 0; i < 5; i++ {
		h.resolveCollisions()
	}
	if h.enemies[0].HP != 8 {
		t.Errorf("tank hp = %v, expected 8", h.enemies[0].HP)
	}
}

func TestPierceThroughOverlappingEnemies(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.spawnEnemy(catalog.Enemy(catalog.Tank), core.V(480, 200), false)
	h.spawnEnemy(catalog.Enemy(catalog.Tank), core.V(482, 200), false)
	h.bullets = append(h.bullets, Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true, Pierce: 3})

	for i := 0; i < 4; i++ {
		h.resolveCollisions()
	}
	for i, en := range h.enemies {
		if en.HP != 8 {
			t.Errorf("tank %d hp = %v, expected 8 (one hit each)", i, en.HP)
		}
	}
	if len(h.bullets) != 1 || h.bullets[0].Pierce != 1 {
		t.Errorf("bullet should survive with pierce 1, got %+v", h.bullets)
	}
}

func TestCritRolledPerHit(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	for i := 0; i < 3; i++ {
		h.spawnEnemy(catalog.Enemy(catalog.Tank), core.V(480, 200), false)
	}
	h.bullets = append(h.bullets, Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true, Pierce: 2, CritChance: 0.5})

	for i := 0; i < 3; i++ {
		h.resolveCollisions()
	}
	for i, en := range h.enemies {
		if lost := en.MaxHP - en.HP; lost != 1 && lost != 2 {
			t.Errorf("tank %d lost %v hp, expected 1 or 2", i, lost)
		}
	}

	// Certain crits double every hit.
	h.enemies = h.enemies[:1]
	h.enemies[0].HP = h.enemies[0].MaxHP
	h.bullets = append(h.bullets[:0], Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true, CritChance: 1})
	h.resolveCollisions()
	if lost := h.enemies[0].MaxHP - h.enemies[0].HP; lost != 2 {
		t.Errorf("certain crit dealt %v, expected 2", lost)
	}
}

func TestKillsAfterDeathDoNotScore(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.player.HP = 5
	h.player.Shield = 0
	h.spawnEnemy(catalog.Enemy(catalog.Drifter), core.V(480, 200), false)
	h.enemies[0].HP = 1
	h.bullets = append(h.bullets,
		Bullet{Pos: h.player.Pos, Radius: 4, TTL: 3, Damage: 11},
		Bullet{Pos: core.V(480, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true},
	)

	h.resolveCollisions()
	if h.Mode() != ModeGameOver {
		t.Fatalf("mode = %s, expected gameOver", h.Mode())
	}
	if h.run.Score != 0 || h.run.WaveKills != 0 {
		t.Errorf("score=%d waveKills=%d after death, expected 0/0", h.run.Score, h.run.WaveKills)
	}
	if len(h.runs.runs) != 1 || h.runs.runs[0].Score != h.run.Score {
		t.Errorf("recorded %+v, final score %d", h.runs.runs, h.run.Score)
	}
}

func TestSplitterReleasesDrones(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.spawnEnemy(catalog.Enemy(catalog.Splitter), core.V(300, 200), false)
	h.enemies[0].HP = 1
	h.bullets = append(h.bullets, Bullet{Pos: core.V(300, 200), Radius: 4, TTL: 2, Damage: 1, FromPlayer: true})

	h.resolveCollisions()
	if len(h.enemies) != 2 {
		t.Fatalf("expected 2 drones, got %d enemies", len(h.enemies))
	}
	for _, d := range h.enemies {
		if d.Kind != catalog.SplitDrone || d.HP != 1 {
			t.Errorf("unexpected drone %+v", d)
		}
	}
	if h.enemies[0].Vel.X != -h.enemies[1].Vel.X || h.enemies[0].Vel.X == 0 {
		t.Errorf("drones should split symmetrically, got %v and %v", h.enemies[0].Vel, h.enemies[1].Vel)
	}
	if h.enemies[0].ID == h.enemies[1].ID {
		t.Error("drones share an id")
	}
}

func TestEnemyContactDestroysWithoutScore(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.spawnEnemy(catalog.Enemy(catalog.Drifter), h.player.Pos, false)

	h.resolveCollisions()
	if len(h.enemies) != 0 {
		t.Fatal("enemy survived contact")
	}
	if h.player.Shield != 45-18 {
		t.Errorf("shield = %v, expected %v", h.player.Shield, 45-18)
	}
	if h.run.WaveKills != 0 || h.run.Score != 0 {
		t.Error("contact kill should not score")
	}
}

func TestWaveFiveTriggersBossWarning(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Wave = 4
	h.run.WaveKills = h.run.KillTarget

	h.Update(0.016)
	if h.Mode() != ModeWarning {
		t.Fatalf("mode = %s, expected warning", h.Mode())
	}
	if h.boss == nil || h.boss.MaxHP != 290 {
		t.Fatalf("boss = %+v, expected maxHp 290", h.boss)
	}
	if h.audio.warning != 1 {
		t.Errorf("warning cue played %d times", h.audio.warning)
	}
	start := h.boss.Pos

	ticks := 0
	for h.Mode() == ModeWarning && ticks < 1000 {
		h.Update(0.016)
		ticks++
		if len(h.enemies) != 0 {
			t.Fatal("enemies spawned during warning")
		}
	}
	if elapsed := float64(ticks) * 0.016; elapsed < 2.2 {
		t.Errorf("warning lasted %.3fs of real time, expected >= 2.2", elapsed)
	}
	if h.Mode() != ModePlaying {
		t.Fatalf("mode = %s, expected playing", h.Mode())
	}
	if !h.boss.Alive {
		t.Error("boss should be alive after warning")
	}
	if h.boss.Pos != start {
		t.Error("boss moved during warning")
	}
}

func TestBossInertDuringWarning(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Wave = 5
	h.spawnBoss()
	h.mode = ModeWarning
	h.run.WarningTimer = 2.2
	h.bullets = append(h.bullets, Bullet{Pos: h.boss.Pos, Radius: 4, TTL: 2, Damage: 1, FromPlayer: true})

	h.resolveCollisions()
	if h.boss.HP != h.boss.MaxHP {
		t.Error("boss damaged during warning")
	}
	h.updateBoss(0.5)
	if h.boss.PatternTimer != 0 || h.boss.FireCooldown != 1 {
		t.Error("boss advanced during warning")
	}
}

func TestBossPhasesAndPatterns(t *testing.T) {
	tests := []struct {
		hpRatio float64
		phase   int
		bullets int
	}{
		{1.0, 1, 5},
		{0.65, 2, 12},
		{0.25, 3, 7},
	}

	for _, tc := range tests {
		h := newHarness(t, 1)
		h.Start()
		h.run.Wave = 5
		h.spawnBoss()
		h.boss.HP = h.boss.MaxHP * tc.hpRatio
		h.boss.FireCooldown = 0

		h.updateBoss(0.016)
		if h.boss.Phase != tc.phase {
			t.Errorf("ratio %.1f: phase %d, expected %d", tc.hpRatio, h.boss.Phase, tc.phase)
		}
		if len(h.bullets) != tc.bullets {
			t.Errorf("phase %d fired %d bullets, expected %d", tc.phase, len(h.bullets), tc.bullets)
		}
		if want := h.cfg.Boss.FireCooldowns[tc.phase-1]; h.boss.FireCooldown != want {
			t.Errorf("phase %d cooldown %v, expected %v", tc.phase, h.boss.FireCooldown, want)
		}
	}
}

func TestBossKillCompletesWave(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Wave = 5
	h.spawnBoss()
	h.boss.HP = 1
	h.bullets = append(h.bullets, Bullet{Pos: h.boss.Pos, Radius: 4, TTL: 2, Damage: 1, FromPlayer: true})

	h.resolveCollisions()
	if h.boss.Alive {
		t.Fatal("boss survived lethal hit")
	}
	if h.run.BossKills != 1 {
		t.Errorf("boss kills = %d", h.run.BossKills)
	}
	if h.run.Score != 6+2500 {
		t.Errorf("score = %d, expected %d", h.run.Score, 6+2500)
	}
	if h.run.Combo != 2 || h.run.ComboTimer != 3 {
		t.Errorf("combo=%v timer=%v, expected 2/3", h.run.Combo, h.run.ComboTimer)
	}

	h.advanceWave()
	if h.run.Wave != 6 || h.Mode() != ModeUpgrade {
		t.Fatalf("wave=%d mode=%s, expected 6/upgrade", h.run.Wave, h.Mode())
	}
	if h.boss == nil || h.boss.Alive {
		t.Error("dead boss should persist inert")
	}
}

func TestUpgradeOptionsDistinct(t *testing.T) {
	h := newHarness(t, 7)
	for i := 0; i < 200; i++ {
		opts := h.rollOptions()
		if len(opts) != 3 {
			t.Fatalf("got %d options", len(opts))
		}
		seen := map[catalog.UpgradeID]bool{}
		for _, id := range opts {
			if id < 0 || id >= catalog.NumUpgrades || seen[id] {
				t.Fatalf("bad options %v", opts)
			}
			seen[id] = true
		}
	}
}

func TestChooseUpgradeMaxHP(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.mode = ModeUpgrade
	h.options = []catalog.UpgradeID{catalog.MaxHP, catalog.Damage, catalog.Pierce}
	h.player.HP = 50

	if h.ChooseUpgrade(3) || h.ChooseUpgrade(-1) {
		t.Fatal("out-of-range slot accepted")
	}
	if !h.ChooseUpgrade(0) {
		t.Fatal("ChooseUpgrade(0) rejected")
	}
	if h.player.MaxHP != 120 || h.player.HP != 70 {
		t.Errorf("maxHp=%v hp=%v, expected 120/70", h.player.MaxHP, h.player.HP)
	}
	if h.upgrades[catalog.MaxHP] != 1 || h.Mode() != ModePlaying || h.audio.pickup != 1 {
		t.Errorf("stacks=%d mode=%s pickups=%d", h.upgrades[catalog.MaxHP], h.Mode(), h.audio.pickup)
	}
	if h.ChooseUpgrade(0) {
		t.Error("ChooseUpgrade accepted outside upgrade mode")
	}
}

func TestUpgradeKeysAreEdgeTriggered(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.mode = ModeUpgrade
	h.options = []catalog.UpgradeID{catalog.FireRate, catalog.MaxShield, catalog.Magnet}

	h.input.Set(core.KeyUpgrade2)
	h.Update(0.016)
	if h.upgrades[catalog.MaxShield] != 1 || h.player.MaxShield != 80 {
		t.Fatalf("key 2 did not pick MaxShield: stacks=%d", h.upgrades[catalog.MaxShield])
	}

	// Still held when the next upgrade screen opens: no repeat.
	h.mode = ModeUpgrade
	h.options = []catalog.UpgradeID{catalog.FireRate, catalog.MaxShield, catalog.Magnet}
	h.Update(0.016)
	if h.Mode() != ModeUpgrade {
		t.Error("held key chose again")
	}
	h.input.Unset(core.KeyUpgrade2)
	h.Update(0.016)
	h.input.Set(core.KeyUpgrade2)
	h.Update(0.016)
	if h.upgrades[catalog.MaxShield] != 2 {
		t.Errorf("stacks = %d, expected 2", h.upgrades[catalog.MaxShield])
	}
}

func TestFireFanFromUpgrades(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.upgrades[catalog.ExtraProjectile] = 2
	h.upgrades[catalog.Pierce] = 1
	h.upgrades[catalog.Damage] = 1

	h.firePlayer()
	if len(h.bullets) != 3 {
		t.Fatalf("fired %d bullets, expected 3", len(h.bullets))
	}
	if h.bullets[1].Vel.X != 0 || h.bullets[0].Vel.X != -h.bullets[2].Vel.X {
		t.Errorf("fan not symmetric: %v %v %v", h.bullets[0].Vel, h.bullets[1].Vel, h.bullets[2].Vel)
	}
	for _, b := range h.bullets {
		if b.Pierce != 1 || b.Damage != 1.2 || !b.FromPlayer {
			t.Errorf("unexpected bullet %+v", b)
		}
	}
	if h.audio.shoot != 1 {
		t.Errorf("shoot cue %d times, expected 1 per volley", h.audio.shoot)
	}
}

func TestSpawnerRespectsUnlockAndBudget(t *testing.T) {
	for wave := 1; wave <= 12; wave++ {
		h := newHarness(t, int64(wave))
		h.Start()
		h.run.Wave = wave
		h.run.KillTarget = 1000
		h.run.RemainingBudget = 8 + 4*wave

		for i := 0; i < 50; i++ {
			before := h.run.RemainingBudget
			n := len(h.enemies)
			h.run.SpawnTimer = 0
			h.updateSpawner(0.016)
			if len(h.enemies) == n {
				continue
			}
			spec := catalog.Enemy(h.enemies[n].Kind)
			if spec.UnlockWave > wave {
				t.Errorf("wave %d spawned %v (unlock %d)", wave, spec.Kind, spec.UnlockWave)
			}
			if spec.Cost > before {
				t.Errorf("wave %d spawned %v costing %d with budget %d", wave, spec.Kind, spec.Cost, before)
			}
			if h.run.RemainingBudget != before-spec.Cost {
				t.Errorf("budget %d -> %d after %v", before, h.run.RemainingBudget, spec.Kind)
			}
			if y := h.enemies[n].Pos.Y; y != -20 {
				t.Errorf("spawn y = %v", y)
			}
		}
	}
}

func TestSpawnerReinforcesEmptyField(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.RemainingBudget = 0
	h.run.SpawnTimer = 0

	h.updateSpawner(0.016)
	if h.run.RemainingBudget != h.run.SpawnBudget {
		t.Errorf("remaining = %d, expected refill to %d", h.run.RemainingBudget, h.run.SpawnBudget)
	}
}

func TestSpawnerSuppressedByBoss(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Wave = 5
	h.spawnBoss()
	for i := 0; i < 10; i++ {
		h.run.SpawnTimer = 0
		h.updateSpawner(0.016)
	}
	if len(h.enemies) != 0 {
		t.Errorf("spawned %d enemies while boss alive", len(h.enemies))
	}
}

func TestComboResetsWhenTimerLapses(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Combo = 3
	h.run.ComboTimer = 0.05

	h.Update(0.033)
	if h.run.Combo != 3 {
		t.Fatalf("combo = %v before lapse", h.run.Combo)
	}
	h.Update(0.033)
	if h.run.Combo != 1 {
		t.Errorf("combo = %v, expected exactly 1", h.run.Combo)
	}
}

func TestSetModeTransitions(t *testing.T) {
	h := newHarness(t, 1)
	steps := []struct {
		to   Mode
		ok   bool
		want Mode
	}{
		{ModePaused, false, ModeMenu},
		{ModeSettings, true, ModeSettings},
		{ModePlaying, false, ModeSettings},
		{ModeMenu, true, ModeMenu},
		{ModePlaying, true, ModePlaying},
		{ModeGameOver, false, ModePlaying},
		{ModeUpgrade, false, ModePlaying},
		{ModePaused, true, ModePaused},
		{ModePlaying, true, ModePlaying},
		{ModePaused, true, ModePaused},
		{ModeMenu, true, ModeMenu},
	}

	for i, s := range steps {
		if got := h.SetMode(s.to); got != s.ok {
			t.Fatalf("step %d: SetMode(%s) = %v, expected %v", i, s.to, got, s.ok)
		}
		if h.Mode() != s.want {
			t.Fatalf("step %d: mode = %s, expected %s", i, h.Mode(), s.want)
		}
	}
}

func TestResumeFromPauseKeepsRun(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.run.Score = 900
	h.SetMode(ModePaused)
	h.SetMode(ModePlaying)
	if h.run.Score != 900 {
		t.Error("resume restarted the run")
	}

	h.damagePlayer(500)
	if !h.SetMode(ModePlaying) || h.run.Score != 0 || h.player.HP != h.player.MaxHP {
		t.Error("playing from game over should start a fresh run")
	}
}

func TestPauseIsEdgeTriggered(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()

	h.input.Set(core.KeyPause)
	for i := 0; i < 5; i++ {
		h.Update(0.016)
	}
	if h.Mode() != ModePaused {
		t.Fatalf("mode = %s, expected paused", h.Mode())
	}
	elapsed := h.run.Elapsed

	h.input.Unset(core.KeyPause)
	h.Update(0.016)
	if h.run.Elapsed != elapsed {
		t.Error("gameplay advanced while paused")
	}
	h.input.Set(core.KeyPause)
	h.Update(0.016)
	if h.Mode() != ModePlaying {
		t.Errorf("mode = %s, expected playing", h.Mode())
	}
}

func TestPickupsRestoreWithinCaps(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.player.HP = 90
	h.player.Shield = 10
	h.pickups = append(h.pickups,
		Pickup{Pos: h.player.Pos, Radius: 9, Fall: 120, Kind: PickupHealth},
		Pickup{Pos: h.player.Pos, Radius: 9, Fall: 120, Kind: PickupShield},
	)

	h.resolveCollisions()
	if len(h.pickups) != 0 {
		t.Fatal("pickups not collected")
	}
	if h.player.HP != 100 || h.player.Shield != 40 {
		t.Errorf("hp=%v shield=%v, expected 100/40", h.player.HP, h.player.Shield)
	}
	if h.audio.pickup != 2 {
		t.Errorf("pickup cue %d times", h.audio.pickup)
	}
}

func TestMagnetPullsPickups(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.pickups = append(h.pickups, Pickup{Pos: h.player.Pos.Add(core.V(60, 0)), Radius: 9, Fall: 120})

	h.updatePickups(0.1)
	if got := h.pickups[0].Pos; got.X != h.player.Pos.X+60-26 || got.Y != h.player.Pos.Y {
		t.Errorf("pickup at %v, expected pulled 26 units toward player", got)
	}
}

func TestRestartIsIdempotent(t *testing.T) {
	h := newHarness(t, 3)
	h.Start()
	h.input.Set(core.KeyFire)
	h.input.Set(core.KeyLeft)
	for i := 0; i < 600; i++ {
		h.Update(0.016)
		if h.Mode() == ModeUpgrade {
			h.ChooseUpgrade(0)
		}
	}

	h.Restart()
	first := h.Snapshot()
	h.Restart()
	second := h.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart not idempotent:\n%+v\n%+v", first, second)
	}
	if first.Wave != 1 || first.HP != 100 || first.Shield != 45 || first.Enemies != 0 || first.Bullets != 0 {
		t.Errorf("restart left stale state: %+v", first)
	}
	if first.Upgrades != [catalog.NumUpgrades]int{} {
		t.Error("upgrades survived restart")
	}
}

func TestGameOverSavesHighScoreOnce(t *testing.T) {
	h := newHarness(t, 1)
	h.scores.high = 100
	h.Engine = New(Options{Seed: 1, Input: h.input, Audio: h.audio, Scores: h.scores, Runs: h.runs})
	h.Start()
	h.run.Score = 500
	h.run.Wave = 3
	h.run.TotalKills = 12

	h.damagePlayer(1000)
	if len(h.scores.saved) != 1 || h.scores.saved[0] != 500 {
		t.Fatalf("saved = %v, expected [500]", h.scores.saved)
	}
	r := h.runs.runs[0]
	if r.Score != 500 || r.Wave != 3 || r.Kills != 12 {
		t.Errorf("recorded run %+v", r)
	}

	h.Restart()
	if h.Snapshot().HighScore != 500 {
		t.Error("high score lost on restart")
	}
	h.damagePlayer(1000) // score 0 does not beat 500
	if len(h.scores.saved) != 1 || len(h.runs.runs) != 2 {
		t.Errorf("saved=%v runs=%d", h.scores.saved, len(h.runs.runs))
	}
}

func TestInvariantsHoldDuringPlay(t *testing.T) {
	h := newHarness(t, 42)
	h.Start()
	h.input.Set(core.KeyFire)

	lastWave := 1
	for i := 0; i < 20000; i++ {
		h.input.Clear()
		h.input.Set(core.KeyFire)
		switch (i / 90) % 4 {
		case 0:
			h.input.Set(core.KeyLeft)
		case 1:
			h.input.Set(core.KeyUp)
		case 2:
			h.input.Set(core.KeyRight)
		default:
			h.input.Set(core.KeyDown)
		}
		h.Update(0.016)

		p := h.player
		if p.HP < 0 || p.HP > p.MaxHP || p.Shield < 0 || p.Shield > p.MaxShield {
			t.Fatalf("tick %d: hp=%v/%v shield=%v/%v", i, p.HP, p.MaxHP, p.Shield, p.MaxShield)
		}
		if h.run.Combo < 1 || h.run.Combo > 8 {
			t.Fatalf("tick %d: combo %v", i, h.run.Combo)
		}
		if h.run.Wave < lastWave {
			t.Fatalf("tick %d: wave went from %d to %d", i, lastWave, h.run.Wave)
		}
		lastWave = h.run.Wave
		for _, en := range h.enemies {
			if en.HP <= 0 {
				t.Fatalf("tick %d: dead enemy in live set", i)
			}
		}

		switch h.Mode() {
		case ModeUpgrade:
			h.ChooseUpgrade(i % 3)
		case ModeGameOver:
			h.Restart()
			lastWave = 1
		}
	}
}

func TestSameSeedIsDeterministic(t *testing.T) {
	run := func() []uint64 {
		h := newHarness(t, 99)
		h.Start()
		var hashes []uint64
		for i := 0; i < 3000; i++ {
			h.input.Clear()
			h.input.Set(core.KeyFire)
			if (i/120)%2 == 0 {
				h.input.Set(core.KeyLeft)
			} else {
				h.input.Set(core.KeyRight)
			}
			h.Update(0.016)
			if h.Mode() == ModeUpgrade {
				h.ChooseUpgrade(1)
			}
			if i%100 == 0 {
				hashes = append(hashes, h.Snapshot().Hash())
			}
		}
		return hashes
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and input diverged")
	}
}

func TestDeltaIsClamped(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	h.Update(5)
	if h.run.Elapsed != h.cfg.Timing.MaxDelta {
		t.Errorf("elapsed %v, expected clamp to %v", h.run.Elapsed, h.cfg.Timing.MaxDelta)
	}
	h.Update(-1)
	if h.run.Elapsed != h.cfg.Timing.MaxDelta {
		t.Error("negative delta advanced time")
	}
}

func TestApplySettings(t *testing.T) {
	h := newHarness(t, 1)
	h.ApplySettings(core.Settings{SoundEnabled: false, Screenshake: false})
	if h.audio.enabled || h.Settings().Screenshake {
		t.Error("settings not applied")
	}

	h.Start()
	h.damagePlayer(10)
	h.Update(0.016)
	if !h.shakeOffset.IsZero() {
		t.Error("shake offset applied with screenshake disabled")
	}
}

func TestRenderDrawsHUDAndBanner(t *testing.T) {
	h := newHarness(t, 1)
	h.Start()
	screen := core.NewScreen(96, 27)
	canvas := core.NewCanvas(screen)

	h.Render(canvas)
	out := screen.String()
	for _, want := range []string{"WAVE 1", "SCORE 0", "COMBO x1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}

	h.run.Wave = 4
	h.run.WaveKills = h.run.KillTarget
	h.Update(0.016)
	h.Render(canvas)
	out = screen.String()
	if !strings.Contains(out, bannerTitle) {
		t.Error("warning banner not drawn")
	}
	if !strings.Contains(out, "BOSS  PHASE 1") {
		t.Error("boss bar label not drawn")
	}
}

// Package engine implements the Nebula Defender simulation: the mode state
// machine, player, enemies, boss, bullets, pickups, collisions and wave
// progression. It is single-threaded; drivers call Update then Render once per
// frame.
package engine

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/config"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

// ScoreKeeper loads and persists the all-time high score.
type ScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// RunRecorder receives a summary of every finished run.
type RunRecorder interface {
	RecordRun(run core.RunSummary)
}

// Options configures a new engine. Nil adapters are replaced by no-ops and a
// zero Config by config.Default().
type Options struct {
	Config   config.Config
	Seed     int64
	Input    core.Input
	Audio    core.Audio
	Scores   ScoreKeeper
	Runs     RunRecorder
	Settings *core.Settings
	Logger   *log.Logger
}

// Engine owns every entity of a run.
type Engine struct {
	cfg    config.Config
	rng    *rand.Rand // gameplay
	fx     *rand.Rand // cosmetics only
	input  core.Input
	audio  core.Audio
	scores ScoreKeeper
	runs   RunRecorder
	logger *log.Logger

	settings core.Settings
	mode     Mode

	player    Player
	bullets   []Bullet
	enemies   []Enemy
	boss      *Boss
	pickups   []Pickup
	particles []Particle
	numbers   []DamageNumber
	stars     []Star

	upgrades [catalog.NumUpgrades]int
	options  []catalog.UpgradeID
	run      RunState

	highScore   int
	nextID      int
	shakeOffset core.Vec2

	pauseHeld   bool
	upgradeHeld [len(core.UpgradeKeys)]bool
}

// New creates an engine in menu mode.
func New(opts Options) *Engine {
	cfg := opts.Config
	if cfg.IsZero() {
		cfg = config.Default()
	}
	e := &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		fx:       rand.New(rand.NewSource(opts.Seed + 1)),
		input:    opts.Input,
		audio:    opts.Audio,
		scores:   opts.Scores,
		runs:     opts.Runs,
		logger:   opts.Logger,
		settings: core.DefaultSettings(),
		mode:     ModeMenu,
	}
	if e.input == nil {
		e.input = core.NopInput{}
	}
	if e.audio == nil {
		e.audio = core.NopAudio{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if opts.Settings != nil {
		e.settings = *opts.Settings
	}
	e.audio.SetEnabled(e.settings.SoundEnabled)
	if e.scores != nil {
		e.highScore = e.scores.LoadHighScore()
	}

	e.stars = e.createStars()
	e.reset()
	return e
}

// SetInput replaces the input source.
func (e *Engine) SetInput(in core.Input) {
	if in == nil {
		in = core.NopInput{}
	}
	e.input = in
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Settings returns the active user settings.
func (e *Engine) Settings() core.Settings {
	return e.settings
}

// Config returns the tuning in use.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Start begins a fresh run.
func (e *Engine) Start() {
	e.Restart()
}

// Restart discards the current run and starts a new one in playing mode.
// The starfield and the high score survive.
func (e *Engine) Restart() {
	e.reset()
	e.mode = ModePlaying
	e.logger.Debug("run started", "highScore", e.highScore)
}

func (e *Engine) reset() {
	e.player = e.createPlayer()
	e.bullets = e.bullets[:0]
	e.enemies = e.enemies[:0]
	e.pickups = e.pickups[:0]
	e.particles = e.particles[:0]
	e.numbers = e.numbers[:0]
	e.boss = nil
	e.upgrades = [catalog.NumUpgrades]int{}
	e.options = nil
	e.nextID = 0
	e.shakeOffset = core.Vec2{}

	w := e.cfg.Waves
	budget := w.BaseBudget + w.BudgetPerWave
	e.run = RunState{
		Wave:            1,
		KillTarget:      w.InitialKillTarget,
		SpawnBudget:     budget,
		RemainingBudget: budget,
		SpawnTimer:      w.FirstSpawnDelay,
		Combo:           1,
	}
}

func (e *Engine) createPlayer() Player {
	pc := e.cfg.Player
	return Player{
		Pos:         core.V(pc.SpawnX, pc.SpawnY),
		W:           pc.Width,
		H:           pc.Height,
		HP:          pc.MaxHP,
		MaxHP:       pc.MaxHP,
		Shield:      pc.InitialShield,
		MaxShield:   pc.MaxShield,
		ShieldRegen: pc.ShieldRegen,
		Magnet:      pc.MagnetRadius,
	}
}

var manualTransitions = map[Mode][]Mode{
	ModeMenu:     {ModeSettings, ModePlaying},
	ModeSettings: {ModeMenu},
	ModePaused:   {ModePlaying, ModeMenu},
	ModePlaying:  {ModePaused},
	ModeGameOver: {ModeMenu, ModePlaying},
}

// SetMode performs a user-initiated transition and reports whether it was
// allowed. Entering playing from the menu or game over starts a new run.
func (e *Engine) SetMode(m Mode) bool {
	allowed := false
	for _, to := range manualTransitions[e.mode] {
		if to == m {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	if m == ModePlaying && (e.mode == ModeMenu || e.mode == ModeGameOver) {
		e.Restart()
		return true
	}
	e.logger.Debug("mode", "from", e.mode, "to", m)
	e.mode = m
	return true
}

// ApplySettings updates the user settings and forwards the sound toggle.
func (e *Engine) ApplySettings(s core.Settings) {
	e.settings = s
	e.audio.SetEnabled(s.SoundEnabled)
}

// ChooseUpgrade applies the option in slot (0-based) while the upgrade
// screen is up and resumes play.
func (e *Engine) ChooseUpgrade(slot int) bool {
	if e.mode != ModeUpgrade || slot < 0 || slot >= len(e.options) {
		return false
	}
	id := e.options[slot]
	e.upgrades[id]++
	u, _ := catalog.Lookup(id)
	switch id {
	case catalog.MaxHP:
		e.player.MaxHP += u.Magnitude
		e.player.HP += u.Magnitude
	case catalog.MaxShield:
		e.player.MaxShield += u.Magnitude
		e.player.Shield += u.Magnitude
	}
	e.options = nil
	e.mode = ModePlaying
	e.audio.Pickup()
	e.logger.Debug("upgrade chosen", "upgrade", id, "stacks", e.upgrades[id], "wave", e.run.Wave)
	return true
}

// Update advances the simulation by raw seconds of real time.
func (e *Engine) Update(raw float64) {
	if math.IsNaN(raw) {
		raw = 0
	}
	raw = core.ClampF(raw, 0, e.cfg.Timing.MaxDelta)
	dt := raw
	if e.run.SlowmoTimer > 0 {
		dt = raw * e.cfg.Timing.SlowMotionScale
	}

	e.updateCosmetics(raw)
	e.pollEdges()

	switch e.mode {
	case ModeWarning:
		e.run.WarningTimer = math.Max(0, e.run.WarningTimer-raw)
		e.run.SlowmoTimer = math.Max(0, e.run.SlowmoTimer-raw)
		e.step(dt, raw)
		if e.mode == ModeWarning && e.run.WarningTimer <= 0 {
			e.mode = ModePlaying
			e.logger.Debug("boss engaged", "wave", e.run.Wave)
		}
	case ModePlaying:
		e.run.SlowmoTimer = math.Max(0, e.run.SlowmoTimer-raw)
		e.step(dt, raw)
	}
}

// pollEdges turns held keys into one-shot presses.
func (e *Engine) pollEdges() {
	pause := e.input.IsPressed(core.KeyPause)
	if pause && !e.pauseHeld {
		switch e.mode {
		case ModePlaying:
			e.mode = ModePaused
		case ModePaused:
			e.mode = ModePlaying
		}
	}
	e.pauseHeld = pause

	for i, k := range core.UpgradeKeys {
		held := e.input.IsPressed(k)
		if held && !e.upgradeHeld[i] && e.mode == ModeUpgrade {
			e.ChooseUpgrade(i)
		}
		e.upgradeHeld[i] = held
	}
}

func (e *Engine) step(dt, raw float64) {
	e.run.Elapsed += raw
	e.tickCombo(raw)
	e.updatePlayer(dt, raw)
	if e.mode == ModePlaying {
		e.updateSpawner(dt)
	}
	e.updateBullets(dt)
	e.updateEnemies(dt)
	e.updateBoss(dt)
	e.updatePickups(dt)
	e.resolveCollisions()
	if e.mode == ModePlaying {
		e.advanceWave()
	}
}

func (e *Engine) tickCombo(raw float64) {
	if e.run.ComboTimer > 0 {
		e.run.ComboTimer -= raw
	}
	if e.run.ComboTimer <= 0 {
		e.run.ComboTimer = 0
		e.run.Combo = 1
	}
}

// bonus returns the summed magnitude of every stack of id.
func (e *Engine) bonus(id catalog.UpgradeID) float64 {
	u, ok := catalog.Lookup(id)
	if !ok {
		return 0
	}
	return float64(e.upgrades[id]) * u.Magnitude
}

func (e *Engine) damagePlayer(amount float64) {
	if e.player.Invuln > 0 || e.mode == ModeGameOver || amount <= 0 {
		return
	}
	p := &e.player
	absorbed := math.Min(p.Shield, amount)
	p.Shield -= absorbed
	p.HP = math.Max(0, p.HP-(amount-absorbed))
	p.HitFlash = 1
	fx := e.cfg.Effects
	e.run.Shake = math.Min(fx.ShakeCap, e.run.Shake+fx.ShakePerHit)
	e.audio.Hit()

	if p.HP <= 0 {
		e.gameOver()
	}
}

func (e *Engine) gameOver() {
	e.mode = ModeGameOver
	e.options = nil
	e.explodeAt(e.player.Pos, core.ColorBrightCyan, 60)
	e.audio.Explosion()

	if e.run.Score > e.highScore {
		e.highScore = e.run.Score
		if e.scores != nil {
			e.scores.SaveHighScore(e.highScore)
		}
	}
	summary := core.RunSummary{
		Score:     e.run.Score,
		Wave:      e.run.Wave,
		Kills:     e.run.TotalKills,
		BossKills: e.run.BossKills,
		Duration:  time.Duration(e.run.Elapsed * float64(time.Second)),
	}
	if e.runs != nil {
		e.runs.RecordRun(summary)
	}
	e.logger.Info("run over", "score", summary.Score, "wave", summary.Wave, "kills", summary.Kills, "highScore", e.highScore)
}

package engine

import (
	"math"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

const (
	bossSpawnY   = 100.0
	bossEdgePad  = 20.0
	bossSway     = 120.0
	bossSwayRage = 180.0
)

func (e *Engine) spawnBoss() {
	bc := e.cfg.Boss
	hp := bc.BaseHP + bc.HPPerWave*float64(e.run.Wave)
	e.boss = &Boss{
		Pos:          core.V(core.PlayfieldW/2, bossSpawnY),
		Radius:       bc.Radius,
		HP:           hp,
		MaxHP:        hp,
		FireCooldown: 1,
		Phase:        1,
		Alive:        true,
	}
	e.logger.Debug("boss spawned", "wave", e.run.Wave, "hp", hp)
}

// bossPhase maps the remaining hp ratio to 1, 2 or 3.
func bossPhase(hp, maxHP float64) int {
	ratio := hp / maxHP
	switch {
	case ratio <= 0.3:
		return 3
	case ratio <= 0.7:
		return 2
	default:
		return 1
	}
}

func (e *Engine) updateBoss(dt float64) {
	if !e.bossAlive() || e.mode == ModeWarning {
		return
	}
	b := e.boss
	b.PatternTimer += dt
	b.FireCooldown -= dt
	b.Phase = bossPhase(b.HP, b.MaxHP)

	sway := bossSway
	if b.Phase == 3 {
		sway = bossSwayRage
	}
	b.Vel.X = math.Sin(b.PatternTimer*0.9) * sway
	b.Pos.X += b.Vel.X * dt
	b.Pos.X = core.ClampF(b.Pos.X, b.Radius+bossEdgePad, core.PlayfieldW-b.Radius-bossEdgePad)

	if b.FireCooldown <= 0 {
		e.fireBossPattern(b)
		b.FireCooldown = e.cfg.Boss.FireCooldowns[b.Phase-1]
	}
}

func (e *Engine) fireBossPattern(b *Boss) {
	speed := e.cfg.Enemies.BulletSpeed
	damage := e.cfg.Enemies.BulletDamage
	shot := func(pos, vel core.Vec2, radius, ttl float64) {
		e.bullets = append(e.bullets, Bullet{Pos: pos, Vel: vel, Radius: radius, TTL: ttl, Damage: damage})
	}

	switch b.Phase {
	case 1:
		for i := -2; i <= 2; i++ {
			fi := float64(i)
			shot(core.V(b.Pos.X+fi*16, b.Pos.Y+30), core.V(fi*35, speed), 5, 4)
		}
	case 2:
		for i := 0; i < 12; i++ {
			a := 2 * math.Pi * float64(i) / 12
			shot(b.Pos, core.V(math.Cos(a)*170, math.Sin(a)*170+80), 4, 4)
		}
	default:
		dir := core.Normalize(e.player.Pos.Sub(b.Pos))
		for i := -3; i <= 3; i++ {
			fi := float64(i)
			shot(b.Pos, core.V(dir.X*speed+fi*30, dir.Y*speed+math.Abs(fi)*8), 5, 3)
		}
	}
}

// hitBoss applies one player bullet to the boss.
func (e *Engine) hitBoss(damage float64, crit bool, at core.Vec2) {
	b := e.boss
	b.HP -= damage
	e.run.Score += e.cfg.Boss.HitScore
	e.burst(at, core.ColorOrange, 6, 30, 200)
	e.addNumber(at, damage, crit)
	if b.HP > 0 {
		b.Phase = bossPhase(b.HP, b.MaxHP)
		return
	}

	b.HP = 0
	b.Alive = false
	sc := e.cfg.Scoring
	e.run.Score += int(math.Floor(float64(e.cfg.Boss.KillScore) * e.run.Combo))
	e.run.Combo = math.Min(sc.ComboMax, e.run.Combo+1)
	e.run.ComboTimer = sc.BossComboWindow
	e.run.BossKills++
	e.run.WaveKills = max(e.run.WaveKills, e.run.KillTarget)
	e.audio.Explosion()
	e.explodeAt(b.Pos, core.ColorBrightMagenta, 90)
	e.logger.Debug("boss destroyed", "wave", e.run.Wave, "score", e.run.Score)
}

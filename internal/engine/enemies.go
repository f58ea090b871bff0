package engine

import (
	"math"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

const (
	spawnMargin    = 30.0
	spawnY         = -20.0
	enemyExitPad   = 50.0
	bulletBounds   = 20.0
	pickupExitPad  = 30.0
	shooterDepth   = 150.0
	dashWindow     = 0.35
	dashMultiplier = 3.2
	splitImpulse   = 140.0
)

// spawnInterval shrinks with the wave towards spawn_interval_min.
func (e *Engine) spawnInterval() float64 {
	w := e.cfg.Waves
	span := w.SpawnInterval - w.SpawnIntervalMin
	return math.Max(w.SpawnIntervalMin, w.SpawnIntervalMin+span/(1+0.15*float64(e.run.Wave-1)))
}

func (e *Engine) bossAlive() bool {
	return e.boss != nil && e.boss.Alive
}

func (e *Engine) updateSpawner(dt float64) {
	if e.bossAlive() {
		return
	}
	e.run.SpawnTimer -= dt
	if e.run.SpawnTimer > 0 {
		return
	}
	e.run.SpawnTimer = e.spawnInterval()
	if e.run.WaveKills >= e.run.KillTarget {
		return
	}

	choices := catalog.Spawnable(e.run.Wave, e.run.RemainingBudget)
	if len(choices) == 0 {
		if len(e.enemies) == 0 {
			// Reinforcements: the budget ran dry before the kill target.
			e.run.RemainingBudget = e.run.SpawnBudget
			e.logger.Debug("reinforcements", "wave", e.run.Wave, "kills", e.run.WaveKills, "target", e.run.KillTarget)
		}
		return
	}
	spec := choices[e.rng.Intn(len(choices))]
	e.run.RemainingBudget -= spec.Cost
	pos := core.V(core.RandRange(e.rng, spawnMargin, core.PlayfieldW-spawnMargin), spawnY)
	e.spawnEnemy(spec, pos, e.rollElite())
}

func (e *Engine) rollElite() bool {
	ec := e.cfg.Enemies
	chance := math.Min(ec.EliteChanceMax, ec.EliteChancePerWave*float64(e.run.Wave-1))
	return chance > 0 && e.rng.Float64() < chance
}

func (e *Engine) spawnEnemy(spec catalog.EnemySpec, pos core.Vec2, elite bool) {
	e.nextID++
	en := Enemy{
		ID:     e.nextID,
		Kind:   spec.Kind,
		Pos:    pos,
		Radius: spec.Radius,
		HP:     spec.HP,
		Speed:  spec.Speed,
		Score:  spec.Score,
		Elite:  elite,
		Phase:  e.rng.Float64() * 2 * math.Pi,
		Color:  spec.Color,
	}
	if elite {
		en.HP *= 1.5
		en.Radius *= 1.15
		en.Speed *= 1.15
	}
	en.MaxHP = en.HP
	en.Vel = core.V(0, en.Speed)
	switch spec.Kind {
	case catalog.Dasher:
		en.AITimer = core.RandRange(e.rng, 1.2, 2.0)
	case catalog.Shooter:
		en.FireCooldown = core.RandRange(e.rng, 0.7, 1.7)
	}
	e.enemies = append(e.enemies, en)
}

func (e *Engine) updateEnemies(dt float64) {
	for i := range e.enemies {
		en := &e.enemies[i]
		en.Age += dt
		e.steer(en, dt)
		en.Pos = en.Pos.Add(en.Vel.Scale(dt))
		en.Pos.X = core.ClampF(en.Pos.X, en.Radius, core.PlayfieldW-en.Radius)
		if en.Pos.Y > core.PlayfieldH+enemyExitPad {
			en.dead = true
		}
	}
	e.compactEnemies()
}

// steer applies the per-archetype movement rule.
func (e *Engine) steer(en *Enemy, dt float64) {
	switch en.Kind {
	case catalog.Zigzagger:
		en.Vel = core.V(math.Sin(en.Age*3+en.Phase)*en.Speed*1.3, en.Speed)
	case catalog.Dasher:
		if en.DashTimer > 0 {
			en.DashTimer -= dt
			break
		}
		en.AITimer -= dt
		if en.AITimer <= 0 {
			en.AITimer = core.RandRange(e.rng, 1.2, 2.0)
			en.DashTimer = dashWindow
			dir := core.Normalize(e.player.Pos.Sub(en.Pos))
			en.Vel = dir.Scale(en.Speed * dashMultiplier)
			break
		}
		en.Vel.X *= 1 - math.Min(1, 2.5*dt)
		en.Vel.Y = en.Speed * 0.6
	case catalog.Shooter:
		if en.Pos.Y < shooterDepth {
			en.Vel = core.V(0, en.Speed)
		} else {
			en.Vel = core.V(0, en.Speed*0.08)
		}
		en.FireCooldown -= dt
		if en.FireCooldown <= 0 {
			en.FireCooldown = core.RandRange(e.rng, 1.2, 2.4)
			e.fireAimed(en.Pos)
		}
	case catalog.SplitDrone:
		en.Vel.X *= 1 - math.Min(1, 1.5*dt)
		en.Vel.Y = en.Speed
	default:
		en.Vel = core.V(0, en.Speed)
	}
}

func (e *Engine) fireAimed(from core.Vec2) {
	ec := e.cfg.Enemies
	dir := core.Normalize(e.player.Pos.Sub(from))
	e.bullets = append(e.bullets, Bullet{
		Pos:    from,
		Vel:    dir.Scale(ec.BulletSpeed),
		Radius: ec.BulletRadius,
		TTL:    ec.BulletTTL,
		Damage: ec.BulletDamage,
	})
}

// splitDrones spawns the two drones a splitter leaves behind.
func (e *Engine) splitDrones(at core.Vec2) []Enemy {
	spec := catalog.Enemy(catalog.SplitDrone)
	out := make([]Enemy, 0, 2)
	for _, side := range []float64{-1, 1} {
		e.nextID++
		out = append(out, Enemy{
			ID:     e.nextID,
			Kind:   catalog.SplitDrone,
			Pos:    core.V(at.X+side*spec.Radius, at.Y),
			Vel:    core.V(side*splitImpulse, spec.Speed),
			Radius: spec.Radius,
			HP:     spec.HP,
			MaxHP:  spec.HP,
			Speed:  spec.Speed,
			Score:  spec.Score,
			Color:  spec.Color,
		})
	}
	return out
}

func (e *Engine) updateBullets(dt float64) {
	for i := range e.bullets {
		b := &e.bullets[i]
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.TTL -= dt
		if b.TTL <= 0 || b.Pos.X < -bulletBounds || b.Pos.X > core.PlayfieldW+bulletBounds ||
			b.Pos.Y < -bulletBounds || b.Pos.Y > core.PlayfieldH+bulletBounds {
			b.dead = true
		}
	}
	e.compactBullets()
}

func (e *Engine) updatePickups(dt float64) {
	pc := e.cfg.Pickups
	for i := range e.pickups {
		pk := &e.pickups[i]
		if core.Distance(pk.Pos, e.player.Pos) < e.player.Magnet {
			dir := core.Normalize(e.player.Pos.Sub(pk.Pos))
			pk.Pos = pk.Pos.Add(dir.Scale(pc.MagnetSpeed * dt))
		} else {
			pk.Pos.Y += pk.Fall * dt
		}
		if pk.Pos.Y > core.PlayfieldH+pickupExitPad {
			pk.dead = true
		}
	}
	e.compactPickups()
}

func (e *Engine) dropPickup(at core.Vec2, elite bool) {
	if !elite && e.rng.Float64() >= e.cfg.Enemies.DropChance {
		return
	}
	kind := PickupHealth
	if e.rng.Float64() < 0.5 {
		kind = PickupShield
	}
	e.pickups = append(e.pickups, Pickup{
		Pos:    at,
		Radius: e.cfg.Pickups.Radius,
		Fall:   e.cfg.Pickups.FallSpeed,
		Kind:   kind,
	})
}

func (e *Engine) compactBullets() {
	n := 0
	for _, b := range e.bullets {
		if !b.dead {
			e.bullets[n] = b
			n++
		}
	}
	e.bullets = e.bullets[:n]
}

func (e *Engine) compactEnemies() {
	n := 0
	for _, en := range e.enemies {
		if !en.dead {
			e.enemies[n] = en
			n++
		}
	}
	e.enemies = e.enemies[:n]
}

func (e *Engine) compactPickups() {
	n := 0
	for _, pk := range e.pickups {
		if !pk.dead {
			e.pickups[n] = pk
			n++
		}
	}
	e.pickups = e.pickups[:n]
}

package engine

import (
	"math"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

// pickupReach is added to a pickup's radius when testing collection.
const pickupReach = 18.0

// resolveCollisions runs once per gameplay tick after movement. Removals are
// marked and compacted at the end; drones from splitters join the live set
// only after the pass.
func (e *Engine) resolveCollisions() {
	var spawned []Enemy

	for i := range e.bullets {
		// A run that just ended keeps the score it was recorded with.
		if e.mode == ModeGameOver {
			break
		}
		b := &e.bullets[i]
		if b.dead {
			continue
		}
		if !b.FromPlayer {
			if core.Distance(b.Pos, e.player.Pos) < e.cfg.Player.HitRadius+b.Radius {
				b.dead = true
				e.damagePlayer(b.Damage)
			}
			continue
		}

		if victim := e.bulletVictim(b); victim != nil {
			spawned = append(spawned, e.hitEnemy(b, victim)...)
			continue
		}

		if e.bossAlive() && e.mode != ModeWarning &&
			core.Distance(b.Pos, e.boss.Pos) < b.Radius+e.boss.Radius {
			b.dead = true
			dmg, crit := e.rollDamage(b)
			e.hitBoss(dmg, crit, b.Pos)
		}
	}

	pad := e.cfg.Enemies.ContactPadding
	for i := range e.enemies {
		en := &e.enemies[i]
		if en.dead {
			continue
		}
		if core.Distance(en.Pos, e.player.Pos) < en.Radius+pad {
			en.dead = true
			e.explodeAt(en.Pos, core.ColorRed, 18)
			e.damagePlayer(e.cfg.Enemies.ContactDamage)
		}
	}

	if e.bossAlive() && e.mode != ModeWarning &&
		core.Distance(e.boss.Pos, e.player.Pos) < e.boss.Radius+pad {
		e.damagePlayer(e.cfg.Boss.ContactDamage)
	}

	for i := range e.pickups {
		if e.mode == ModeGameOver {
			break
		}
		pk := &e.pickups[i]
		if core.Distance(pk.Pos, e.player.Pos) < pk.Radius+pickupReach {
			pk.dead = true
			e.heal(pk.Kind)
			e.audio.Pickup()
		}
	}

	e.compactBullets()
	e.compactEnemies()
	e.compactPickups()
	e.enemies = append(e.enemies, spawned...)
}

// bulletVictim returns the first live enemy overlapping b that b has not
// damaged before.
func (e *Engine) bulletVictim(b *Bullet) *Enemy {
	for j := range e.enemies {
		en := &e.enemies[j]
		if en.dead || b.hasHit(en.ID) {
			continue
		}
		if core.Distance(b.Pos, en.Pos) < b.Radius+en.Radius {
			return en
		}
	}
	return nil
}

// rollDamage rolls a crit for one hit of b. Crits deal double damage.
func (e *Engine) rollDamage(b *Bullet) (float64, bool) {
	if b.CritChance > 0 && e.rng.Float64() < b.CritChance {
		return b.Damage * 2, true
	}
	return b.Damage, false
}

// hitEnemy applies b to en and returns any drones the hit releases.
func (e *Engine) hitEnemy(b *Bullet, en *Enemy) []Enemy {
	dmg, crit := e.rollDamage(b)
	en.HP -= dmg
	e.addNumber(en.Pos, dmg, crit)
	e.burst(b.Pos, core.ColorBrightYellow, 8, 30, 200)

	if b.Pierce > 0 {
		b.Pierce--
		b.Hits = append(b.Hits, en.ID)
	} else {
		b.dead = true
	}

	if en.HP > 0 {
		return nil
	}
	en.dead = true
	return e.killEnemy(en)
}

func (e *Engine) killEnemy(en *Enemy) []Enemy {
	sc := e.cfg.Scoring
	e.run.WaveKills++
	e.run.TotalKills++
	e.run.Combo = math.Min(sc.ComboMax, e.run.Combo+sc.ComboStep)
	e.run.ComboTimer = sc.ComboWindow

	mult := 1.0
	if en.Elite {
		mult = e.cfg.Enemies.EliteScoreMultiplier
	}
	e.run.Score += int(math.Floor(float64(en.Score) * e.run.Combo * mult))

	e.audio.Explosion()
	e.explodeAt(en.Pos, en.Color, 26)
	e.dropPickup(en.Pos, en.Elite)

	if en.Kind == catalog.Splitter {
		return e.splitDrones(en.Pos)
	}
	return nil
}

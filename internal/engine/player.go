package engine

import (
	"math"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

func (e *Engine) updatePlayer(dt, raw float64) {
	p := &e.player
	pc := e.cfg.Player
	moveMul := 1 + e.bonus(catalog.MoveSpeed)

	axis := e.input.MovementAxis()
	p.Vel = p.Vel.Add(axis.Scale(pc.Accel * moveMul * dt))
	p.Vel = p.Vel.Scale(pc.Damping)

	if e.upgrades[catalog.Dash] > 0 && p.DashCooldown <= 0 && e.input.IsPressed(core.KeyDash) {
		dir := axis
		if dir.IsZero() {
			dir = core.V(0, -1)
		}
		p.Vel = core.Normalize(dir).Scale(pc.DashSpeed)
		p.Invuln = pc.DashInvuln
		p.DashCooldown = pc.DashCooldown
		e.burst(p.Pos, core.ColorBrightCyan, 16, 60, 260)
	}

	limit := pc.MaxSpeed * moveMul
	if p.Invuln > 0 {
		limit = math.Max(limit, pc.DashSpeed)
	}
	p.Vel = core.ClampLen(p.Vel, limit)

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Pos.X = core.ClampF(p.Pos.X, p.W/2, core.PlayfieldW-p.W/2)
	p.Pos.Y = core.ClampF(p.Pos.Y, p.H/2, core.PlayfieldH-p.H/2)

	p.Invuln = math.Max(0, p.Invuln-raw)
	p.DashCooldown = math.Max(0, p.DashCooldown-raw)
	p.HitFlash = math.Max(0, p.HitFlash-raw*5)
	regen := p.ShieldRegen * (1 + e.bonus(catalog.ShieldRegen))
	p.Shield = core.ClampF(p.Shield+regen*raw, 0, p.MaxShield)
	p.HP = core.ClampF(p.HP, 0, p.MaxHP)
	p.Magnet = pc.MagnetRadius * (1 + e.bonus(catalog.Magnet))

	e.spawnThruster(dt)

	if p.FireCooldown > 0 {
		p.FireCooldown -= dt
	}
	if e.input.IsShooting() && p.FireCooldown <= 0 {
		e.firePlayer()
		p.FireCooldown = e.cfg.Weapon.FireCooldown / (1 + e.bonus(catalog.FireRate))
	}
}

// firePlayer emits a symmetric fan of 1+extraProjectile bullets.
func (e *Engine) firePlayer() {
	p := &e.player
	wc := e.cfg.Weapon
	n := 1 + e.upgrades[catalog.ExtraProjectile]
	speed := wc.BulletSpeed * (1 + e.bonus(catalog.ProjectileSpeed))
	damage := wc.BulletDamage * (1 + e.bonus(catalog.Damage))
	critChance := math.Min(1, e.bonus(catalog.CritChance))
	origin := core.V(p.Pos.X, p.Pos.Y-p.H/2)

	for i := 0; i < n; i++ {
		a := (float64(i) - float64(n-1)/2) * wc.Spread
		e.bullets = append(e.bullets, Bullet{
			Pos:        origin,
			Vel:        core.V(math.Sin(a), -math.Cos(a)).Scale(speed),
			Radius:     wc.BulletRadius,
			TTL:        wc.BulletTTL,
			Damage:     damage,
			FromPlayer: true,
			Pierce:     e.upgrades[catalog.Pierce],
			CritChance: critChance,
		})
	}
	e.audio.Shoot()
}

// heal adds hp or shield, clamped to the current ceiling.
func (e *Engine) heal(kind PickupKind) {
	p := &e.player
	pc := e.cfg.Pickups
	switch kind {
	case PickupHealth:
		p.HP = core.ClampF(p.HP+pc.HealthAmount, 0, p.MaxHP)
	case PickupShield:
		p.Shield = core.ClampF(p.Shield+pc.ShieldAmount, 0, p.MaxShield)
	}
}

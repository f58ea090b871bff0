package engine

import (
	"math"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// Cosmetics draw from e.fx so they never perturb gameplay randomness.

func (e *Engine) createStars() []Star {
	n := e.cfg.Effects.Stars
	stars := make([]Star, 0, n)
	for i := 0; i < n; i++ {
		layer := 1
		switch {
		case i%3 == 0:
			layer = 3
		case i%2 == 0:
			layer = 2
		}
		stars = append(stars, Star{
			Pos:   core.V(core.RandRange(e.fx, 0, core.PlayfieldW), core.RandRange(e.fx, 0, core.PlayfieldH)),
			Size:  []float64{1, 1.5, 2}[layer-1],
			Speed: float64(layer) * 30,
			Layer: layer,
		})
	}
	return stars
}

// updateCosmetics runs in every mode on the real delta.
func (e *Engine) updateCosmetics(raw float64) {
	for i := range e.stars {
		s := &e.stars[i]
		s.Pos.Y += s.Speed * raw
		if s.Pos.Y > core.PlayfieldH {
			s.Pos = core.V(core.RandRange(e.fx, 0, core.PlayfieldW), -2)
		}
	}

	n := 0
	for _, p := range e.particles {
		p.Life -= raw
		if p.Life <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(raw))
		p.Vel = p.Vel.Scale(0.97)
		e.particles[n] = p
		n++
	}
	e.particles = e.particles[:n]

	n = 0
	for _, d := range e.numbers {
		d.Life -= raw
		if d.Life <= 0 {
			continue
		}
		d.Pos = d.Pos.Add(d.Vel.Scale(raw))
		e.numbers[n] = d
		n++
	}
	e.numbers = e.numbers[:n]

	e.shakeOffset = core.Vec2{}
	if e.run.Shake > 0 {
		if e.settings.Screenshake {
			s := e.run.Shake
			e.shakeOffset = core.V(core.RandRange(e.fx, -s, s), core.RandRange(e.fx, -s, s))
		}
		e.run.Shake *= e.cfg.Effects.ShakeDecay
		if e.run.Shake < 0.1 {
			e.run.Shake = 0
		}
	}
}

func (e *Engine) addParticle(p Particle) {
	if len(e.particles) >= e.cfg.Effects.MaxParticles {
		return
	}
	e.particles = append(e.particles, p)
}

// burst scatters count sparks from pos with speeds in [minSpeed, maxSpeed).
func (e *Engine) burst(pos core.Vec2, c core.Color, count int, minSpeed, maxSpeed float64) {
	for i := 0; i < count; i++ {
		a := e.fx.Float64() * 2 * math.Pi
		speed := core.RandRange(e.fx, minSpeed, maxSpeed)
		e.addParticle(Particle{
			Pos:     pos,
			Vel:     core.V(math.Cos(a), math.Sin(a)).Scale(speed),
			Life:    core.RandRange(e.fx, 0.15, 0.8),
			MaxLife: 0.8,
			Size:    core.RandRange(e.fx, 1, 3.4),
			Color:   c,
		})
	}
}

func (e *Engine) explodeAt(pos core.Vec2, c core.Color, count int) {
	e.burst(pos, c, count, 30, 240)
}

func (e *Engine) spawnThruster(dt float64) {
	p := &e.player
	if math.Abs(p.Vel.X)+math.Abs(p.Vel.Y) < 20 {
		return
	}
	if e.fx.Float64() > dt*45 {
		return
	}
	e.addParticle(Particle{
		Pos:     core.V(p.Pos.X, p.Pos.Y+p.H*0.4),
		Vel:     core.V(core.RandRange(e.fx, -16, 16), core.RandRange(e.fx, 90, 170)),
		Life:    core.RandRange(e.fx, 0.1, 0.26),
		MaxLife: 0.26,
		Size:    core.RandRange(e.fx, 1, 2.2),
		Color:   core.ColorCyan,
	})
}

func (e *Engine) addNumber(pos core.Vec2, damage float64, crit bool) {
	e.numbers = append(e.numbers, DamageNumber{
		Pos:     core.V(pos.X+core.RandRange(e.fx, -8, 8), pos.Y-10),
		Vel:     core.V(0, -60),
		Life:    0.7,
		MaxLife: 0.7,
		Value:   int(math.Round(damage)),
		Crit:    crit,
	})
}

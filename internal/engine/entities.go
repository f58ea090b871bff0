package engine

import (
	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

// Mode is the top-level state of the game.
type Mode string

const (
	ModeMenu     Mode = "menu"
	ModeSettings Mode = "settings"
	ModePlaying  Mode = "playing"
	ModePaused   Mode = "paused"
	ModeGameOver Mode = "gameOver"
	ModeWarning  Mode = "warning"
	ModeUpgrade  Mode = "upgrade"
)

// Player is the ship. 0 <= HP <= MaxHP and 0 <= Shield <= MaxShield after
// every Update.
type Player struct {
	Pos, Vel     core.Vec2
	W, H         float64
	HP, MaxHP    float64
	Shield       float64
	MaxShield    float64
	ShieldRegen  float64 // base rate before upgrades
	HitFlash     float64
	Magnet       float64 // current pickup radius
	Invuln       float64
	DashCooldown float64
	FireCooldown float64
}

// Bullet is a projectile from either side.
type Bullet struct {
	Pos, Vel   core.Vec2
	Radius     float64
	TTL        float64
	Damage     float64
	FromPlayer bool
	Pierce     int
	CritChance float64
	Hits       []int // ids of enemies already damaged

	dead bool
}

// hasHit reports whether the bullet already damaged enemy id.
func (b *Bullet) hasHit(id int) bool {
	for _, h := range b.Hits {
		if h == id {
			return true
		}
	}
	return false
}

// Enemy is a live hostile ship.
type Enemy struct {
	ID           int
	Kind         catalog.Kind
	Pos, Vel     core.Vec2
	Radius       float64
	HP, MaxHP    float64
	Speed        float64
	FireCooldown float64
	Score        int
	Elite        bool
	Age          float64
	AITimer      float64
	DashTimer    float64
	Phase        float64
	Color        core.Color

	dead bool
}

// Boss is the wave boss. It stays in place after death with Alive false.
type Boss struct {
	Pos, Vel     core.Vec2
	Radius       float64
	HP, MaxHP    float64
	FireCooldown float64
	PatternTimer float64
	Phase        int
	Alive        bool
}

// PickupKind selects what a pickup restores.
type PickupKind int

const (
	PickupHealth PickupKind = iota
	PickupShield
)

// Pickup is a falling health or shield capsule.
type Pickup struct {
	Pos    core.Vec2
	Radius float64
	Fall   float64
	Kind   PickupKind

	dead bool
}

// Particle is a cosmetic spark.
type Particle struct {
	Pos, Vel core.Vec2
	Life     float64
	MaxLife  float64
	Size     float64
	Color    core.Color
}

// DamageNumber floats up from a hit.
type DamageNumber struct {
	Pos, Vel core.Vec2
	Life     float64
	MaxLife  float64
	Value    int
	Crit     bool
}

// Star is a background star on one of three parallax layers.
type Star struct {
	Pos   core.Vec2
	Speed float64
	Size  float64
	Layer int
}

// RunState is everything a run resets.
type RunState struct {
	Wave            int
	KillTarget      int
	WaveKills       int
	SpawnBudget     int
	RemainingBudget int
	SpawnTimer      float64
	Score           int
	Combo           float64
	ComboTimer      float64
	Shake           float64
	WarningTimer    float64
	SlowmoTimer     float64
	Elapsed         float64
	TotalKills      int
	BossKills       int
}

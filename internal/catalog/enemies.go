// Package catalog holds the static tables the engine draws from: enemy
// archetypes and the upgrade pool. Everything here is immutable.
package catalog

import "github.com/vovakirdan/nebula-defender/internal/core"

// Kind is an enemy archetype.
type Kind int

const (
	Drifter Kind = iota
	Zigzagger
	Tank
	Dasher
	Shooter
	Splitter
	SplitDrone
)

// String returns the archetype name.
func (k Kind) String() string {
	switch k {
	case Drifter:
		return "drifter"
	case Zigzagger:
		return "zigzagger"
	case Tank:
		return "tank"
	case Dasher:
		return "dasher"
	case Shooter:
		return "shooter"
	case Splitter:
		return "splitter"
	case SplitDrone:
		return "splitDrone"
	default:
		return "unknown"
	}
}

// EnemySpec describes one archetype. Split drones have UnlockWave 0 and are
// never picked by the spawner.
type EnemySpec struct {
	Kind       Kind
	UnlockWave int
	Cost       int
	HP         float64
	Speed      float64
	Radius     float64
	Score      int
	Color      core.Color
}

var enemySpecs = []EnemySpec{
	{Kind: Drifter, UnlockWave: 1, Cost: 1, HP: 2, Speed: 90, Radius: 13, Score: 100, Color: core.ColorRed},
	{Kind: Zigzagger, UnlockWave: 2, Cost: 2, HP: 3, Speed: 100, Radius: 13, Score: 130, Color: core.ColorMagenta},
	{Kind: Tank, UnlockWave: 4, Cost: 4, HP: 9, Speed: 62, Radius: 19, Score: 240, Color: core.ColorOrange},
	{Kind: Dasher, UnlockWave: 5, Cost: 3, HP: 4, Speed: 100, Radius: 14, Score: 180, Color: core.ColorBrightYellow},
	{Kind: Shooter, UnlockWave: 6, Cost: 4, HP: 5, Speed: 74, Radius: 15, Score: 210, Color: core.ColorBrightRed},
	{Kind: Splitter, UnlockWave: 8, Cost: 4, HP: 4, Speed: 95, Radius: 15, Score: 220, Color: core.ColorGreen},
}

var splitDroneSpec = EnemySpec{
	Kind: SplitDrone, HP: 1, Speed: 120, Radius: 9, Score: 60, Color: core.ColorBrightGreen,
}

// Enemies returns the spawnable archetypes in unlock order.
func Enemies() []EnemySpec {
	out := make([]EnemySpec, len(enemySpecs))
	copy(out, enemySpecs)
	return out
}

// Enemy returns the spec for kind.
func Enemy(kind Kind) EnemySpec {
	if kind == SplitDrone {
		return splitDroneSpec
	}
	for _, s := range enemySpecs {
		if s.Kind == kind {
			return s
		}
	}
	return enemySpecs[0]
}

// Spawnable returns the archetypes unlocked by wave whose cost fits budget.
func Spawnable(wave, budget int) []EnemySpec {
	var out []EnemySpec
	for _, s := range enemySpecs {
		if s.UnlockWave <= wave && s.Cost <= budget {
			out = append(out, s)
		}
	}
	return out
}

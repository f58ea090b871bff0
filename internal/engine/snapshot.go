package engine

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/nebula-defender/internal/catalog"
	"github.com/vovakirdan/nebula-defender/internal/core"
)

// UpgradeOption is one card of the upgrade screen.
type UpgradeOption struct {
	ID          catalog.UpgradeID
	Key         string
	Name        string
	Description string
	Icon        string
	Stacks      int // stacks owned before choosing
}

// BossInfo describes the boss, if one has been spawned this run.
type BossInfo struct {
	Present bool
	Alive   bool
	HP      float64
	MaxHP   float64
	Phase   int
	Pos     core.Vec2
}

// Snapshot is a read-only view of the engine for overlays, drivers and tests.
type Snapshot struct {
	Mode         Mode
	Score        int
	HighScore    int
	Wave         int
	WaveKills    int
	KillTarget   int
	TotalKills   int
	BossKills    int
	HP, MaxHP    float64
	Shield       float64
	MaxShield    float64
	Combo        float64
	PlayerPos    core.Vec2
	Upgrades     [catalog.NumUpgrades]int
	Options      []UpgradeOption
	Boss         BossInfo
	Enemies      int
	Bullets      int
	Pickups      int
	Particles    int
	WarningTimer float64
	Elapsed      float64
	Settings     core.Settings
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         e.mode,
		Score:        e.run.Score,
		HighScore:    e.highScore,
		Wave:         e.run.Wave,
		WaveKills:    e.run.WaveKills,
		KillTarget:   e.run.KillTarget,
		TotalKills:   e.run.TotalKills,
		BossKills:    e.run.BossKills,
		HP:           e.player.HP,
		MaxHP:        e.player.MaxHP,
		Shield:       e.player.Shield,
		MaxShield:    e.player.MaxShield,
		Combo:        e.run.Combo,
		PlayerPos:    e.player.Pos,
		Upgrades:     e.upgrades,
		Enemies:      len(e.enemies),
		Bullets:      len(e.bullets),
		Pickups:      len(e.pickups),
		Particles:    len(e.particles),
		WarningTimer: e.run.WarningTimer,
		Elapsed:      e.run.Elapsed,
		Settings:     e.settings,
	}
	for _, id := range e.options {
		u, _ := catalog.Lookup(id)
		s.Options = append(s.Options, UpgradeOption{
			ID:          id,
			Key:         u.Key,
			Name:        u.Name,
			Description: u.Description,
			Icon:        u.Icon,
			Stacks:      e.upgrades[id],
		})
	}
	if e.boss != nil {
		s.Boss = BossInfo{
			Present: true,
			Alive:   e.boss.Alive,
			HP:      e.boss.HP,
			MaxHP:   e.boss.MaxHP,
			Phase:   e.boss.Phase,
			Pos:     e.boss.Pos,
		}
	}
	return s
}

// Hash fingerprints the gameplay fields. Cosmetic counts are left out.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%d|%d|%d|%d|%d|%d|%d|", s.Mode, s.Score, s.HighScore, s.Wave, s.WaveKills, s.KillTarget, s.TotalKills, s.BossKills)
	fmt.Fprintf(h, "%g|%g|%g|%g|%g|%g|%g|", s.HP, s.MaxHP, s.Shield, s.MaxShield, s.Combo, s.PlayerPos.X, s.PlayerPos.Y)
	fmt.Fprintf(h, "%v|%d|%d|%d|%+v|", s.Upgrades, s.Enemies, s.Bullets, s.Pickups, s.Boss)
	for _, o := range s.Options {
		fmt.Fprintf(h, "%d,", o.ID)
	}
	return h.Sum64()
}

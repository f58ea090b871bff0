// Package config provides YAML-based tuning for the shooter: loading with a
// fallback chain, validation, and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable constant of the simulation.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Weapon  WeaponConfig  `yaml:"weapon"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Waves   WaveConfig    `yaml:"waves"`
	Boss    BossConfig    `yaml:"boss"`
	Scoring ScoringConfig `yaml:"scoring"`
	Pickups PickupConfig  `yaml:"pickups"`
	Timing  TimingConfig  `yaml:"timing"`
	Effects EffectsConfig `yaml:"effects"`
}

// PlayerConfig defines the ship's movement and survivability.
type PlayerConfig struct {
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnY        float64 `yaml:"spawn_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Accel         float64 `yaml:"accel"`
	Damping       float64 `yaml:"damping"` // velocity multiplier per tick
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxHP         float64 `yaml:"max_hp"`
	MaxShield     float64 `yaml:"max_shield"`
	InitialShield float64 `yaml:"initial_shield"`
	ShieldRegen   float64 `yaml:"shield_regen"` // shield per second
	MagnetRadius  float64 `yaml:"magnet_radius"`
	HitRadius     float64 `yaml:"hit_radius"`
	DashSpeed     float64 `yaml:"dash_speed"`
	DashCooldown  float64 `yaml:"dash_cooldown"`
	DashInvuln    float64 `yaml:"dash_invuln"`
}

// WeaponConfig defines the player's base gun before upgrades.
type WeaponConfig struct {
	FireCooldown float64 `yaml:"fire_cooldown"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRadius float64 `yaml:"bullet_radius"`
	BulletTTL    float64 `yaml:"bullet_ttl"`
	BulletDamage float64 `yaml:"bullet_damage"`
	Spread       float64 `yaml:"spread"` // radians between fan neighbours
}

// EnemyConfig defines enemy fire, contact and drop parameters.
type EnemyConfig struct {
	BulletSpeed          float64 `yaml:"bullet_speed"`
	BulletRadius         float64 `yaml:"bullet_radius"`
	BulletTTL            float64 `yaml:"bullet_ttl"`
	BulletDamage         float64 `yaml:"bullet_damage"`
	ContactDamage        float64 `yaml:"contact_damage"`
	ContactPadding       float64 `yaml:"contact_padding"`
	DropChance           float64 `yaml:"drop_chance"`
	EliteChancePerWave   float64 `yaml:"elite_chance_per_wave"`
	EliteChanceMax       float64 `yaml:"elite_chance_max"`
	EliteScoreMultiplier float64 `yaml:"elite_score_multiplier"`
}

// WaveConfig defines kill targets, spawn budgets and pacing.
type WaveConfig struct {
	InitialKillTarget int     `yaml:"initial_kill_target"`
	KillTargetStep    int     `yaml:"kill_target_step"`
	KillTargetCap     int     `yaml:"kill_target_cap"`
	BaseBudget        int     `yaml:"base_budget"`
	BudgetPerWave     int     `yaml:"budget_per_wave"`
	SpawnInterval     float64 `yaml:"spawn_interval"`
	SpawnIntervalMin  float64 `yaml:"spawn_interval_min"`
	FirstSpawnDelay   float64 `yaml:"first_spawn_delay"`
	BossEvery         int     `yaml:"boss_every"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	BaseHP        float64    `yaml:"base_hp"`
	HPPerWave     float64    `yaml:"hp_per_wave"`
	Radius        float64    `yaml:"radius"`
	ContactDamage float64    `yaml:"contact_damage"`
	KillScore     int        `yaml:"kill_score"`
	HitScore      int        `yaml:"hit_score"`
	FireCooldowns [3]float64 `yaml:"fire_cooldowns"` // per phase
}

// ScoringConfig defines the combo multiplier.
type ScoringConfig struct {
	ComboStep       float64 `yaml:"combo_step"`
	ComboMax        float64 `yaml:"combo_max"`
	ComboWindow     float64 `yaml:"combo_window"`
	BossComboWindow float64 `yaml:"boss_combo_window"`
}

// PickupConfig defines health and shield drops.
type PickupConfig struct {
	Radius       float64 `yaml:"radius"`
	FallSpeed    float64 `yaml:"fall_speed"`
	MagnetSpeed  float64 `yaml:"magnet_speed"`
	HealthAmount float64 `yaml:"health_amount"`
	ShieldAmount float64 `yaml:"shield_amount"`
}

// TimingConfig defines the clock: delta clamp and slow motion.
type TimingConfig struct {
	MaxDelta        float64 `yaml:"max_delta"`
	SlowMotionScale float64 `yaml:"slow_motion_scale"`
	WarningDuration float64 `yaml:"warning_duration"`
}

// EffectsConfig defines cosmetic limits.
type EffectsConfig struct {
	ShakePerHit  float64 `yaml:"shake_per_hit"`
	ShakeCap     float64 `yaml:"shake_cap"`
	ShakeDecay   float64 `yaml:"shake_decay"` // multiplier per tick
	MaxParticles int     `yaml:"max_particles"`
	Stars        int     `yaml:"stars"`
}

// Hard limits every tuning file must respect.
const (
	MinSpawnInterval = 0.2
	MaxCombo         = 8.0
	MaxFrameDelta    = 0.033
)

// IsZero reports whether cfg was never populated.
func (cfg Config) IsZero() bool {
	return cfg == Config{}
}

// Validate checks values the simulation divides by or depends on to
// terminate. It reports every problem, not just the first.
func (cfg Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.max_hp", cfg.Player.MaxHP)
	positive("player.max_speed", cfg.Player.MaxSpeed)
	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)
	positive("weapon.fire_cooldown", cfg.Weapon.FireCooldown)
	positive("weapon.bullet_speed", cfg.Weapon.BulletSpeed)
	positive("waves.spawn_interval_min", cfg.Waves.SpawnIntervalMin)
	positive("boss.base_hp", cfg.Boss.BaseHP)
	positive("scoring.combo_max", cfg.Scoring.ComboMax)
	positive("timing.max_delta", cfg.Timing.MaxDelta)
	positive("timing.slow_motion_scale", cfg.Timing.SlowMotionScale)

	if cfg.Player.Damping <= 0 || cfg.Player.Damping > 1 {
		errs = append(errs, fmt.Errorf("player.damping must be in (0, 1], got %v", cfg.Player.Damping))
	}
	if cfg.Player.InitialShield > cfg.Player.MaxShield {
		errs = append(errs, fmt.Errorf("player.initial_shield %v exceeds max_shield %v", cfg.Player.InitialShield, cfg.Player.MaxShield))
	}
	if cfg.Waves.InitialKillTarget <= 0 {
		errs = append(errs, fmt.Errorf("waves.initial_kill_target must be positive, got %d", cfg.Waves.InitialKillTarget))
	}
	if cfg.Waves.BaseBudget+cfg.Waves.BudgetPerWave <= 0 {
		errs = append(errs, errors.New("waves budget must allow at least one spawn"))
	}
	if cfg.Waves.BossEvery <= 0 {
		errs = append(errs, fmt.Errorf("waves.boss_every must be positive, got %d", cfg.Waves.BossEvery))
	}
	if cfg.Scoring.ComboMax < 1 || cfg.Scoring.ComboMax > MaxCombo {
		errs = append(errs, fmt.Errorf("scoring.combo_max must be in [1, %v], got %v", MaxCombo, cfg.Scoring.ComboMax))
	}
	if cfg.Waves.SpawnIntervalMin < MinSpawnInterval {
		errs = append(errs, fmt.Errorf("waves.spawn_interval_min must be at least %v, got %v", MinSpawnInterval, cfg.Waves.SpawnIntervalMin))
	}
	if cfg.Waves.SpawnInterval < cfg.Waves.SpawnIntervalMin {
		errs = append(errs, fmt.Errorf("waves.spawn_interval %v is below spawn_interval_min %v", cfg.Waves.SpawnInterval, cfg.Waves.SpawnIntervalMin))
	}
	if cfg.Timing.MaxDelta > MaxFrameDelta {
		errs = append(errs, fmt.Errorf("timing.max_delta must be at most %v, got %v", MaxFrameDelta, cfg.Timing.MaxDelta))
	}
	for i, cd := range cfg.Boss.FireCooldowns {
		if cd <= 0 {
			errs = append(errs, fmt.Errorf("boss.fire_cooldowns[%d] must be positive, got %v", i, cd))
		}
	}

	return errors.Join(errs...)
}

package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// presetScale holds the multipliers a preset applies on top of the file.
type presetScale struct {
	hp       float64 // player max hp and shield
	damage   float64 // damage taken from enemies and the boss
	interval float64 // spawn interval
	bossHP   float64
}

// scaleForPreset returns the multipliers for preset.
func scaleForPreset(preset DifficultyPreset) presetScale {
	switch preset {
	case DifficultyEasy:
		return presetScale{hp: 1.3, damage: 0.75, interval: 1.2, bossHP: 0.8}
	case DifficultyHard:
		return presetScale{hp: 0.8, damage: 1.3, interval: 0.8, bossHP: 1.25}
	default:
		return presetScale{hp: 1, damage: 1, interval: 1, bossHP: 1}
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the tuning untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyNormal || preset == "" {
		return
	}
	s := scaleForPreset(preset)

	cfg.Player.MaxHP = math.Round(cfg.Player.MaxHP * s.hp)
	cfg.Player.MaxShield = math.Round(cfg.Player.MaxShield * s.hp)
	cfg.Player.InitialShield = math.Min(math.Round(cfg.Player.InitialShield*s.hp), cfg.Player.MaxShield)

	cfg.Enemies.BulletDamage *= s.damage
	cfg.Enemies.ContactDamage *= s.damage
	cfg.Boss.ContactDamage *= s.damage

	cfg.Waves.SpawnInterval *= s.interval
	cfg.Waves.SpawnIntervalMin *= s.interval

	cfg.Boss.BaseHP = math.Round(cfg.Boss.BaseHP * s.bossHP)
	cfg.Boss.HPPerWave = math.Round(cfg.Boss.HPPerWave * s.bossHP)
}

package config

import (
	_ "embed"
)

//go:embed defaults/nebula.yaml
var defaultYAML []byte

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			SpawnX:        480,
			SpawnY:        460,
			Width:         42,
			Height:        28,
			Accel:         1750,
			Damping:       0.88,
			MaxSpeed:      440,
			MaxHP:         100,
			MaxShield:     60,
			InitialShield: 45,
			ShieldRegen:   4,
			MagnetRadius:  90,
			HitRadius:     16,
			DashSpeed:     900,
			DashCooldown:  1.1,
			DashInvuln:    0.25,
		},
		Weapon: WeaponConfig{
			FireCooldown: 0.11,
			BulletSpeed:  800,
			BulletRadius: 4,
			BulletTTL:    2,
			BulletDamage: 1,
			Spread:       0.12,
		},
		Enemies: EnemyConfig{
			BulletSpeed:          280,
			BulletRadius:         4,
			BulletTTL:            3,
			BulletDamage:         11,
			ContactDamage:        18,
			ContactPadding:       18,
			DropChance:           0.13,
			EliteChancePerWave:   0.025,
			EliteChanceMax:       0.3,
			EliteScoreMultiplier: 2,
		},
		Waves: WaveConfig{
			InitialKillTarget: 7,
			KillTargetStep:    2,
			KillTargetCap:     22,
			BaseBudget:        8,
			BudgetPerWave:     4,
			SpawnInterval:     1.1,
			SpawnIntervalMin:  0.25,
			FirstSpawnDelay:   1,
			BossEvery:         5,
		},
		Boss: BossConfig{
			BaseHP:        180,
			HPPerWave:     22,
			Radius:        45,
			ContactDamage: 28,
			KillScore:     2500,
			HitScore:      6,
			FireCooldowns: [3]float64{1.1, 0.8, 0.55},
		},
		Scoring: ScoringConfig{
			ComboStep:       0.2,
			ComboMax:        8,
			ComboWindow:     2.5,
			BossComboWindow: 3,
		},
		Pickups: PickupConfig{
			Radius:       9,
			FallSpeed:    120,
			MagnetSpeed:  260,
			HealthAmount: 25,
			ShieldAmount: 30,
		},
		Timing: TimingConfig{
			MaxDelta:        0.033,
			SlowMotionScale: 0.35,
			WarningDuration: 2.2,
		},
		Effects: EffectsConfig{
			ShakePerHit:  7,
			ShakeCap:     18,
			ShakeDecay:   0.85,
			MaxParticles: 600,
			Stars:        110,
		},
	}
}

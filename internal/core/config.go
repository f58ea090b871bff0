package core

import "time"

// RuntimeConfig contains the parameters a driver needs to host the engine.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal drivers)
	ScreenH  int   // Screen height in characters (terminal drivers)
	TickRate int   // Frames per second driving Update/Render
	Seed     int64 // RNG seed for gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  96,
		ScreenH:  27,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Settings are the user preferences persisted between sessions.
type Settings struct {
	SoundEnabled bool `yaml:"soundEnabled"`
	Screenshake  bool `yaml:"screenshake"`
}

// DefaultSettings returns sound and screenshake enabled.
func DefaultSettings() Settings {
	return Settings{SoundEnabled: true, Screenshake: true}
}

// RunSummary describes a finished run for the run history.
type RunSummary struct {
	Score     int
	Wave      int
	Kills     int
	BossKills int
	Duration  time.Duration
}

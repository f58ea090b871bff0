package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "nebula.yaml"

// Load loads the tuning file.
// Search order: customPath -> ~/.nebula/configs/nebula.yaml -> ./configs/nebula.yaml -> embedded default
//
// Files are decoded over Default(), so a partial file only overrides the keys
// it names. Only an explicit customPath produces read or parse errors; the
// implicit locations are skipped when missing or malformed.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadPreset loads the tuning file and applies a difficulty preset to it.
func LoadPreset(customPath, preset string) (Config, error) {
	p, err := ParsePreset(preset)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Load(customPath)
	if err != nil {
		return Config{}, err
	}
	ApplyPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid tuning: %w", err)
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nebula", "configs", filename)
}

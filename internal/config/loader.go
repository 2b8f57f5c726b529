package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SnowballFile is the file name looked up in the config directories.
const SnowballFile = "snowball.yaml"

// LoadSnowball loads Snowball Descent configuration.
// Search order: customPath -> ~/.arcade/configs/snowball.yaml -> ./configs/snowball.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. Values are taken as given; out-of-range numbers are not rejected.
func LoadSnowball(customPath string) (SnowballConfig, error) {
	cfg := DefaultSnowballConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(SnowballFile); userCfgPath != "" {
		if c, ok := decodeFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := decodeFile(filepath.Join("configs", SnowballFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnowballYAML, &cfg); err != nil {
		return DefaultSnowballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads path over the defaults. Missing or malformed files are
// skipped so the next location in the search order is tried.
func decodeFile(path string) (SnowballConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnowballConfig{}, false
	}
	cfg := DefaultSnowballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnowballConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySnowballPreset modifies the config based on a difficulty preset.
func ApplySnowballPreset(cfg *SnowballConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust handling based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.InvincibilityMS = 1500
		cfg.Player.ShrinkFactor = 1.0
	case DifficultyHard:
		cfg.Player.InvincibilityMS = 600
		cfg.Player.ShrinkFactor = 2.0
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultSnowballConfig()
	if err := yaml.Unmarshal(defaultSnowballYAML, &cfg); err != nil {
		t.Fatalf("embedded snowball.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnowballConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnowballConfig())
	}
}

func TestLoadSnowballCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.5\nspawn:\n  obstacle_types:\n    - name: ice\n      base_size: 12\n      damage: 1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnowball(path)
	if err != nil {
		t.Fatalf("LoadSnowball() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.Friction != DefaultSnowballConfig().Physics.Friction {
		t.Errorf("Friction = %v, expected the default to survive", cfg.Physics.Friction)
	}
	if len(cfg.Spawn.ObstacleTypes) != 1 || cfg.Spawn.ObstacleTypes[0].Name != "ice" {
		t.Errorf("ObstacleTypes = %+v, expected the file's list to replace the defaults", cfg.Spawn.ObstacleTypes)
	}
}

func TestLoadSnowballErrors(t *testing.T) {
	if _, err := LoadSnowball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadSnowball() with a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnowball(bad); err == nil {
		t.Error("LoadSnowball() with malformed YAML should fail")
	}
}

func TestLoadSnowballSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadSnowball("")
	if err != nil {
		t.Fatalf("LoadSnowball() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.2 {
		t.Errorf("Gravity = %v, expected embedded default 0.2", cfg.Physics.Gravity)
	}

	// Local configs directory
	writeConfig(t, filepath.Join(work, "configs"), "physics:\n  gravity: 0.3\n")
	if cfg, _ = LoadSnowball(""); cfg.Physics.Gravity != 0.3 {
		t.Errorf("Gravity = %v, expected local 0.3", cfg.Physics.Gravity)
	}

	// User directory wins over local
	writeConfig(t, filepath.Join(home, ".arcade", "configs"), "physics:\n  gravity: 0.4\n")
	if cfg, _ = LoadSnowball(""); cfg.Physics.Gravity != 0.4 {
		t.Errorf("Gravity = %v, expected user 0.4", cfg.Physics.Gravity)
	}

	// A broken user file falls through to the local one
	writeConfig(t, filepath.Join(home, ".arcade", "configs"), "physics: [")
	if cfg, _ = LoadSnowball(""); cfg.Physics.Gravity != 0.3 {
		t.Errorf("Gravity = %v, expected fallback to local 0.3", cfg.Physics.Gravity)
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SnowballFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestApplySnowballPreset(t *testing.T) {
	tests := []struct {
		name    string
		preset  DifficultyPreset
		enabled bool
		level   float64
		invinc  int
	}{
		{"easy", DifficultyEasy, true, 0.0, 1500},
		{"normal", DifficultyNormal, true, 0.3, 1000},
		{"hard", DifficultyHard, true, 0.7, 600},
		{"fixed", DifficultyFixed, false, 0.0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnowballConfig()
			ApplySnowballPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Player.InvincibilityMS != tt.invinc {
				t.Errorf("InvincibilityMS = %d, expected %d", cfg.Player.InvincibilityMS, tt.invinc)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParseDifficulty(s); err != nil || string(p) != s {
			t.Errorf("ParseDifficulty(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("ParseDifficulty(\"nightmare\") should fail")
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 2, SpacingReduction: 100},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		name     string
		ticks    int
		expected float64
	}{
		{"start", 0, 0.2},
		{"halfway", 50, 0.6},
		{"max", 100, 1.0},
		{"past max", 500, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Level(0, tt.ticks); !approx(got, tt.expected) {
				t.Errorf("Level(0, %d) = %v, expected %v", tt.ticks, got, tt.expected)
			}
		})
	}

	if got := d.Speed(0.5, 0, 100); !approx(got, 1.5) {
		t.Errorf("Speed() = %v, expected 1.5", got)
	}
	if got := d.Spacing(300, 150, 0, 100); !approx(got, 200) {
		t.Errorf("Spacing() = %v, expected 200", got)
	}
	if got := d.Spacing(200, 150, 0, 100); got != 150 {
		t.Errorf("Spacing() = %v, expected floor 150", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3 when disabled", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}

	d.SetEnabled(true)
	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("Level() = %v, expected clamped initial level 1", got)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// SnowballConfig contains all configuration for Snowball Descent.
// Distances are world units (the view is World.Width x World.Height) and
// rates are per base tick unless the field name says otherwise.
type SnowballConfig struct {
	World      SnowballWorld    `yaml:"world"`
	Physics    SnowballPhysics  `yaml:"physics"`
	Player     SnowballPlayer   `yaml:"player"`
	Scoring    SnowballScoring  `yaml:"scoring"`
	Spawn      SnowballSpawn    `yaml:"spawn"`
	Terrain    SnowballTerrain  `yaml:"terrain"`
	Effects    SnowballEffects  `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnowballWorld defines the simulated view and clock.
type SnowballWorld struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	TickRate   int     `yaml:"tick_rate"`    // Base ticks per second
	MaxDeltaMS int     `yaml:"max_delta_ms"` // Longest step simulated at once
}

// SnowballPhysics defines the forces acting on the snowball.
type SnowballPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	AirResistance    float64 `yaml:"air_resistance"`
	BounceEnergyLoss float64 `yaml:"bounce_energy_loss"` // 0 = perfectly elastic
	MaxVelocity      float64 `yaml:"max_velocity"`
	MinVelocity      float64 `yaml:"min_velocity"` // Minimum forward speed
	SlopeEffect      float64 `yaml:"slope_effect"`
}

// SnowballPlayer defines the snowball's size and handling.
type SnowballPlayer struct {
	InitialSize     float64 `yaml:"initial_size"`
	MinSize         float64 `yaml:"min_size"`
	MaxSize         float64 `yaml:"max_size"`
	GrowthFactor    float64 `yaml:"growth_factor"`
	ShrinkFactor    float64 `yaml:"shrink_factor"`
	SizeSmoothing   float64 `yaml:"size_smoothing"` // Fraction of the size gap closed per tick
	ControlSpeed    float64 `yaml:"control_speed"`
	SizeSpeedFactor float64 `yaml:"size_speed_factor"`
	JumpSpeed       float64 `yaml:"jump_speed"`
	InvincibilityMS int     `yaml:"invincibility_ms"`
	CameraLead      float64 `yaml:"camera_lead"`
}

// SnowballScoring defines how points are earned.
type SnowballScoring struct {
	BaseSnowValue  int     `yaml:"base_snow_value"`
	SizeMultiplier float64 `yaml:"size_multiplier"`
	ComboWindowMS  int     `yaml:"combo_window_ms"`
	ComboMax       int     `yaml:"combo_max"`
	DistanceStep   float64 `yaml:"distance_step"` // World units per distance point
	Milestones     []int   `yaml:"milestones"`
}

// ObstacleType describes one kind of obstacle.
type ObstacleType struct {
	Name     string  `yaml:"name"`
	BaseSize float64 `yaml:"base_size"`
	Damage   int     `yaml:"damage"`
	Color    string  `yaml:"color"`
	Glyph    string  `yaml:"glyph"`
}

// SnowballSpawn defines obstacle and snow patch placement.
type SnowballSpawn struct {
	ObstacleTypes       []ObstacleType `yaml:"obstacle_types"`
	MinObstacleDistance float64        `yaml:"min_obstacle_distance"`
	MaxObstacleDistance float64        `yaml:"max_obstacle_distance"`
	SizeVariance        float64        `yaml:"size_variance"`
	SnowDensity         int            `yaml:"snow_density"` // Snow patches kept ahead of the player
	SnowSize            float64        `yaml:"snow_size"`
}

// SnowballTerrain defines hill generation.
type SnowballTerrain struct {
	SegmentSize     float64 `yaml:"segment_size"`
	Baseline        float64 `yaml:"baseline"`
	MinHeight       float64 `yaml:"min_height"`
	MaxHeight       float64 `yaml:"max_height"`
	Amplitude       float64 `yaml:"amplitude"`
	Frequency       float64 `yaml:"frequency"`
	MinSlope        float64 `yaml:"min_slope"`
	MaxSlope        float64 `yaml:"max_slope"`
	GenerationAhead float64 `yaml:"generation_ahead"` // View widths generated ahead
	RetainBehind    float64 `yaml:"retain_behind"`    // View widths kept behind
}

// SnowballEffects defines particles and screen effects.
type SnowballEffects struct {
	ParticleLimit    int     `yaml:"particle_limit"`
	TrailInterval    int     `yaml:"trail_interval"`
	SnowfallRate     float64 `yaml:"snowfall_rate"`
	LandThreshold    float64 `yaml:"land_threshold"`
	CameraShakeTicks int     `yaml:"camera_shake_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to the forward speed floor at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // Obstacle spacing removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name from the command line.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

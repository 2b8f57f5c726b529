package config

import (
	_ "embed"
)

//go:embed defaults/snowball.yaml
var defaultSnowballYAML []byte

// DefaultSnowballConfig returns the default Snowball Descent configuration.
// It mirrors defaults/snowball.yaml and is used when the embedded file
// cannot be parsed.
func DefaultSnowballConfig() SnowballConfig {
	return SnowballConfig{
		World: SnowballWorld{
			Width:      800,
			Height:     480,
			TickRate:   60,
			MaxDeltaMS: 100,
		},
		Physics: SnowballPhysics{
			Gravity:          0.2,
			Friction:         0.02,
			AirResistance:    0.001,
			BounceEnergyLoss: 0.3,
			MaxVelocity:      12,
			MinVelocity:      0.5,
			SlopeEffect:      0.8,
		},
		Player: SnowballPlayer{
			InitialSize:     10,
			MinSize:         5,
			MaxSize:         100,
			GrowthFactor:    0.2,
			ShrinkFactor:    1.5,
			SizeSmoothing:   0.1,
			ControlSpeed:    0.3,
			SizeSpeedFactor: 0.01,
			JumpSpeed:       6,
			InvincibilityMS: 1000,
			CameraLead:      0.3,
		},
		Scoring: SnowballScoring{
			BaseSnowValue:  10,
			SizeMultiplier: 0.5,
			ComboWindowMS:  1000,
			ComboMax:       5,
			DistanceStep:   100,
			Milestones:     []int{500, 1000, 2500, 5000, 10000},
		},
		Spawn: SnowballSpawn{
			ObstacleTypes: []ObstacleType{
				{Name: "rock", BaseSize: 20, Damage: 2, Color: "gray", Glyph: "@"},
				{Name: "tree", BaseSize: 25, Damage: 3, Color: "green", Glyph: "^"},
				{Name: "house", BaseSize: 40, Damage: 5, Color: "brown", Glyph: "#"},
				{Name: "fence", BaseSize: 15, Damage: 1, Color: "brown", Glyph: "|"},
			},
			MinObstacleDistance: 150,
			MaxObstacleDistance: 500,
			SizeVariance:        0.4,
			SnowDensity:         15,
			SnowSize:            6,
		},
		Terrain: SnowballTerrain{
			SegmentSize:     20,
			Baseline:        300,
			MinHeight:       140,
			MaxHeight:       440,
			Amplitude:       14,
			Frequency:       0.01,
			MinSlope:        -0.8,
			MaxSlope:        0.8,
			GenerationAhead: 2,
			RetainBehind:    1,
		},
		Effects: SnowballEffects{
			ParticleLimit:    100,
			TrailInterval:    3,
			SnowfallRate:     0.1,
			LandThreshold:    2,
			CameraShakeTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  3.0,
				SpacingReduction: 100,
			},
		},
	}
}

package sim

import (
	"time"

	"github.com/vovakirdan/snowball-arcade/internal/particles"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
	"github.com/vovakirdan/snowball-arcade/internal/terrain"
)

// Config is the immutable bundle of simulation settings. A World copies it
// at construction.
type Config struct {
	Width  float64 // View width in world units
	Height float64 // View height in world units

	// TickRate is the number of base ticks per second. All per-tick rates in
	// Forces and the particle profiles are expressed in base ticks.
	TickRate int
	// MaxDelta caps the time advanced by a single Step.
	MaxDelta time.Duration

	Forces      physics.Forces
	Surface     physics.Surface
	Restitution float64 // Used for player-versus-obstacle bounces

	Terrain   terrain.Config
	Particles particles.Config

	PlayerRadius  float64
	PlayerMass    float64
	SteerAccel    float64 // Horizontal acceleration per tick while steering
	JumpSpeed     float64 // Upward speed given by a jump
	CameraLead    float64 // Fraction of Width the camera keeps the player at
	LandThreshold float64 // Minimum speed into the ground for EventLanded
	TrailInterval int     // Ticks between trail particles, 0 disables
	SnowfallRate  float64 // Chance per tick of one ambient snowflake
}

// DefaultConfig returns settings tuned for a 800x480 world at 60 ticks per
// second.
func DefaultConfig() Config {
	tc := terrain.DefaultConfig()
	tc.Baseline = 300
	tc.MinHeight = 140
	tc.MaxHeight = 440

	return Config{
		Width:    800,
		Height:   480,
		TickRate: 60,
		MaxDelta: 100 * time.Millisecond,
		Forces: physics.Forces{
			Gravity:       0.2,
			AirResistance: 0.001,
			Friction:      0.02,
			MaxVelocity:   12,
			MinVelocityX:  0.5,
		},
		Surface: physics.Surface{
			BounceEnergyLoss: 0.3,
			SlopeEffect:      0.8,
		},
		Restitution: physics.Restitution(0.3),
		Terrain:     tc,
		Particles: particles.Config{
			Budget: 100,
			Width:  800,
			Height: 480,
		},
		PlayerRadius:  10,
		PlayerMass:    1,
		SteerAccel:    0.3,
		JumpSpeed:     6,
		CameraLead:    0.3,
		LandThreshold: 2,
		TrailInterval: 3,
		SnowfallRate:  0.1,
	}
}

// tickScale converts elapsed time to base ticks after clamping to MaxDelta.
func (c Config) tickScale(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return dt.Seconds() * float64(rate)
}

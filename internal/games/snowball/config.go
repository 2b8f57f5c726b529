package snowball

import (
	"time"

	"github.com/vovakirdan/snowball-arcade/internal/config"
	"github.com/vovakirdan/snowball-arcade/internal/particles"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
	"github.com/vovakirdan/snowball-arcade/internal/sim"
	"github.com/vovakirdan/snowball-arcade/internal/terrain"
)

// worldConfig converts the YAML configuration into the simulation settings.
func worldConfig(cfg config.SnowballConfig) sim.Config {
	w := cfg.World
	return sim.Config{
		Width:    w.Width,
		Height:   w.Height,
		TickRate: w.TickRate,
		MaxDelta: time.Duration(w.MaxDeltaMS) * time.Millisecond,
		Forces: physics.Forces{
			Gravity:       cfg.Physics.Gravity,
			AirResistance: cfg.Physics.AirResistance,
			Friction:      cfg.Physics.Friction,
			MaxVelocity:   cfg.Physics.MaxVelocity,
			MinVelocityX:  cfg.Physics.MinVelocity,
		},
		Surface: physics.Surface{
			BounceEnergyLoss: cfg.Physics.BounceEnergyLoss,
			SlopeEffect:      cfg.Physics.SlopeEffect,
		},
		Restitution: physics.Restitution(cfg.Physics.BounceEnergyLoss),
		Terrain:     terrainConfig(cfg.Terrain),
		Particles: particles.Config{
			Budget: cfg.Effects.ParticleLimit,
			Width:  w.Width,
			Height: w.Height,
		},
		PlayerRadius:  cfg.Player.InitialSize,
		PlayerMass:    1,
		SteerAccel:    cfg.Player.ControlSpeed,
		JumpSpeed:     cfg.Player.JumpSpeed,
		CameraLead:    cfg.Player.CameraLead,
		LandThreshold: cfg.Effects.LandThreshold,
		TrailInterval: cfg.Effects.TrailInterval,
		SnowfallRate:  cfg.Effects.SnowfallRate,
	}
}

func terrainConfig(t config.SnowballTerrain) terrain.Config {
	return terrain.Config{
		SegmentSize: t.SegmentSize,
		Baseline:    t.Baseline,
		MinHeight:   t.MinHeight,
		MaxHeight:   t.MaxHeight,
		Amplitude:   t.Amplitude,
		Frequency:   t.Frequency,
		MinSlope:    t.MinSlope,
		MaxSlope:    t.MaxSlope,
		Lookahead:   t.GenerationAhead,
		Lookbehind:  t.RetainBehind,
	}
}

// msToTicks converts a millisecond duration from the config to base ticks.
func msToTicks(ms, rate int) int {
	if rate <= 0 {
		rate = 60
	}
	return ms * rate / 1000
}

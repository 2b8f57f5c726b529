package particles

import (
	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
)

// Effect emitters return how many particles were actually spawned, which is
// fewer than requested once the budget is reached.

// Explode bursts debris for an object of the given size.
func (f *Field) Explode(pos physics.Vec2, color core.Color, size float64) int {
	count := min(30, int(size/2))
	return f.burst(count, Explosion, pos, physics.Vec2{}, func() Visual {
		return Visual{Color: color, Size: f.between(2, 2+size/5)}
	})
}

// Collect sprays sparkles upward when snow is picked up.
func (f *Field) Collect(pos physics.Vec2, color core.Color, size float64) int {
	count := min(20, int(size/3))
	return f.burst(count, Collection, pos, physics.Vec2{}, func() Visual {
		return Visual{Color: color, Size: f.between(2, 2+size/4)}
	})
}

// Impact kicks up a small puff of snow where a body hits the ground.
func (f *Field) Impact(pos physics.Vec2) int {
	return f.burst(10, Explosion, pos, physics.V(0, -1), func() Visual {
		return Visual{Color: core.ColorWhite, Size: f.between(1, 3)}
	})
}

// Trail drops one fading particle behind a moving body.
func (f *Field) Trail(pos physics.Vec2, color core.Color, size float64) int {
	hint := physics.V(f.between(-0.5, 0.5), f.between(-0.5, 0.5))
	vis := Visual{Color: color, Size: size * f.between(0.2, 0.5)}
	if f.Spawn(Default, pos, hint, vis) {
		return 1
	}
	return 0
}

// Snowfall spawns count flakes just above the view at random positions.
func (f *Field) Snowfall(count int) int {
	spawned := 0
	for i := 0; i < count; i++ {
		pos := physics.V(f.between(0, f.cfg.Width), f.between(-20, 0))
		vis := Visual{Color: core.ColorBrightWhite, Size: f.between(1, 4)}
		if !f.Spawn(Snowflake, pos, physics.Vec2{}, vis) {
			break
		}
		spawned++
	}
	return spawned
}

func (f *Field) burst(count int, kind Kind, pos, hint physics.Vec2, vis func() Visual) int {
	spawned := 0
	for i := 0; i < count; i++ {
		if !f.Spawn(kind, pos, hint, vis()) {
			break
		}
		spawned++
	}
	return spawned
}

// Count returns the number of live particles of kind k.
func (f *Field) Count(k Kind) int {
	n := 0
	for i := range f.parts {
		if f.parts[i].Kind == k {
			n++
		}
	}
	return n
}

// Package particles runs the short-lived visual particles of the snowball
// game: explosion debris, collection sparkles, the snowball trail and ambient
// snowfall. The pool is capped; spawning past the budget is refused rather
// than evicting older particles.
package particles

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
)

// Kind selects a particle's motion and size profile.
type Kind int

const (
	Default Kind = iota
	Explosion
	Collection
	Snowflake
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Default:
		return "Default"
	case Explosion:
		return "Explosion"
	case Collection:
		return "Collection"
	case Snowflake:
		return "Snowflake"
	default:
		return "Unknown"
	}
}

// envelope maps life progress t in [0, 1] to a size multiplier.
type envelope func(t float64) float64

type profile struct {
	lifeMin, lifeMax   int     // Lifespan range in ticks
	speedMin, speedMax float64 // Launch speed range
	spread             float64 // Launch angle spread around heading, radians
	heading            float64 // Launch direction, radians
	accel              physics.Vec2
	damping            float64 // Velocity multiplier per tick
	size               envelope
}

func shrink(t float64) float64 { return 1 - t }

func growThenShrink(t float64) float64 {
	if t < 0.5 {
		return 1 + t
	}
	return 1.5 - (t-0.5)*3
}

func constant(float64) float64 { return 1 }

// profiles is indexed by Kind.
var profiles = [...]profile{
	Default: {
		lifeMin: 10, lifeMax: 30,
		damping: 0.9,
		size:    shrink,
	},
	Explosion: {
		lifeMin: 20, lifeMax: 50,
		speedMin: 1, speedMax: 4,
		spread:  math.Pi,
		accel:   physics.V(0, 0.05),
		damping: 0.95,
		size:    shrink,
	},
	Collection: {
		lifeMin: 30, lifeMax: 50,
		speedMin: 1, speedMax: 3,
		heading: -math.Pi / 2,
		spread:  math.Pi / 8,
		accel:   physics.V(0, 0.03),
		damping: 0.97,
		size:    growThenShrink,
	},
	Snowflake: {
		speedMin: 0.5, speedMax: 1.5,
		damping: 1,
		size:    constant,
	},
}

const (
	swayAmplitude = 0.3
	swayRate      = 0.05 // Radians per tick
)

// Visual carries the caller-chosen look of a particle.
type Visual struct {
	Color core.Color
	Size  float64
}

// Particle is one live particle. Age and Lifespan count ticks.
type Particle struct {
	Kind        Kind
	Pos         physics.Vec2
	Vel         physics.Vec2
	Acc         physics.Vec2
	Size        float64
	InitialSize float64
	Color       core.Color
	Age         int
	Lifespan    int
	phase       float64
}

// Fade returns the remaining life fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p.Lifespan <= 0 {
		return 0
	}
	return math.Max(0, 1-float64(p.Age)/float64(p.Lifespan))
}

// Config holds the immutable field settings.
type Config struct {
	Budget int     // Maximum live particles
	Width  float64 // View width, used by snowfall
	Height float64 // View height, bounds snowflake lifespans
}

// Field is a bounded particle pool.
type Field struct {
	cfg   Config
	rng   *rand.Rand
	parts []Particle
}

// New creates an empty field. The seed drives all randomized launch values.
func New(cfg Config, seed int64) *Field {
	if cfg.Budget < 0 {
		cfg.Budget = 0
	}
	return &Field{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		parts: make([]Particle, 0, cfg.Budget),
	}
}

// Reseed restarts the random sequence.
func (f *Field) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.parts)
}

// Budget returns the particle cap.
func (f *Field) Budget() int {
	return f.cfg.Budget
}

// Spawn creates one particle of the given kind at pos. For snowflakes hint
// sets the horizontal drift; for other kinds it is added to the launch
// velocity. Spawn returns false and does nothing when the field is full.
func (f *Field) Spawn(kind Kind, pos, hint physics.Vec2, vis Visual) bool {
	if len(f.parts) >= f.cfg.Budget {
		return false
	}
	if kind < Default || int(kind) >= len(profiles) {
		kind = Default
	}
	prof := &profiles[kind]

	p := Particle{
		Kind:        kind,
		Pos:         pos,
		Acc:         prof.accel,
		Size:        vis.Size,
		InitialSize: vis.Size,
		Color:       vis.Color,
	}

	switch kind {
	case Snowflake:
		vy := f.between(prof.speedMin, prof.speedMax)
		p.Vel = physics.V(hint.X+f.between(-0.25, 0.25), vy)
		p.Lifespan = int((f.cfg.Height + 50) / vy)
		p.phase = f.between(0, 2*math.Pi)
	default:
		angle := prof.heading + f.between(-prof.spread, prof.spread)
		speed := f.between(prof.speedMin, prof.speedMax)
		p.Vel = physics.FromAngle(angle, speed)
		p.Vel.Add(hint)
		p.Lifespan = prof.lifeMin + f.rng.Intn(prof.lifeMax-prof.lifeMin+1)
	}
	if p.Lifespan < 1 {
		p.Lifespan = 1
	}

	f.parts = append(f.parts, p)
	return true
}

// Tick advances every particle by one tick and removes the expired ones.
func (f *Field) Tick() {
	live := f.parts[:0]
	for i := range f.parts {
		p := f.parts[i]
		prof := &profiles[p.Kind]

		p.Vel.Add(p.Acc).Mul(prof.damping)
		p.Pos.Add(p.Vel)
		if p.Kind == Snowflake {
			p.Pos.X += math.Sin(p.phase+float64(p.Age)*swayRate) * swayAmplitude
		}
		p.Age++
		p.Size = p.InitialSize * math.Max(0, prof.size(float64(p.Age)/float64(p.Lifespan)))

		if p.Age < p.Lifespan {
			live = append(live, p)
		}
	}
	f.parts = live
}

// Clear removes every particle.
func (f *Field) Clear() {
	f.parts = f.parts[:0]
}

// Shift moves every particle horizontally, used when the camera scrolls.
func (f *Field) Shift(dx float64) {
	for i := range f.parts {
		f.parts[i].Pos.X += dx
	}
}

// Each calls fn for every live particle in spawn order.
func (f *Field) Each(fn func(p *Particle)) {
	for i := range f.parts {
		fn(&f.parts[i])
	}
}

func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

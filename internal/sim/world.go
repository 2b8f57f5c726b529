// Package sim runs the snowball world: one player body rolling over scrolling
// terrain among obstacles and collectibles, plus the particle effects that go
// with it.
//
// A World is driven by Step with the elapsed wall time. The time is capped,
// converted to base ticks and split into substeps of at most one tick so a
// stalled frame cannot tunnel the player through the ground. Nothing in this
// package blocks or starts goroutines; callers own the tick schedule.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/particles"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
	"github.com/vovakirdan/snowball-arcade/internal/terrain"
)

// groundTolerance is how far above the terrain the player still counts as
// grounded for jumping.
const groundTolerance = 2.0

// tickEpsilon absorbs the rounding of time.Second/60 so a nominal frame
// counts as one whole tick.
const tickEpsilon = 1e-6

// World owns the player, the placed entities, the terrain and the particle
// field for the duration of each Step. Between steps callers may read them
// and adjust the player's radius.
type World struct {
	cfg       Config
	player    physics.Body
	entities  []Entity
	nextID    int
	terrain   *terrain.Model
	particles *particles.Field
	rng       *rand.Rand

	grounded    bool
	touching    bool
	outOfBounds bool
	steer       float64
	jump        bool

	ticks    int
	pending  float64 // Fraction of a base tick not yet given to effects
	distance float64

	hit []int // Obstacle IDs already reported during the current Step
}

// New creates a world and resets it with seed.
func New(cfg Config, seed int64) *World {
	w := &World{
		cfg:       cfg,
		terrain:   terrain.New(cfg.Terrain, seed),
		particles: particles.New(cfg.Particles, seed+1),
	}
	w.Reset(seed)
	return w
}

// Reset regenerates the terrain from seed, clears entities and particles and
// puts the player back on the ground at the camera anchor.
func (w *World) Reset(seed int64) {
	w.terrain.Reset(seed)
	w.terrain.GenerateInitial(w.cfg.Width)
	w.particles.Clear()
	w.particles.Reseed(seed + 1)
	w.rng = rand.New(rand.NewSource(seed + 2))

	w.entities = w.entities[:0]
	w.nextID = 0

	x := w.cfg.Width * w.cfg.CameraLead
	w.player = physics.Body{
		Pos:    physics.V(x, w.terrain.HeightAt(x)-w.cfg.PlayerRadius),
		Vel:    physics.V(w.cfg.Forces.MinVelocityX, 0),
		Radius: w.cfg.PlayerRadius,
		Mass:   w.cfg.PlayerMass,
	}

	w.grounded = true
	w.touching = true
	w.outOfBounds = false
	w.steer = 0
	w.jump = false
	w.ticks = 0
	w.pending = 0
	w.distance = 0
}

// Config returns the world configuration.
func (w *World) Config() Config { return w.cfg }

// Player returns the player body. Callers may change its radius between
// steps; the world owns position and velocity.
func (w *World) Player() *physics.Body { return &w.player }

// Entities returns the live entities. The slice must not be modified.
func (w *World) Entities() []Entity { return w.entities }

// Terrain returns the terrain model.
func (w *World) Terrain() *terrain.Model { return w.terrain }

// Particles returns the particle field.
func (w *World) Particles() *particles.Field { return w.particles }

// Grounded reports whether the player is on or just above the terrain.
func (w *World) Grounded() bool { return w.grounded }

// Distance returns how far the camera has scrolled since the last reset.
func (w *World) Distance() float64 { return w.distance }

// Ticks returns the number of whole base ticks simulated.
func (w *World) Ticks() int { return w.ticks }

// Add places an entity and returns its ID.
func (w *World) Add(e Entity) int {
	w.nextID++
	e.ID = w.nextID
	w.entities = append(w.entities, e)
	return e.ID
}

// Remove deletes the entity with the given ID.
func (w *World) Remove(id int) bool {
	for i := range w.entities {
		if w.entities[i].ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Steer sets the steering direction for the next Step: -1 left, 1 right.
func (w *World) Steer(dir float64) {
	w.steer = math.Max(-1, math.Min(1, dir))
}

// SetHandling changes the steering acceleration and the forward speed floor
// used from the next Step on. Games call it as the player grows or the
// difficulty rises.
func (w *World) SetHandling(steerAccel, forwardSpeed float64) {
	w.cfg.SteerAccel = steerAccel
	w.cfg.Forces.MinVelocityX = forwardSpeed
}

// Jump requests a jump on the next Step. It only takes effect while grounded.
func (w *World) Jump() {
	w.jump = true
}

// Step advances the world by dt, capped at Config.MaxDelta, and returns what
// happened. Steering and jump requests are consumed.
func (w *World) Step(dt time.Duration) []Event {
	scale := w.cfg.tickScale(dt)
	if scale == 0 {
		return nil
	}

	var events []Event
	w.hit = w.hit[:0]
	n := int(math.Ceil(scale))
	sub := scale / float64(n)
	for i := 0; i < n; i++ {
		events = w.substep(sub, events)
	}
	w.steer = 0
	w.jump = false

	w.pending += scale
	for w.pending >= 1-tickEpsilon {
		w.pending--
		w.ticks++
		w.tickEffects()
	}
	if w.pending < 0 {
		w.pending = 0
	}
	return events
}

func (w *World) substep(dt float64, events []Event) []Event {
	p := &w.player

	// Controls
	p.Vel.X += w.steer * w.cfg.SteerAccel * dt
	if w.jump && w.grounded {
		p.Vel.Y = -w.cfg.JumpSpeed
		w.grounded = false
		w.touching = false
		w.jump = false
	}

	// Forces
	physics.Integrate(p, w.cfg.Forces, dt)
	for i := range w.entities {
		physics.Integrate(&w.entities[i].Body, w.cfg.Forces, dt)
	}

	events = w.collideEntities(events)
	events = w.collideTerrain(dt, events)
	w.scroll()
	w.cull()

	if !w.outOfBounds && p.Pos.Y-p.Radius > w.cfg.Height {
		w.outOfBounds = true
		events = append(events, Event{Kind: EventOutOfBounds, Speed: p.Speed()})
	}
	return events
}

// collideEntities runs the broad and narrow phase between the player and
// the entities. Obstacles push the player back; collectibles are removed.
func (w *World) collideEntities(events []Event) []Event {
	if len(w.entities) == 0 {
		return events
	}

	bodies := make([]*physics.Body, 0, len(w.entities)+1)
	bodies = append(bodies, &w.player)
	for i := range w.entities {
		bodies = append(bodies, &w.entities[i].Body)
	}

	var collected []int
	for _, pair := range physics.BroadPhase(bodies) {
		a, b := bodies[pair.I], bodies[pair.J]
		if pair.I != 0 {
			if w.entities[pair.I-1].Kind == Obstacle && w.entities[pair.J-1].Kind == Obstacle {
				physics.DetectAndResolve(a, b, w.cfg.Restitution)
			}
			continue
		}

		e := &w.entities[pair.J-1]
		c, ok := physics.CircleCircleContact(a.Pos, a.Radius, b.Pos, b.Radius)
		if !ok {
			continue
		}
		closing := physics.SubV(a.Vel, b.Vel).Dot(c.Normal)

		switch e.Kind {
		case Collectible:
			collected = append(collected, e.ID)
			events = append(events, Event{Kind: EventCollected, Entity: *e, Normal: c.Normal, Speed: closing})
			w.particles.Collect(e.Body.Pos, e.Color, e.Body.Radius*2)
		case Obstacle:
			physics.ResolveCircles(a, b, c, w.cfg.Restitution)
			// The forward speed floor can push the player back into the same
			// obstacle on a later substep; that is still one hit.
			if w.reported(e.ID) {
				continue
			}
			events = append(events, Event{Kind: EventHit, Entity: *e, Normal: c.Normal, Speed: closing})
			contact := physics.AddV(a.Pos, physics.Scaled(c.Normal, a.Radius))
			w.particles.Explode(contact, e.Color, e.Body.Radius*2)
		}
	}

	for _, id := range collected {
		w.Remove(id)
	}
	return events
}

// reported marks an obstacle as hit for this Step and tells whether it was
// already marked.
func (w *World) reported(id int) bool {
	for _, h := range w.hit {
		if h == id {
			return true
		}
	}
	w.hit = append(w.hit, id)
	return false
}

// collideTerrain resolves the player against the deepest overlapping terrain
// segment and updates the grounded state.
func (w *World) collideTerrain(dt float64, events []Event) []Event {
	p := &w.player
	wasTouching := w.touching

	// A center just below the ground line has tunneled this substep; put it
	// back on the line so segment resolution pushes it out upward. Anything
	// deeper was placed there and is left to fall out of bounds.
	ground := w.terrain.HeightAt(p.Pos.X)
	if depth := p.Pos.Y - ground; depth > 0 && depth <= p.Radius+math.Abs(p.Vel.Y)*dt+1 {
		p.Pos.Y = ground
	}

	var (
		best    physics.Segment
		bestPen float64
		found   bool
	)
	for _, seg := range w.terrain.SegmentsBetween(p.Pos.X-p.Radius, p.Pos.X+p.Radius) {
		if c, ok := physics.CircleSegmentContact(p.Pos, p.Radius, seg); ok && c.Penetration > bestPen {
			best, bestPen, found = seg, c.Penetration, true
		}
	}

	w.touching = false
	if found {
		c, _ := physics.CircleSegmentContact(p.Pos, p.Radius, best)
		into := -p.Vel.Dot(c.Normal)
		physics.ResolveSegment(p, best, w.cfg.Surface, dt)
		physics.ApplyFriction(p, c.Normal, w.cfg.Forces, dt)
		w.touching = true

		if !wasTouching && into >= w.cfg.LandThreshold {
			events = append(events, Event{Kind: EventLanded, Normal: c.Normal, Speed: into})
			w.particles.Impact(physics.SubV(p.Pos, physics.Scaled(c.Normal, p.Radius)))
		}
	}

	gap := w.terrain.HeightAt(p.Pos.X) - (p.Pos.Y + p.Radius)
	w.grounded = w.touching || (gap >= 0 && gap <= groundTolerance)
	return events
}

// scroll keeps the player at the camera anchor by moving the world left.
func (w *World) scroll() {
	p := &w.player

	if p.Pos.Y < p.Radius {
		p.Pos.Y = p.Radius
		if p.Vel.Y < 0 {
			p.Vel.Y *= -w.cfg.Surface.BounceEnergyLoss
		}
	}

	dx := p.Pos.X - w.cfg.Width*w.cfg.CameraLead
	if dx <= 0 {
		if p.Pos.X < p.Radius {
			p.Pos.X = p.Radius
			if p.Vel.X < 0 {
				p.Vel.X *= -w.cfg.Surface.BounceEnergyLoss
			}
		}
		return
	}

	w.terrain.Scroll(dx)
	p.Pos.X -= dx
	for i := range w.entities {
		w.entities[i].Body.Pos.X -= dx
	}
	w.particles.Shift(-dx)
	w.distance += dx
}

// cull drops entities that scrolled fully off the left edge.
func (w *World) cull() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if e.Body.Pos.X+e.Body.Radius >= 0 {
			live = append(live, e)
		}
	}
	w.entities = live
}

// tickEffects runs once per whole base tick: trail, ambient snow and the
// particle update.
func (w *World) tickEffects() {
	p := &w.player
	if w.cfg.TrailInterval > 0 && w.ticks%w.cfg.TrailInterval == 0 && p.Speed() > 0 {
		behind := physics.SubV(p.Pos, physics.Scaled(physics.Normalized(p.Vel), p.Radius))
		w.particles.Trail(behind, core.ColorWhite, p.Radius)
	}
	if w.rng.Float64() < w.cfg.SnowfallRate {
		w.particles.Snowfall(1)
	}
	w.particles.Tick()
}

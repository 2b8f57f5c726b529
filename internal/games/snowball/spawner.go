package snowball

import (
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/snowball-arcade/internal/config"
	"github.com/vovakirdan/snowball-arcade/internal/core"
	"github.com/vovakirdan/snowball-arcade/internal/physics"
	"github.com/vovakirdan/snowball-arcade/internal/sim"
)

// Entity types used besides the configured obstacle names.
const snowType = "snow"

// ObstacleKind is a parsed obstacle type from the config.
type ObstacleKind struct {
	Name   string
	Size   float64
	Damage int
	Color  core.Color
	Glyph  rune
}

// Spawner places obstacles and snow patches ahead of the player.
// Obstacles are spaced by scrolled distance; snow patches are topped up to
// a density target.
type Spawner struct {
	rng          *rand.Rand
	cfg          *config.SnowballConfig
	difficulty   *config.DifficultyManager
	kinds        []ObstacleKind
	nextObstacle float64 // World distance at which the next obstacle appears
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.SnowballConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{}
	s.UpdateConfig(cfg, diff)
	s.Reset(seed)
	return s
}

// UpdateConfig replaces the configuration and re-parses the obstacle types.
func (s *Spawner) UpdateConfig(cfg *config.SnowballConfig, diff *config.DifficultyManager) {
	s.cfg = cfg
	s.difficulty = diff
	s.kinds = parseKinds(cfg.Spawn.ObstacleTypes)
}

// Reset clears the spawn schedule and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	// First obstacle half a screen in, so the player has time to settle
	s.nextObstacle = s.cfg.World.Width * 0.5
}

// Kinds returns the obstacle types in config order.
func (s *Spawner) Kinds() []ObstacleKind {
	return s.kinds
}

// Kind looks up an obstacle type by name.
func (s *Spawner) Kind(name string) (ObstacleKind, bool) {
	for _, k := range s.kinds {
		if k.Name == name {
			return k, true
		}
	}
	return ObstacleKind{}, false
}

// Populate scatters the initial snow patches between the player and the
// right edge of the generated terrain.
func (s *Spawner) Populate(w *sim.World) {
	cfg := w.Config()
	lo := cfg.Width*cfg.CameraLead + 4*cfg.PlayerRadius
	for i := 0; i < s.cfg.Spawn.SnowDensity; i++ {
		s.spawnSnow(w, lo+s.rng.Float64()*(2*cfg.Width-lo))
	}
}

// Update spawns an obstacle when the scrolled distance reaches the next
// spacing mark and tops up snow patches. It returns the number of entities
// added.
func (s *Spawner) Update(w *sim.World, score int) int {
	added := 0
	width := w.Config().Width

	if len(s.kinds) > 0 && w.Distance() >= s.nextObstacle {
		s.spawnObstacle(w)
		s.nextObstacle = w.Distance() + s.spacing(score, w.Ticks())
		added++
	}

	target := s.snowTarget(score, w.Ticks())
	for n := countKind(w, sim.Collectible); n < target; n++ {
		s.spawnSnow(w, width+s.rng.Float64()*width)
		added++
	}
	return added
}

// spacing draws the distance to the next obstacle, shortened by difficulty.
func (s *Spawner) spacing(score, ticks int) float64 {
	sp := s.cfg.Spawn
	base := sp.MinObstacleDistance + s.rng.Float64()*(sp.MaxObstacleDistance-sp.MinObstacleDistance)
	return s.difficulty.Spacing(base, sp.MinObstacleDistance*0.5, score, ticks)
}

// snowTarget is the snow patch count to keep alive. Harder levels get more
// snow to make up for the denser obstacles.
func (s *Spawner) snowTarget(score, ticks int) int {
	level := s.difficulty.Level(score, ticks)
	return int(float64(s.cfg.Spawn.SnowDensity) * (1 + level*0.2))
}

func (s *Spawner) spawnObstacle(w *sim.World) {
	kind := s.kinds[s.rng.Intn(len(s.kinds))]
	variance := kind.Size * s.cfg.Spawn.SizeVariance
	r := math.Max(1, kind.Size+(s.rng.Float64()*2-1)*variance)

	x := w.Config().Width + r + 10
	// Sink the base a little into the slope so it reads as planted
	y := w.Terrain().HeightAt(x) - r*0.8

	w.Add(sim.Entity{
		Kind:  sim.Obstacle,
		Body:  physics.Body{Pos: physics.V(x, y), Radius: r, Static: true},
		Type:  kind.Name,
		Value: kind.Damage,
		Color: kind.Color,
	})
}

func (s *Spawner) spawnSnow(w *sim.World, x float64) {
	size := s.cfg.Spawn.SnowSize
	if size <= 0 {
		size = 6
	}
	r := size * (1 + s.rng.Float64())
	// Some patches float within jumping reach
	lift := 0.0
	if s.rng.Float64() < 0.3 {
		lift = s.rng.Float64() * 80
	}
	y := w.Terrain().HeightAt(x) - r - lift

	w.Add(sim.Entity{
		Kind:  sim.Collectible,
		Body:  physics.Body{Pos: physics.V(x, y), Radius: r, Static: true},
		Type:  snowType,
		Value: int(math.Round(float64(s.cfg.Scoring.BaseSnowValue) * r / size)),
		Color: core.ColorBrightWhite,
	})
}

func countKind(w *sim.World, kind sim.EntityKind) int {
	n := 0
	for _, e := range w.Entities() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func parseKinds(types []config.ObstacleType) []ObstacleKind {
	kinds := make([]ObstacleKind, 0, len(types))
	for _, t := range types {
		color, ok := core.ParseColor(t.Color)
		if !ok {
			color = core.ColorGray
		}
		glyph, _ := utf8.DecodeRuneInString(t.Glyph)
		if glyph == utf8.RuneError {
			glyph = '#'
		}
		kinds = append(kinds, ObstacleKind{
			Name:   t.Name,
			Size:   t.BaseSize,
			Damage: t.Damage,
			Color:  color,
			Glyph:  glyph,
		})
	}
	return kinds
}

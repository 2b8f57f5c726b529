// Package terrain generates the scrolling hill line the snowball rolls on.
//
// The terrain is a polyline of points ordered by strictly increasing X in
// view coordinates. Scrolling shifts every point left, trims what falls behind
// the retained window and appends new points until the lookahead window is
// full again. Heights come from a seeded value noise so a run can be replayed
// from its seed.
package terrain

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/snowball-arcade/internal/physics"
)

// Config holds the terrain tunables. It is copied into the Model at
// construction and never changed afterwards.
type Config struct {
	SegmentSize float64 // Horizontal length of one segment
	Baseline    float64 // Height of the first point
	MinHeight   float64 // Highest allowed ground (smallest Y)
	MaxHeight   float64 // Lowest allowed ground (largest Y)
	Amplitude   float64 // Largest height change per segment before slope clamping
	Frequency   float64 // Noise frequency per world unit
	MinSlope    float64 // Smallest dy/dx per segment (uphill)
	MaxSlope    float64 // Largest dy/dx per segment (downhill)
	Lookahead   float64 // View widths kept generated ahead of the view
	Lookbehind  float64 // View widths retained behind the view
}

// DefaultConfig returns terrain settings for a 800x600 world.
func DefaultConfig() Config {
	return Config{
		SegmentSize: 20,
		Baseline:    420,
		MinHeight:   180,
		MaxHeight:   540,
		Amplitude:   14,
		Frequency:   0.01,
		MinSlope:    -0.8,
		MaxSlope:    0.8,
		Lookahead:   2,
		Lookbehind:  1,
	}
}

// Model is a seeded, scrollable terrain polyline.
type Model struct {
	cfg       Config
	seed      int64
	rng       *rand.Rand
	lattice   []float64
	latBase   int // Lattice index of lattice[0]
	points    []physics.Vec2
	viewWidth float64
	scrolled  float64 // Total distance scrolled, maps view X to world X
}

// New creates an empty terrain. Call GenerateInitial before querying it.
func New(cfg Config, seed int64) *Model {
	m := &Model{cfg: cfg}
	m.Reset(seed)
	return m
}

// FromPoints builds a terrain from a fixed polyline. Points must be ordered
// by strictly increasing X. Scrolling past the end extends it with noise
// seeded from 0.
func FromPoints(cfg Config, points []physics.Vec2) *Model {
	m := New(cfg, 0)
	m.points = append(m.points, points...)
	if n := len(points); n > 0 {
		m.viewWidth = points[n-1].X - points[0].X
	}
	return m
}

// Reset clears the terrain and reseeds the noise source.
func (m *Model) Reset(seed int64) {
	m.seed = seed
	m.rng = rand.New(rand.NewSource(seed))
	m.lattice = m.lattice[:0]
	m.latBase = 0
	m.points = m.points[:0]
	m.scrolled = 0
}

// Seed returns the seed the noise source was created with.
func (m *Model) Seed() int64 {
	return m.seed
}

// Config returns the terrain configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// GenerateInitial builds a fresh polyline starting at the baseline and long
// enough to cover viewWidth plus the lookahead window.
func (m *Model) GenerateInitial(viewWidth float64) {
	m.viewWidth = viewWidth
	m.points = m.points[:0]
	m.points = append(m.points, physics.V(0, m.cfg.Baseline))
	m.fill()
}

// Extend appends one segment. The height change follows the noise, clamped so
// the segment slope stays within [MinSlope, MaxSlope] and the height within
// [MinHeight, MaxHeight].
func (m *Model) Extend() {
	if len(m.points) == 0 {
		m.points = append(m.points, physics.V(0, m.cfg.Baseline))
		return
	}
	last := m.points[len(m.points)-1]
	x := last.X + m.segmentSize()

	dy := m.noise(x+m.scrolled) * m.cfg.Amplitude
	dy = clamp(dy, m.cfg.MinSlope*m.segmentSize(), m.cfg.MaxSlope*m.segmentSize())
	y := clamp(last.Y+dy, m.cfg.MinHeight, m.cfg.MaxHeight)

	m.points = append(m.points, physics.V(x, y))
}

// Scroll moves the terrain left by distance, drops segments that fall fully
// behind the retained window and refills the lookahead. Non-positive
// distances are ignored.
func (m *Model) Scroll(distance float64) {
	if distance <= 0 || len(m.points) == 0 {
		return
	}
	for i := range m.points {
		m.points[i].X -= distance
	}
	m.scrolled += distance

	behind := -m.cfg.Lookbehind * m.viewWidth
	drop := 0
	for drop+2 < len(m.points) && m.points[drop+1].X < behind {
		drop++
	}
	if drop > 0 {
		m.points = append(m.points[:0], m.points[drop:]...)
	}
	m.trimLattice()

	m.fill()
}

// Scrolled returns the total distance scrolled since the last reset.
func (m *Model) Scrolled() float64 {
	return m.scrolled
}

// HeightAt returns the ground height at x, interpolated within the segment
// containing x. Outside the polyline it returns the nearest endpoint height.
func (m *Model) HeightAt(x float64) float64 {
	n := len(m.points)
	if n == 0 {
		return m.cfg.Baseline
	}
	if x <= m.points[0].X {
		return m.points[0].Y
	}
	if x >= m.points[n-1].X {
		return m.points[n-1].Y
	}
	seg, _ := m.SegmentAt(x)
	return seg.YAt(x)
}

// SlopeAt returns the slope angle in radians at x, or 0 outside the polyline.
func (m *Model) SlopeAt(x float64) float64 {
	seg, ok := m.SegmentAt(x)
	if !ok {
		return 0
	}
	return seg.Angle()
}

// SegmentAt returns the segment whose X range contains x.
func (m *Model) SegmentAt(x float64) (physics.Segment, bool) {
	n := len(m.points)
	if n < 2 || x < m.points[0].X || x > m.points[n-1].X {
		return physics.Segment{}, false
	}
	i := sort.Search(n, func(i int) bool { return m.points[i].X >= x })
	if i == 0 {
		i = 1
	}
	return physics.Segment{A: m.points[i-1], B: m.points[i]}, true
}

// SegmentsBetween returns the segments overlapping the X range [x0, x1].
func (m *Model) SegmentsBetween(x0, x1 float64) []physics.Segment {
	var segs []physics.Segment
	for i := 1; i < len(m.points); i++ {
		a, b := m.points[i-1], m.points[i]
		if b.X < x0 {
			continue
		}
		if a.X > x1 {
			break
		}
		segs = append(segs, physics.Segment{A: a, B: b})
	}
	return segs
}

// Segments returns every retained segment, left to right.
func (m *Model) Segments() []physics.Segment {
	if len(m.points) < 2 {
		return nil
	}
	segs := make([]physics.Segment, 0, len(m.points)-1)
	for i := 1; i < len(m.points); i++ {
		segs = append(segs, physics.Segment{A: m.points[i-1], B: m.points[i]})
	}
	return segs
}

// Points returns a copy of the polyline.
func (m *Model) Points() []physics.Vec2 {
	return append([]physics.Vec2(nil), m.points...)
}

// Span returns the X range covered by the polyline.
func (m *Model) Span() (start, end float64) {
	if len(m.points) == 0 {
		return 0, 0
	}
	return m.points[0].X, m.points[len(m.points)-1].X
}

// fill extends the polyline until it covers the lookahead window.
func (m *Model) fill() {
	ahead := m.viewWidth * (m.cfg.Lookahead + 1)
	for m.points[len(m.points)-1].X < ahead {
		m.Extend()
	}
}

func (m *Model) segmentSize() float64 {
	if m.cfg.SegmentSize <= 0 {
		return 1
	}
	return m.cfg.SegmentSize
}

// noise returns a smooth value in [-1, 1] for world coordinate x: seeded
// value noise blended with a slow sine swell.
func (m *Model) noise(x float64) float64 {
	u := math.Max(0, x*m.cfg.Frequency)
	i := int(u)
	f := u - float64(i)
	f = f * f * (3 - 2*f)

	v := m.latticeAt(i)*(1-f) + m.latticeAt(i+1)*f
	return 0.75*v + 0.25*math.Sin(x*m.cfg.Frequency*0.37*2*math.Pi)
}

// latticeAt returns the noise lattice value at i, drawing new values from
// the seeded source as the terrain reaches further right. Indices left of
// the trimmed window read the oldest retained value.
func (m *Model) latticeAt(i int) float64 {
	i = max(i-m.latBase, 0)
	for len(m.lattice) <= i {
		m.lattice = append(m.lattice, m.rng.Float64()*2-1)
	}
	return m.lattice[i]
}

// trimLattice drops lattice values left of the first retained point. Only
// the right end is ever extended, so they are never read again.
func (m *Model) trimLattice() {
	first := int(math.Max(0, (m.points[0].X+m.scrolled)*m.cfg.Frequency))
	n := min(first-m.latBase, len(m.lattice))
	if n <= 0 {
		return
	}
	m.lattice = append(m.lattice[:0], m.lattice[n:]...)
	m.latBase += n
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

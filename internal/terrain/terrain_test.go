package terrain

import (
	"math"
	"testing"

	"github.com/vovakirdan/snowball-arcade/internal/physics"
)

func TestHeightAndSlopeInsideSegment(t *testing.T) {
	m := FromPoints(DefaultConfig(), []physics.Vec2{physics.V(0, 100), physics.V(100, 140)})

	if h := m.HeightAt(50); math.Abs(h-120) > 1e-9 {
		t.Errorf("HeightAt(50) = %v, expected 120", h)
	}
	want := math.Atan2(40, 100)
	if s := m.SlopeAt(50); math.Abs(s-want) > 1e-9 {
		t.Errorf("SlopeAt(50) = %v, expected %v", s, want)
	}
}

func TestQueriesOutsideTerrain(t *testing.T) {
	m := FromPoints(DefaultConfig(), []physics.Vec2{physics.V(0, 100), physics.V(100, 140)})

	tests := []struct {
		name   string
		x      float64
		height float64
	}{
		{"left of start", -20, 100},
		{"right of end", 150, 140},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if h := m.HeightAt(tc.x); h != tc.height {
				t.Errorf("HeightAt(%v) = %v, expected %v", tc.x, h, tc.height)
			}
			if s := m.SlopeAt(tc.x); s != 0 {
				t.Errorf("SlopeAt(%v) = %v, expected 0", tc.x, s)
			}
			if _, ok := m.SegmentAt(tc.x); ok {
				t.Errorf("SegmentAt(%v) should not find a segment", tc.x)
			}
		})
	}
}

func TestGenerateInitialCoversLookahead(t *testing.T) {
	cfg := DefaultConfig()
	m := New(cfg, 42)
	m.GenerateInitial(800)

	start, end := m.Span()
	if start != 0 {
		t.Errorf("start = %v, expected 0", start)
	}
	if end < 800*(cfg.Lookahead+1) {
		t.Errorf("end = %v, expected at least %v", end, 800*(cfg.Lookahead+1))
	}
	if h := m.HeightAt(0); h != cfg.Baseline {
		t.Errorf("HeightAt(0) = %v, expected baseline %v", h, cfg.Baseline)
	}
}

func checkChain(t *testing.T, m *Model) {
	t.Helper()
	cfg := m.Config()
	segs := m.Segments()
	if len(segs) == 0 {
		t.Fatal("terrain has no segments")
	}
	for i, s := range segs {
		if s.B.X <= s.A.X {
			t.Fatalf("segment %d not increasing in x: %v -> %v", i, s.A, s.B)
		}
		if i > 0 && segs[i-1].B != s.A {
			t.Fatalf("segment %d does not continue segment %d: %v != %v", i, i-1, segs[i-1].B, s.A)
		}
		slope := (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
		if slope < cfg.MinSlope-1e-9 || slope > cfg.MaxSlope+1e-9 {
			t.Fatalf("segment %d slope %v outside [%v, %v]", i, slope, cfg.MinSlope, cfg.MaxSlope)
		}
		if s.B.Y < cfg.MinHeight || s.B.Y > cfg.MaxHeight {
			t.Fatalf("segment %d height %v outside [%v, %v]", i, s.B.Y, cfg.MinHeight, cfg.MaxHeight)
		}
	}
}

func TestScrollPreservesContinuity(t *testing.T) {
	cfg := DefaultConfig()
	m := New(cfg, 7)
	m.GenerateInitial(800)
	checkChain(t, m)

	steps := []float64{1.5, 0, 3, 17.25, 200, 0.01, 999, 45, -10, 60}
	for i := 0; i < 50; i++ {
		for _, d := range steps {
			m.Scroll(d)
		}
		checkChain(t, m)
	}

	start, end := m.Span()
	if end < 800*(cfg.Lookahead+1) {
		t.Errorf("lookahead not refilled: end = %v", end)
	}
	if start < -cfg.Lookbehind*800-2*cfg.SegmentSize {
		t.Errorf("segments behind the window were not trimmed: start = %v", start)
	}
}

func TestTerrainIsReproducibleFromSeed(t *testing.T) {
	run := func(seed int64) []physics.Vec2 {
		m := New(DefaultConfig(), seed)
		m.GenerateInitial(640)
		for i := 0; i < 20; i++ {
			m.Scroll(37)
		}
		return m.Points()
	}

	a, b := run(12345), run(12345)
	if len(a) != len(b) {
		t.Fatalf("point counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}

	c := run(54321)
	same := len(a) == len(c)
	for i := 0; same && i < len(a); i++ {
		same = a[i] == c[i]
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestLongScrollKeepsLatticeBounded(t *testing.T) {
	cfg := DefaultConfig()
	run := func(steps int, d float64) *Model {
		m := New(cfg, 99)
		m.GenerateInitial(640)
		for i := 0; i < steps; i++ {
			m.Scroll(d)
		}
		return m
	}

	a := run(2000, 37)
	b := run(1000, 74)

	// The retained window spans about 4 view widths of lattice cells
	limit := int(640*(cfg.Lookbehind+cfg.Lookahead+2)*cfg.Frequency) + 8
	for _, m := range []*Model{a, b} {
		if len(m.lattice) > limit {
			t.Errorf("lattice holds %d values after scrolling %v, expected at most %d",
				len(m.lattice), m.Scrolled(), limit)
		}
		if m.latBase == 0 {
			t.Error("lattice was never trimmed")
		}
	}

	// Trimming must not change the terrain
	for _, x := range []float64{-300, 0, 123.5, 640, 1500} {
		if ha, hb := a.HeightAt(x), b.HeightAt(x); math.Abs(ha-hb) > 1e-6 {
			t.Errorf("HeightAt(%v) = %v and %v for the same seed and distance", x, ha, hb)
		}
	}
}

func TestResetRestartsSequence(t *testing.T) {
	m := New(DefaultConfig(), 3)
	m.GenerateInitial(400)
	first := m.Points()

	m.Scroll(500)
	m.Reset(3)
	m.GenerateInitial(400)
	second := m.Points()

	if len(first) != len(second) {
		t.Fatalf("point counts differ after reset: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
	if m.Scrolled() != 0 {
		t.Errorf("Scrolled() = %v after reset, expected 0", m.Scrolled())
	}
}

func TestSegmentsBetween(t *testing.T) {
	pts := []physics.Vec2{physics.V(0, 0), physics.V(10, 0), physics.V(20, 0), physics.V(30, 0)}
	m := FromPoints(DefaultConfig(), pts)

	segs := m.SegmentsBetween(12, 18)
	if len(segs) != 1 || segs[0].A.X != 10 {
		t.Errorf("SegmentsBetween(12, 18) = %v, expected the [10, 20] segment", segs)
	}
	segs = m.SegmentsBetween(5, 25)
	if len(segs) != 3 {
		t.Errorf("SegmentsBetween(5, 25) returned %d segments, expected 3", len(segs))
	}
}

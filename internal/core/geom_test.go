package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	got := outer.Centered(30, 8)

	if got != NewRect(25, 8, 30, 8) {
		t.Errorf("Centered(30, 8) = %+v, expected {25 8 30 8}", got)
	}
}

func TestViewportToCell(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 480, Cols: 80, Rows: 24}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first cell", 9.9, 19.9, 0, 0},
		{"middle", 405, 245, 40, 12},
		{"last cell", 799, 479, 79, 23},
		{"left of screen", -5, 10, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := v.ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}

	if x := v.ColumnX(3); x != 35 {
		t.Errorf("ColumnX(3) = %v, expected 35", x)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

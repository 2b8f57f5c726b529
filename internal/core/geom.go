// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned cell rectangle used for HUD boxes and overlays.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return NewRect(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, w, h)
}

// Viewport maps continuous world coordinates onto screen cells. Games that
// simulate in world units use it to draw into a Screen of any size.
type Viewport struct {
	WorldW, WorldH float64 // World extent shown on screen
	Cols, Rows     int     // Screen cells available
}

// CellW returns the world width covered by one column.
func (v Viewport) CellW() float64 {
	if v.Cols <= 0 {
		return v.WorldW
	}
	return v.WorldW / float64(v.Cols)
}

// CellH returns the world height covered by one row.
func (v Viewport) CellH() float64 {
	if v.Rows <= 0 {
		return v.WorldH
	}
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world position to the cell containing it. Results may be
// outside the screen; Screen.Set ignores those.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / v.CellW())), int(math.Floor(y / v.CellH()))
}

// ColumnX returns the world X at the center of column col.
func (v Viewport) ColumnX(col int) float64 {
	return (float64(col) + 0.5) * v.CellW()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Package core holds the engine-agnostic building blocks shared by the game
// and the platform layers: geometry, input frames and the screen buffer.
// Nothing here imports Bubble Tea so simulation code stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a world-space bounding box. The simulation runs in float units
// (one unit is one pixel of the reference field) and only the renderer
// converts to cells.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether both boxes overlap on the X axis and on the Y
// axis at the same time. Touching edges do not count.
func (r RectF) Overlaps(other RectF) bool {
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}

// Mirror reflects the box across the vertical line x=axis.
func (r RectF) Mirror(axis float64) RectF {
	return RectF{X: 2*axis - r.Right(), Y: r.Y, W: r.W, H: r.H}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Round converts a world coordinate to the nearest integer cell.
func Round(v float64) int {
	return int(math.Round(v))
}

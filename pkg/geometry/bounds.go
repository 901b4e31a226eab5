package geometry

import "math"

// Bounds is an axis-aligned rectangle in image space, anchored at the origin
type Bounds struct {
	Width  float64
	Height float64
}

// NewBounds creates bounds for an image of the given size
func NewBounds(width, height int) Bounds {
	return Bounds{Width: float64(width), Height: float64(height)}
}

// Empty reports whether the bounds cover no area
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Contains reports whether p lies inside the bounds (edges inclusive)
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Clamp moves p to the nearest point inside the bounds.
// Empty bounds leave the point untouched.
func (b Bounds) Clamp(p Point) Point {
	if b.Empty() {
		return p
	}
	return Point{
		X: math.Min(math.Max(p.X, 0), b.Width),
		Y: math.Min(math.Max(p.Y, 0), b.Height),
	}
}

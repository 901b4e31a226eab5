package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents a 2D coordinate in image space
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point as a gonum vector
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) r2.Vec {
	return r2.Sub(p.Vec(), other.Vec())
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return r2.Norm(p.Sub(other))
}

// Distance returns the Euclidean distance between p and q.
// NaN and infinite coordinates propagate into the result.
func Distance(p, q Point) float64 {
	return p.Distance(q)
}

// AngleBetween returns the signed angle in degrees that rotates u onto v,
// in the range (-180, 180]. The result is NaN when either vector is zero.
func AngleBetween(u, v r2.Vec) float64 {
	if r2.Norm(u) == 0 || r2.Norm(v) == 0 {
		return math.NaN()
	}
	return Degrees(math.Atan2(r2.Cross(u, v), r2.Dot(u, v)))
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Segment represents a straight line between two points
type Segment struct {
	A Point
	B Point
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

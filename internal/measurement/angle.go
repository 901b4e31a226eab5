package measurement

import (
	"fmt"
	"math"

	"github.com/philipparndt/biondi/pkg/analysis"
	"github.com/philipparndt/biondi/pkg/geometry"
	"gonum.org/v1/gonum/spatial/r2"
)

type angleStage int

const (
	awaitVertex angleStage = iota
	awaitRay
	tracking
	committed
)

// AngleTracker measures the angle between a fixed reference ray and a live ray.
//
// Click 1 sets the vertex, click 2 the end of the reference ray. Every move
// after that recomputes the angle to the pointer, and click 3 commits it.
// The angle is unwrapped across the atan2 branch cut, so sweeping the
// pointer around the vertex more than once yields values beyond 360°.
//
// Only the previous axis angle and the revolution count are carried between
// events, so events must be delivered in order.
type AngleTracker struct {
	stage  angleStage
	vertex geometry.Point
	rayEnd geometry.Point

	// working frame, fixed by the reference ray
	signX, signY float64
	offset       float64
	firstAngle   float64

	lastAxis    float64
	revolutions int
	lastSigned  float64
}

// AxisSigns returns the (x, y) multipliers of the working frame for a
// reference ray at the given angle in degrees.
func AxisSigns(reference float64) (float64, float64) {
	switch {
	case reference > 0 && reference <= 90:
		return -1, 1
	case reference > -90 && reference < 0:
		return -1, 1
	case reference > 90:
		return 1, -1
	default: // 0, or at/below -90
		return 1, -1
	}
}

// foldOffset returns the shift that moves a first angle outside [-90, 90]
// back into it, turning the frame half a revolution.
func foldOffset(first float64) float64 {
	switch {
	case first > 90:
		return -180
	case first < -90:
		return 180
	}
	return 0
}

// wrap maps a degree value in [-360, 360] into (-180, 180]
func wrap(deg float64) float64 {
	switch {
	case deg <= -180:
		return deg + 360
	case deg > 180:
		return deg - 360
	}
	return deg
}

// seamCrossing returns +1 or -1 when moving from prev to cur jumped across the
// ±180° seam of the axis angle, and 0 otherwise. A jump of more than half a
// turn between consecutive events can only be a wrap around the seam.
func seamCrossing(prev, cur float64) int {
	switch {
	case prev > 0 && cur < 0 && prev-cur > 180:
		return 1
	case prev < 0 && cur > 0 && cur-prev > 180:
		return -1
	}
	return 0
}

// Click advances the three-click protocol and returns the current angle
func (t *AngleTracker) Click(p geometry.Point) (float64, error) {
	switch t.stage {
	case awaitVertex:
		t.vertex = p
		t.stage = awaitRay
		return 0, nil
	case awaitRay:
		if p == t.vertex {
			return 0, fmt.Errorf("angle: reference ray has zero length: %w", ErrDegenerateGeometry)
		}
		t.setReference(p)
		t.stage = tracking
		return 0, nil
	case tracking:
		angle, err := t.Move(p)
		if err != nil {
			return 0, err
		}
		t.stage = committed
		return angle, nil
	}
	return t.value(), nil
}

func (t *AngleTracker) setReference(p geometry.Point) {
	dx := p.X - t.vertex.X
	dy := p.Y - t.vertex.Y
	reference := geometry.AngleBetween(r2.Vec{X: 1}, p.Sub(t.vertex))

	t.rayEnd = p
	t.signX, t.signY = AxisSigns(reference)
	raw := geometry.Degrees(math.Atan2(t.signY*dy, t.signX*dx))
	t.offset = foldOffset(raw)
	t.firstAngle = wrap(raw + t.offset)
	t.lastAxis = t.firstAngle
	t.revolutions = 0
	t.lastSigned = 0
}

// axisAngle returns the angle of the ray vertex->p in the working frame
func (t *AngleTracker) axisAngle(p geometry.Point) float64 {
	dx := p.X - t.vertex.X
	dy := p.Y - t.vertex.Y
	return wrap(geometry.Degrees(math.Atan2(t.signY*dy, t.signX*dx)) + t.offset)
}

// Move recomputes the live angle to p. Before the reference ray is set, or
// after the angle is committed, it returns the current value unchanged.
func (t *AngleTracker) Move(p geometry.Point) (float64, error) {
	if t.stage != tracking {
		return t.value(), nil
	}
	if p == t.vertex {
		return 0, fmt.Errorf("angle: pointer on the vertex: %w", ErrDegenerateGeometry)
	}

	axis := t.axisAngle(p)
	t.revolutions += seamCrossing(t.lastAxis, axis)
	t.lastAxis = axis
	t.lastSigned = axis + 360*float64(t.revolutions) - t.firstAngle

	return t.value(), nil
}

func (t *AngleTracker) value() float64 {
	return analysis.Round(math.Abs(t.lastSigned), analysis.AnglePrecision)
}

// Angle returns the committed angle, false until the third click
func (t *AngleTracker) Angle() (float64, bool) {
	if t.stage != committed {
		return 0, false
	}
	return t.value(), true
}

// Live reports whether pointer moves currently update the angle
func (t *AngleTracker) Live() bool {
	return t.stage == tracking
}

// Signed returns the unwrapped signed angle of the last update, unrounded
func (t *AngleTracker) Signed() float64 {
	return t.lastSigned
}

// Revolutions returns how many times the live ray has crossed the seam,
// signed by direction
func (t *AngleTracker) Revolutions() int {
	return t.revolutions
}

// Passed reports whether the live ray is on the far side of the seam
func (t *AngleTracker) Passed() bool {
	return t.revolutions != 0
}

// Vertex returns the vertex, false before the first click
func (t *AngleTracker) Vertex() (geometry.Point, bool) {
	return t.vertex, t.stage > awaitVertex
}

// Reset discards all points and rotation state
func (t *AngleTracker) Reset() {
	*t = AngleTracker{}
}

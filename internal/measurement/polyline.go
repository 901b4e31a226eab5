package measurement

import (
	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/biondi/pkg/geometry"
)

// PolylineAccumulator collects a series of connected segments, one per click.
// The zero value is an empty accumulator with no anchor.
type PolylineAccumulator struct {
	segments []geometry.Segment
	anchor   geometry.Point
	anchored bool
}

// NewPolylineAccumulator creates an empty accumulator
func NewPolylineAccumulator() *PolylineAccumulator {
	return &PolylineAccumulator{}
}

// Extend appends a segment from the current anchor to p and makes p the new
// anchor. The first call only sets the anchor.
func (a *PolylineAccumulator) Extend(p geometry.Point) {
	if a.anchored {
		a.segments = append(a.segments, geometry.Segment{A: a.anchor, B: p})
	}
	a.anchor = p
	a.anchored = true
}

// Length returns the sum of all segment lengths, 0 if there are none
func (a *PolylineAccumulator) Length() float64 {
	lengths := make([]float64, len(a.segments))
	for i, s := range a.segments {
		lengths[i] = s.Length()
	}
	return floats.Sum(lengths)
}

// Preview returns the length the polyline would have if p were clicked next.
// It is false before the first click.
func (a *PolylineAccumulator) Preview(p geometry.Point) (float64, bool) {
	if !a.anchored {
		return 0, false
	}
	return a.Length() + a.anchor.Distance(p), true
}

// Anchor returns the last clicked point
func (a *PolylineAccumulator) Anchor() (geometry.Point, bool) {
	return a.anchor, a.anchored
}

// Segments returns a copy of the committed segments
func (a *PolylineAccumulator) Segments() []geometry.Segment {
	out := make([]geometry.Segment, len(a.segments))
	copy(out, a.segments)
	return out
}

// Reset clears all segments and the anchor
func (a *PolylineAccumulator) Reset() {
	a.segments = nil
	a.anchored = false
	a.anchor = geometry.Point{}
}

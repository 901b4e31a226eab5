package measurement

import "github.com/philipparndt/biondi/pkg/geometry"

// DistanceProbe measures the straight distance between two clicks.
// After the second click the probe is locked until Reset.
type DistanceProbe struct {
	anchor   geometry.Point
	anchored bool
	measured float64
	locked   bool
}

// Click records a probe point and reports whether it changed the probe
func (d *DistanceProbe) Click(p geometry.Point) bool {
	switch {
	case d.locked:
		return false
	case !d.anchored:
		d.anchor = p
		d.anchored = true
	default:
		d.measured = d.anchor.Distance(p)
		d.locked = true
	}
	return true
}

// Measured returns the committed distance, false before the second click
func (d *DistanceProbe) Measured() (float64, bool) {
	return d.measured, d.locked
}

// Preview returns the distance from the anchor to p while the probe waits
// for its second click. It is advisory and never becomes the measured value.
func (d *DistanceProbe) Preview(p geometry.Point) (float64, bool) {
	if !d.anchored || d.locked {
		return 0, false
	}
	return d.anchor.Distance(p), true
}

// Anchor returns the first clicked point
func (d *DistanceProbe) Anchor() (geometry.Point, bool) {
	return d.anchor, d.anchored
}

// Reset re-arms the two-click protocol
func (d *DistanceProbe) Reset() {
	*d = DistanceProbe{}
}

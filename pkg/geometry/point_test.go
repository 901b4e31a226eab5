package geometry

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	points := []Point{
		NewPoint(0, 0),
		NewPoint(-3.5, 12),
		NewPoint(1e6, -2e6),
		NewPoint(0.001, 0.002),
	}

	for _, p := range points {
		if d := Distance(p, p); d != 0 {
			t.Errorf("Distance(p, p) failed for %v: expected 0, got %v", p, d)
		}
		for _, q := range points {
			if Distance(p, q) != Distance(q, p) {
				t.Errorf("Distance not symmetric for %v, %v: %v vs %v", p, q, Distance(p, q), Distance(q, p))
			}
		}
	}
}

func TestDistancePropagatesNaN(t *testing.T) {
	d := Distance(NewPoint(math.NaN(), 0), NewPoint(1, 1))
	if !math.IsNaN(d) {
		t.Errorf("Distance failed: expected NaN, got %v", d)
	}
}

func TestAngleBetween(t *testing.T) {
	x := NewPoint(1, 0).Vec()
	y := NewPoint(0, 1).Vec()

	if a := AngleBetween(x, y); math.Abs(a-90) > 1e-10 {
		t.Errorf("AngleBetween failed: expected 90, got %v", a)
	}
	if a := AngleBetween(y, x); math.Abs(a+90) > 1e-10 {
		t.Errorf("AngleBetween failed: expected -90, got %v", a)
	}
	if a := AngleBetween(x, NewPoint(-2, 0).Vec()); math.Abs(a-180) > 1e-10 {
		t.Errorf("AngleBetween failed: expected 180, got %v", a)
	}
}

func TestAngleBetweenZeroVector(t *testing.T) {
	if a := AngleBetween(NewPoint(0, 0).Vec(), NewPoint(1, 0).Vec()); !math.IsNaN(a) {
		t.Errorf("AngleBetween failed: expected NaN for zero vector, got %v", a)
	}
}

func TestSegmentLength(t *testing.T) {
	s := Segment{A: NewPoint(3, 0), B: NewPoint(3, 4)}

	if math.Abs(s.Length()-4) > 1e-10 {
		t.Errorf("Length failed: expected 4, got %v", s.Length())
	}
}

func TestBoundsClamp(t *testing.T) {
	b := NewBounds(100, 50)

	clamped := b.Clamp(NewPoint(-5, 70))
	expected := NewPoint(0, 50)
	if clamped != expected {
		t.Errorf("Clamp failed: expected %v, got %v", expected, clamped)
	}

	inside := NewPoint(10, 10)
	if b.Clamp(inside) != inside {
		t.Errorf("Clamp moved a point that was already inside: %v", b.Clamp(inside))
	}
	if !b.Contains(inside) {
		t.Errorf("Contains failed for %v", inside)
	}
}

func TestEmptyBoundsDoNotClamp(t *testing.T) {
	var b Bounds
	p := NewPoint(-5, 500)

	if b.Clamp(p) != p {
		t.Errorf("Clamp with empty bounds failed: expected %v, got %v", p, b.Clamp(p))
	}
}

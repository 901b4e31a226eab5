package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/biondi/pkg/geometry"
)

func TestLogRatio(t *testing.T) {
	ratio, ok := LogRatio(100, 10)
	if !ok {
		t.Fatal("LogRatio failed: expected ok")
	}
	if math.Abs(ratio-1.0) > 1e-12 {
		t.Errorf("LogRatio failed: expected 1.0, got %v", ratio)
	}
}

func TestLogRatioUndefined(t *testing.T) {
	if _, ok := LogRatio(100, 0); ok {
		t.Error("LogRatio with zero distance should not be ok")
	}
	if _, ok := LogRatio(0, 10); ok {
		t.Error("LogRatio with zero length should not be ok")
	}
}

func TestRound(t *testing.T) {
	if r := Round(90.000000001, AnglePrecision); r != 90 {
		t.Errorf("Round failed: expected 90, got %v", r)
	}
	if r := Round(12.345678, AnglePrecision); math.Abs(r-12.3457) > 1e-12 {
		t.Errorf("Round failed: expected 12.3457, got %v", r)
	}
}

func TestFormatters(t *testing.T) {
	if s := FormatAngle(270, 4); s != "270.0000°" {
		t.Errorf("FormatAngle failed: got %q", s)
	}
	if s := FormatMeasurement(7, 2, ""); s != "7.00 px" {
		t.Errorf("FormatMeasurement failed: got %q", s)
	}
	if s := FormatPoint(geometry.NewPoint(3, 4.5)); s != "(3.00, 4.50)" {
		t.Errorf("FormatPoint failed: got %q", s)
	}
}

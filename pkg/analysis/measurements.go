package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/biondi/pkg/geometry"
)

// AnglePrecision is the number of decimal digits angles are reported with
const AnglePrecision = 4

// LogRatio returns log10(length / distance).
// ok is false when the ratio is undefined: a zero distance, or any input
// that would make the logarithm infinite or NaN.
func LogRatio(length, distance float64) (ratio float64, ok bool) {
	if distance == 0 {
		return 0, false
	}
	ratio = math.Log10(length / distance)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}
	return ratio, true
}

// Round rounds v to the given number of decimal digits
func Round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// FormatAngle formats an angle in degrees
func FormatAngle(value float64, digits int) string {
	return fmt.Sprintf("%.*f°", digits, value)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, digits int, unit string) string {
	if unit == "" {
		unit = "px"
	}
	return fmt.Sprintf("%.*f %s", digits, value, unit)
}

// FormatPoint formats an image-space point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

package measurement

import "errors"

var (
	// ErrDegenerateGeometry is returned when a point coincides with the vertex
	// and the requested angle is undefined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrIncompleteMeasurement is returned by Finalize while a required
	// sub-measurement is still missing. The session stays usable.
	ErrIncompleteMeasurement = errors.New("incomplete measurement")

	// ErrInvalidRatio is returned when log10(length/distance) is undefined.
	ErrInvalidRatio = errors.New("invalid ratio")

	// ErrUnknownTool is returned for a tool the session does not have.
	ErrUnknownTool = errors.New("unknown tool")
)

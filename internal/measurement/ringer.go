package measurement

import (
	"fmt"
	"log"

	"github.com/philipparndt/biondi/pkg/analysis"
	"github.com/philipparndt/biondi/pkg/geometry"
)

// RingerSession measures a ring body: a two-point distance and a polyline
// length, combined into log10(length/distance).
type RingerSession struct {
	tool   Tool
	probe  DistanceProbe
	length PolylineAccumulator
}

// NewRingerSession creates a session with the distance probe active
func NewRingerSession() *RingerSession {
	return &RingerSession{tool: ToolDistance}
}

// Kind implements Session
func (s *RingerSession) Kind() Kind { return KindRinger }

// Tool returns the active tool
func (s *RingerSession) Tool() Tool { return s.tool }

// SetTool activates a tool. The other tool keeps its state.
func (s *RingerSession) SetTool(tool Tool) error {
	if err := s.check(tool); err != nil {
		return err
	}
	s.tool = tool
	return nil
}

func (s *RingerSession) check(tool Tool) error {
	if tool != ToolDistance && tool != ToolLength {
		return fmt.Errorf("ringer has no %v tool: %w", tool, ErrUnknownTool)
	}
	return nil
}

// Click routes a click to the active tool
func (s *RingerSession) Click(p geometry.Point) error {
	switch s.tool {
	case ToolDistance:
		if !s.probe.Click(p) {
			log.Printf("ringer: distance locked, ignoring click at %s", analysis.FormatPoint(p))
		}
	case ToolLength:
		s.length.Extend(p)
	}
	return nil
}

// Move returns the active tool's preview for the pointer at p
func (s *RingerSession) Move(p geometry.Point) (Reading, error) {
	r := Reading{Tool: s.tool}
	switch s.tool {
	case ToolDistance:
		if d, ok := s.probe.Measured(); ok {
			r.Value, r.Valid = d, true
		} else {
			r.Value, r.Valid = s.probe.Preview(p)
		}
	case ToolLength:
		r.Value, r.Valid = s.length.Preview(p)
	}
	return r, nil
}

// Reset clears one tool
func (s *RingerSession) Reset(tool Tool) error {
	if err := s.check(tool); err != nil {
		return err
	}
	if tool == ToolDistance {
		s.probe.Reset()
	} else {
		s.length.Reset()
	}
	return nil
}

// ClearAll resets both tools and activates the distance probe
func (s *RingerSession) ClearAll() {
	s.probe.Reset()
	s.length.Reset()
	s.tool = ToolDistance
}

// Probe returns the session's distance probe
func (s *RingerSession) Probe() *DistanceProbe { return &s.probe }

// Polyline returns the session's length accumulator
func (s *RingerSession) Polyline() *PolylineAccumulator { return &s.length }

// Measure validates the session and computes its result without changing it
func (s *RingerSession) Measure() (RingerResult, error) {
	distance, ok := s.probe.Measured()
	if !ok {
		return RingerResult{}, fmt.Errorf("ringer: distance not measured: %w", ErrIncompleteMeasurement)
	}
	length := s.length.Length()
	if length <= 0 {
		return RingerResult{}, fmt.Errorf("ringer: length not measured: %w", ErrIncompleteMeasurement)
	}

	ratio, ok := analysis.LogRatio(length, distance)
	if !ok {
		return RingerResult{}, fmt.Errorf("ringer: log10(%.4f/%.4f): %w", length, distance, ErrInvalidRatio)
	}

	return RingerResult{Distance: distance, Length: length, LogRatio: ratio}, nil
}

// Finalize implements Session
func (s *RingerSession) Finalize() (Result, error) {
	r, err := s.Measure()
	if err != nil {
		return nil, err
	}
	return r, nil
}

package measurement

import (
	"fmt"
	"strings"

	"github.com/philipparndt/biondi/pkg/geometry"
)

// AnglerSession measures an angle and two prong lengths
type AnglerSession struct {
	tool   Tool
	angle  AngleTracker
	prong1 PolylineAccumulator
	prong2 PolylineAccumulator
}

// NewAnglerSession creates a session with the angle tracker active
func NewAnglerSession() *AnglerSession {
	return &AnglerSession{tool: ToolAngle}
}

// Kind implements Session
func (s *AnglerSession) Kind() Kind { return KindAngler }

// Tool returns the active tool
func (s *AnglerSession) Tool() Tool { return s.tool }

// SetTool activates a tool. The other tools keep their state.
func (s *AnglerSession) SetTool(tool Tool) error {
	if err := s.check(tool); err != nil {
		return err
	}
	s.tool = tool
	return nil
}

func (s *AnglerSession) check(tool Tool) error {
	switch tool {
	case ToolAngle, ToolProng1, ToolProng2:
		return nil
	}
	return fmt.Errorf("angler has no %v tool: %w", tool, ErrUnknownTool)
}

// Click routes a click to the active tool
func (s *AnglerSession) Click(p geometry.Point) error {
	switch s.tool {
	case ToolAngle:
		_, err := s.angle.Click(p)
		return err
	case ToolProng1:
		s.prong1.Extend(p)
	case ToolProng2:
		s.prong2.Extend(p)
	}
	return nil
}

// Move updates the live angle or returns the active prong's preview
func (s *AnglerSession) Move(p geometry.Point) (Reading, error) {
	r := Reading{Tool: s.tool}
	switch s.tool {
	case ToolAngle:
		v, err := s.angle.Move(p)
		if err != nil {
			return r, err
		}
		_, done := s.angle.Angle()
		r.Value, r.Valid = v, done || s.angle.Live()
	case ToolProng1:
		r.Value, r.Valid = s.prong1.Preview(p)
	case ToolProng2:
		r.Value, r.Valid = s.prong2.Preview(p)
	}
	return r, nil
}

// Reset clears one tool without touching the others
func (s *AnglerSession) Reset(tool Tool) error {
	if err := s.check(tool); err != nil {
		return err
	}
	switch tool {
	case ToolAngle:
		s.angle.Reset()
	case ToolProng1:
		s.prong1.Reset()
	case ToolProng2:
		s.prong2.Reset()
	}
	return nil
}

// ClearAll resets every tool and activates the angle tracker
func (s *AnglerSession) ClearAll() {
	s.angle.Reset()
	s.prong1.Reset()
	s.prong2.Reset()
	s.tool = ToolAngle
}

// Tracker returns the session's angle tracker
func (s *AnglerSession) Tracker() *AngleTracker { return &s.angle }

// Prong returns the accumulator for prong 1 or 2
func (s *AnglerSession) Prong(n int) *PolylineAccumulator {
	if n == 2 {
		return &s.prong2
	}
	return &s.prong1
}

// Measure validates the session and computes its result without changing it
func (s *AnglerSession) Measure() (AnglerResult, error) {
	angle, ok := s.angle.Angle()
	prong1 := s.prong1.Length()
	prong2 := s.prong2.Length()

	var missing []string
	if !ok {
		missing = append(missing, "angle")
	}
	if prong1 <= 0 {
		missing = append(missing, "prong1")
	}
	if prong2 <= 0 {
		missing = append(missing, "prong2")
	}
	if len(missing) > 0 {
		return AnglerResult{}, fmt.Errorf("angler: missing %s: %w", strings.Join(missing, ", "), ErrIncompleteMeasurement)
	}

	return AnglerResult{Angle: angle, Prong1Length: prong1, Prong2Length: prong2}, nil
}

// Finalize implements Session
func (s *AnglerSession) Finalize() (Result, error) {
	r, err := s.Measure()
	if err != nil {
		return nil, err
	}
	return r, nil
}

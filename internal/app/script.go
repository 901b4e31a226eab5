package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Event is one recorded operator action. Exactly one field is set.
type Event struct {
	Click []float64 `yaml:"click,omitempty,flow"`
	Move  []float64 `yaml:"move,omitempty,flow"`
	Tool  string    `yaml:"tool,omitempty"`
	Reset string    `yaml:"reset,omitempty"`
	Clear bool      `yaml:"clear,omitempty"`
	OK    bool      `yaml:"ok,omitempty"`
}

// Script is a recorded measurement window
type Script struct {
	Events []Event `yaml:"events"`
}

// LoadScript decodes a YAML script
func LoadScript(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, ev := range s.Events {
		if err := ev.validate(); err != nil {
			return Script{}, fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (ev Event) validate() error {
	set := 0
	for _, b := range []bool{ev.Click != nil, ev.Move != nil, ev.Tool != "", ev.Reset != "", ev.Clear, ev.OK} {
		if b {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one action, got %d", set)
	}
	if ev.Click != nil && len(ev.Click) != 2 {
		return fmt.Errorf("click needs [x, y], got %v", ev.Click)
	}
	if ev.Move != nil && len(ev.Move) != 2 {
		return fmt.Errorf("move needs [x, y], got %v", ev.Move)
	}
	return nil
}

// Replay feeds the script to e in order and returns the first successfully
// finalized result. Rejected geometry and premature finalize attempts are
// logged and skipped, as an operator would correct them and continue.
func Replay(ctx context.Context, e *Editor, s Script) (measurement.Result, error) {
	var lastErr error

	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if ev.OK {
			result, err := e.Finalize(ctx)
			if err == nil {
				return result, nil
			}
			if !recoverable(err) {
				return nil, err
			}
			log.Printf("app: event %d: %v", i+1, err)
			lastErr = err
			continue
		}

		if err := apply(e, ev); err != nil {
			if !recoverable(err) {
				return nil, fmt.Errorf("event %d: %w", i+1, err)
			}
			log.Printf("app: event %d: %v", i+1, err)
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("script ended without ok: %w", measurement.ErrIncompleteMeasurement)
}

func apply(e *Editor, ev Event) error {
	switch {
	case ev.Click != nil:
		return e.Click(geometry.NewPoint(ev.Click[0], ev.Click[1]))
	case ev.Move != nil:
		_, err := e.Move(geometry.NewPoint(ev.Move[0], ev.Move[1]))
		return err
	case ev.Tool != "":
		tool, err := measurement.ParseTool(ev.Tool)
		if err != nil {
			return err
		}
		return e.SetTool(tool)
	case ev.Reset != "":
		tool, err := measurement.ParseTool(ev.Reset)
		if err != nil {
			return err
		}
		return e.Reset(tool)
	case ev.Clear:
		return e.ClearAll()
	}
	return nil
}

func recoverable(err error) bool {
	return errors.Is(err, measurement.ErrDegenerateGeometry) ||
		errors.Is(err, measurement.ErrIncompleteMeasurement) ||
		errors.Is(err, measurement.ErrInvalidRatio)
}

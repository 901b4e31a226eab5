package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/philipparndt/biondi/internal/capture"
	"github.com/philipparndt/biondi/internal/measurement"
	"github.com/philipparndt/biondi/internal/store"
	"github.com/philipparndt/biondi/pkg/analysis"
	"github.com/philipparndt/biondi/pkg/geometry"
)

// ErrClosed is returned for events sent to a finalized or cancelled editor
var ErrClosed = errors.New("editor closed")

// Editor is one measurement window: a single session bound to one body
// record and the capture it was taken from. Pointer coordinates are clamped
// into the capture before they reach the session.
type Editor struct {
	ID       uuid.UUID
	Record   int64
	Location store.Location

	session measurement.Session
	store   store.AnnotationStore
	bounds  geometry.Bounds
	closed  bool
}

// NewEditor opens a session of the given kind for a record
func NewEditor(ctx context.Context, kind measurement.Kind, st store.AnnotationStore, record int64, src capture.Source) (*Editor, error) {
	session, err := measurement.NewSession(kind)
	if err != nil {
		return nil, err
	}

	loc, err := st.Location(ctx, record)
	if err != nil {
		return nil, err
	}

	region, err := src.Capture(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture body %d: %w", record, err)
	}

	e := &Editor{
		ID:       uuid.New(),
		Record:   record,
		Location: loc,
		session:  session,
		store:    st,
		bounds:   region.Bounds(),
	}
	log.Printf("app: %s opened %v for body %d at %s (%dx%d)",
		e.ID, kind, record, e.Title(), region.Width, region.Height)
	return e, nil
}

// Title labels the window with the body's grid location
func (e *Editor) Title() string {
	return fmt.Sprintf("%s (%d, %d)", e.Location.GridID, e.Location.X, e.Location.Y)
}

// Session returns the editor's session
func (e *Editor) Session() measurement.Session { return e.session }

// Bounds returns the coordinate space of the capture
func (e *Editor) Bounds() geometry.Bounds { return e.bounds }

// Closed reports whether the editor was finalized or cancelled
func (e *Editor) Closed() bool { return e.closed }

// SetTool switches the active instrument
func (e *Editor) SetTool(tool measurement.Tool) error {
	if e.closed {
		return ErrClosed
	}
	return e.session.SetTool(tool)
}

// Click delivers a click at p
func (e *Editor) Click(p geometry.Point) error {
	if e.closed {
		return ErrClosed
	}
	p = e.bounds.Clamp(p)
	if err := e.session.Click(p); err != nil {
		log.Printf("app: %s rejected click at %s: %v", e.ID, analysis.FormatPoint(p), err)
		return err
	}
	return nil
}

// Move delivers a pointer move to p and returns the live reading
func (e *Editor) Move(p geometry.Point) (measurement.Reading, error) {
	if e.closed {
		return measurement.Reading{}, ErrClosed
	}
	return e.session.Move(e.bounds.Clamp(p))
}

// Reset clears one instrument
func (e *Editor) Reset(tool measurement.Tool) error {
	if e.closed {
		return ErrClosed
	}
	return e.session.Reset(tool)
}

// ClearAll clears every instrument
func (e *Editor) ClearAll() error {
	if e.closed {
		return ErrClosed
	}
	e.session.ClearAll()
	return nil
}

// Finalize computes the session result and writes it to the record. On any
// error the editor stays open so the operator can correct the input.
func (e *Editor) Finalize(ctx context.Context) (measurement.Result, error) {
	if e.closed {
		return nil, ErrClosed
	}

	result, err := e.session.Finalize()
	if err != nil {
		return nil, err
	}

	fields, err := store.FieldsFor(result)
	if err != nil {
		return nil, err
	}
	if err := e.store.UpdateMeasurements(ctx, e.Record, fields); err != nil {
		log.Printf("app: %s failed to save body %d: %v", e.ID, e.Record, err)
		return nil, err
	}

	e.closed = true
	log.Printf("app: %s saved %v result for body %d", e.ID, result.Kind(), e.Record)
	return result, nil
}

// Cancel discards the session without writing anything
func (e *Editor) Cancel() {
	if !e.closed {
		log.Printf("app: %s cancelled", e.ID)
	}
	e.closed = true
}

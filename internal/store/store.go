package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/philipparndt/biondi/internal/measurement"
)

// ErrNotFound is returned when no body record has the requested identifier
var ErrNotFound = errors.New("record not found")

// Location is the grid position of an annotated body. It only labels the
// editing window and never enters a computation.
type Location struct {
	GridID string
	X      int
	Y      int
}

// Fields is the set of measurement columns written for one record.
// A nil field is stored as NULL.
type Fields struct {
	Angle   *float64
	Log     *float64
	DProng1 *float64
	LProng2 *float64
}

// AnnotationStore is the persistence boundary for body records
type AnnotationStore interface {
	Location(ctx context.Context, id int64) (Location, error)
	// UpdateMeasurements replaces all measurement fields of one record in a single write
	UpdateMeasurements(ctx context.Context, id int64, fields Fields) error
}

// Record is a complete row of the bodies table
type Record struct {
	Time               int64
	AnnotatorName      string
	BodyName           string
	BodyNumber         int
	X                  int
	Y                  int
	GridID             string
	GR                 bool
	MAF                bool
	MP                 bool
	Unsure             bool
	Notes              string
	BodyFileName       string
	AnnotationFileName string
	Fields
}

// Location returns the record's grid position
func (r Record) Location() Location {
	return Location{GridID: r.GridID, X: r.X, Y: r.Y}
}

// FieldsFor maps a session result onto the legacy column names. Ringer
// results reuse the prong columns for the raw distance and polyline length.
func FieldsFor(result measurement.Result) (Fields, error) {
	switch r := result.(type) {
	case measurement.AnglerResult:
		return Fields{
			Angle:   ptr(r.Angle),
			DProng1: ptr(r.Prong1Length),
			LProng2: ptr(r.Prong2Length),
		}, nil
	case measurement.RingerResult:
		return Fields{
			Log:     ptr(r.LogRatio),
			DProng1: ptr(r.Distance),
			LProng2: ptr(r.Length),
		}, nil
	}
	return Fields{}, fmt.Errorf("unsupported result type %T", result)
}

func ptr(v float64) *float64 {
	return &v
}

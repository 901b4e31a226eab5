package store

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/philipparndt/biondi/internal/measurement"
)

func body(id int64) Record {
	return Record{
		Time:          id,
		AnnotatorName: "ana",
		BodyName:      "biondi",
		BodyNumber:    3,
		X:             120,
		Y:             45,
		GridID:        "B7",
		GR:            true,
		Notes:         "faint",
	}
}

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "body_database.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return s
}

func equal(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return math.Abs(*a-*b) < 1e-12
}

func TestFieldsForAngler(t *testing.T) {
	f, err := FieldsFor(measurement.AnglerResult{Angle: 123.4567, Prong1Length: 10, Prong2Length: 20})
	if err != nil {
		t.Fatal(err)
	}
	if f.Log != nil {
		t.Errorf("angler result should not set LOG, got %v", *f.Log)
	}
	if !equal(f.Angle, ptr(123.4567)) || !equal(f.DProng1, ptr(10)) || !equal(f.LProng2, ptr(20)) {
		t.Errorf("FieldsFor failed: got %+v", f)
	}
}

func TestFieldsForRinger(t *testing.T) {
	f, err := FieldsFor(measurement.RingerResult{Distance: 10, Length: 100, LogRatio: 1})
	if err != nil {
		t.Fatal(err)
	}
	if f.Angle != nil {
		t.Errorf("ringer result should not set ANGLE, got %v", *f.Angle)
	}
	if !equal(f.Log, ptr(1)) || !equal(f.DProng1, ptr(10)) || !equal(f.LProng2, ptr(100)) {
		t.Errorf("FieldsFor failed: got %+v", f)
	}
}

func TestFieldsForNil(t *testing.T) {
	if _, err := FieldsFor(nil); err == nil {
		t.Error("expected an error for a nil result")
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if err := s.Insert(ctx, body(1700000000)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	loc, err := s.Location(ctx, 1700000000)
	if err != nil {
		t.Fatalf("Location failed: %v", err)
	}
	if loc != (Location{GridID: "B7", X: 120, Y: 45}) {
		t.Errorf("Location failed: got %+v", loc)
	}

	r, err := s.Get(ctx, 1700000000)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r.BodyName != "biondi" || !r.GR || r.MAF || r.Notes != "faint" {
		t.Errorf("Get failed: got %+v", r)
	}
	if r.Angle != nil || r.Log != nil || r.DProng1 != nil || r.LProng2 != nil {
		t.Errorf("new record should have no measurements: %+v", r.Fields)
	}
}

func TestSQLiteUpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	s.Insert(ctx, body(42))

	angler, _ := FieldsFor(measurement.AnglerResult{Angle: 370.5, Prong1Length: 5, Prong2Length: 7})
	if err := s.UpdateMeasurements(ctx, 42, angler); err != nil {
		t.Fatalf("UpdateMeasurements failed: %v", err)
	}

	ringer, _ := FieldsFor(measurement.RingerResult{Distance: 10, Length: 100, LogRatio: 1})
	if err := s.UpdateMeasurements(ctx, 42, ringer); err != nil {
		t.Fatalf("UpdateMeasurements failed: %v", err)
	}

	r, err := s.Get(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if r.Angle != nil {
		t.Errorf("ANGLE should be cleared by a ringer update, got %v", *r.Angle)
	}
	if !equal(r.Log, ptr(1)) || !equal(r.DProng1, ptr(10)) || !equal(r.LProng2, ptr(100)) {
		t.Errorf("UpdateMeasurements failed: got %+v", r.Fields)
	}
}

func TestSQLiteNotFound(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if _, err := s.Location(ctx, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("Location: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Get(ctx, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := s.UpdateMeasurements(ctx, 7, Fields{Angle: ptr(1)}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateMeasurements: expected ErrNotFound, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(body(5))

	loc, err := m.Location(ctx, 5)
	if err != nil || loc.GridID != "B7" {
		t.Fatalf("Location failed: %+v, %v", loc, err)
	}

	if err := m.UpdateMeasurements(ctx, 5, Fields{Log: ptr(0.5)}); err != nil {
		t.Fatal(err)
	}
	r, _ := m.Get(ctx, 5)
	if !equal(r.Log, ptr(0.5)) || r.Angle != nil {
		t.Errorf("UpdateMeasurements failed: got %+v", r.Fields)
	}

	if err := m.UpdateMeasurements(ctx, 6, Fields{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

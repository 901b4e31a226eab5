package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an AnnotationStore held in a map, for tests and dry runs
type Memory struct {
	mu      sync.Mutex
	records map[int64]Record
}

// NewMemory creates a store holding the given records
func NewMemory(records ...Record) *Memory {
	m := &Memory{records: make(map[int64]Record)}
	for _, r := range records {
		m.records[r.Time] = r
	}
	return m
}

// Insert adds or replaces a record
func (m *Memory) Insert(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.Time] = r
	return nil
}

// Get returns a copy of a record
func (m *Memory) Get(_ context.Context, id int64) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, fmt.Errorf("body %d: %w", id, ErrNotFound)
	}
	return r, nil
}

// Location implements AnnotationStore
func (m *Memory) Location(ctx context.Context, id int64) (Location, error) {
	r, err := m.Get(ctx, id)
	if err != nil {
		return Location{}, err
	}
	return r.Location(), nil
}

// UpdateMeasurements implements AnnotationStore
func (m *Memory) UpdateMeasurements(_ context.Context, id int64, fields Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return fmt.Errorf("body %d: %w", id, ErrNotFound)
	}
	r.Fields = fields
	m.records[id] = r
	return nil
}

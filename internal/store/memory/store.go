// Package memory provides an in-memory cache store, used for tests and
// single-process deployments that don't need durability.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/davidbz/markl/internal/domain"
)

// Store is a thread-safe in-memory record store.
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.Record
	order   []string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		records: make(map[string]*domain.Record),
		order:   nil,
	}
}

// Put inserts a new record.
func (s *Store) Put(_ context.Context, record *domain.Record) error {
	if record == nil {
		return fmt.Errorf("%w: record cannot be nil", domain.ErrStorage)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.ID]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, record.ID)
	}

	s.records[record.ID] = copyRecord(record)
	s.order = append(s.order, record.ID)
	return nil
}

// Get returns the record for id.
func (s *Store) Get(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.records[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return copyRecord(record), nil
}

// IncrementHit atomically increments the record's hit count.
func (s *Store) IncrementHit(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[id]
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	record.HitCount++
	return nil
}

// Delete removes a record.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// All returns every record in insertion order.
func (s *Store) All(_ context.Context) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*domain.Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, copyRecord(s.records[id]))
	}
	return records, nil
}

// copyRecord returns a deep copy so callers cannot mutate stored state.
func copyRecord(record *domain.Record) *domain.Record {
	clone := *record
	clone.Embedding = make([]float64, len(record.Embedding))
	copy(clone.Embedding, record.Embedding)
	return &clone
}

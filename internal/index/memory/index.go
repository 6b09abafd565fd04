// Package memory provides an exact linear-scan vector index. It is the
// correctness baseline: approximate backends must match its contract
// (cosine similarity, deterministic tie-break) even if not its results for
// every vector.
package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/davidbz/markl/internal/domain"
)

type entry struct {
	id        string
	embedding []float64
	norm      float64
	createdAt time.Time
	seq       int
}

// Index is a thread-safe in-memory vector index.
type Index struct {
	mu        sync.RWMutex
	dimension int
	entries   []entry
	ids       map[string]struct{}
}

// New creates an index for vectors of the given dimension.
func New(dimension int) *Index {
	return &Index{
		dimension: dimension,
		entries:   nil,
		ids:       make(map[string]struct{}),
	}
}

// Insert adds a vector under a record id.
func (x *Index) Insert(_ context.Context, id string, embedding []float64, createdAt time.Time) error {
	if len(embedding) != x.dimension {
		return fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(embedding), x.dimension)
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	if _, exists := x.ids[id]; exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
	}

	// Copy so later mutation of the caller's slice cannot corrupt the index.
	vec := make([]float64, len(embedding))
	copy(vec, embedding)

	x.ids[id] = struct{}{}
	x.entries = append(x.entries, entry{
		id:        id,
		embedding: vec,
		norm:      norm(vec),
		createdAt: createdAt,
		seq:       len(x.entries),
	})
	return nil
}

// SearchNearest returns the highest-cosine-similarity entry, or nil when
// the index is empty. Equal similarities resolve to the earliest createdAt,
// then the earliest insertion, so repeated searches are deterministic.
func (x *Index) SearchNearest(_ context.Context, embedding []float64) (*domain.Match, error) {
	if len(embedding) != x.dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(embedding), x.dimension)
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	if len(x.entries) == 0 {
		return nil, nil //nolint:nilnil // Absence of a match is not an error
	}

	queryNorm := norm(embedding)

	best := x.entries[0]
	bestSim := cosine(embedding, queryNorm, best)
	for _, e := range x.entries[1:] {
		sim := cosine(embedding, queryNorm, e)
		if betterThan(sim, e, bestSim, best) {
			best, bestSim = e, sim
		}
	}

	return &domain.Match{ID: best.id, Similarity: bestSim}, nil
}

// Len returns the number of indexed vectors.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

// betterThan reports whether candidate (sim, e) beats the current best.
func betterThan(sim float64, e entry, bestSim float64, best entry) bool {
	if sim != bestSim {
		return sim > bestSim
	}
	if !e.createdAt.Equal(best.createdAt) {
		return e.createdAt.Before(best.createdAt)
	}
	return e.seq < best.seq
}

// cosine computes the normalized dot product of the query against an entry.
func cosine(query []float64, queryNorm float64, e entry) float64 {
	if queryNorm == 0 || e.norm == 0 {
		return 0
	}

	var dot float64
	for i, v := range query {
		dot += v * e.embedding[i]
	}
	return dot / (queryNorm * e.norm)
}

func norm(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

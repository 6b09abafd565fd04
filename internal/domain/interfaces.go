package domain

import (
	"context"
	"time"
)

// Embedder maps text to a fixed-length vector. Implementations are
// deterministic per model version.
type Embedder interface {
	// Embed creates a vector embedding from text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// Dimension returns the vector dimension.
	Dimension() int

	// Version identifies the embedding model. Records are tagged with it
	// so that vectors from different models never mix in one index.
	Version() string
}

// Answerer produces an answer for a question. Invoked only on a cache miss;
// may be slow, so callers bound it with a context deadline.
type Answerer interface {
	// Generate produces an answer for the question.
	Generate(ctx context.Context, question string) (string, error)

	// Name returns the answerer identifier.
	Name() string
}

// VectorIndex stores record embeddings and answers nearest-neighbor queries
// under cosine similarity.
type VectorIndex interface {
	// Insert adds a vector under a record id. Returns ErrDimensionMismatch
	// when the embedding length disagrees with the index dimension and
	// ErrDuplicateID when the id is already present.
	Insert(ctx context.Context, id string, embedding []float64, createdAt time.Time) error

	// SearchNearest returns the single highest-similarity match, or nil
	// when the index is empty. Ties resolve to the earliest created_at,
	// then the earliest insertion, so results are deterministic.
	SearchNearest(ctx context.Context, embedding []float64) (*Match, error)
}

// CacheStore is the authoritative mapping from record id to Record.
type CacheStore interface {
	// Put inserts a new record. Returns ErrDuplicateID when the id is
	// already present.
	Put(ctx context.Context, record *Record) error

	// Get returns the record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// IncrementHit atomically increments the record's hit count.
	IncrementHit(ctx context.Context, id string) error

	// Delete removes a record. Used only to compensate a failed index
	// insert so the two stores never disagree.
	Delete(ctx context.Context, id string) error

	// All returns every record in insertion order. Used once at startup
	// to warm the vector index.
	All(ctx context.Context) ([]*Record, error)
}

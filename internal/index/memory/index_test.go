package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/index/memory"
)

func TestIndex_Insert_DimensionMismatch(t *testing.T) {
	index := memory.New(3)

	err := index.Insert(context.Background(), "rec-1", []float64{1, 0}, time.Now())
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestIndex_Insert_DuplicateID(t *testing.T) {
	ctx := context.Background()
	index := memory.New(2)

	require.NoError(t, index.Insert(ctx, "rec-1", []float64{1, 0}, time.Now()))

	err := index.Insert(ctx, "rec-1", []float64{0, 1}, time.Now())
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestIndex_SearchNearest_EmptyIndex(t *testing.T) {
	index := memory.New(2)

	match, err := index.SearchNearest(context.Background(), []float64{1, 0})
	require.NoError(t, err)
	require.Nil(t, match)
}

func TestIndex_SearchNearest_DimensionMismatch(t *testing.T) {
	index := memory.New(2)

	match, err := index.SearchNearest(context.Background(), []float64{1, 0, 0})
	require.ErrorIs(t, err, domain.ErrDimensionMismatch)
	require.Nil(t, match)
}

func TestIndex_SearchNearest_ExactMatchScoresOne(t *testing.T) {
	ctx := context.Background()
	index := memory.New(3)

	require.NoError(t, index.Insert(ctx, "rec-1", []float64{0.5, 0.5, 0}, time.Now()))
	require.NoError(t, index.Insert(ctx, "rec-2", []float64{0, 0, 1}, time.Now()))

	match, err := index.SearchNearest(ctx, []float64{0.5, 0.5, 0})
	require.NoError(t, err)
	require.NotNil(t, match)
	require.Equal(t, "rec-1", match.ID)
	require.InEpsilon(t, 1.0, match.Similarity, 1e-9)
}

func TestIndex_SearchNearest_ScaleInvariant(t *testing.T) {
	// Cosine similarity depends on direction only; a scaled copy of a
	// stored vector still scores 1.0.
	ctx := context.Background()
	index := memory.New(2)

	require.NoError(t, index.Insert(ctx, "rec-1", []float64{1, 1}, time.Now()))

	match, err := index.SearchNearest(ctx, []float64{10, 10})
	require.NoError(t, err)
	require.Equal(t, "rec-1", match.ID)
	require.InEpsilon(t, 1.0, match.Similarity, 1e-9)
}

func TestIndex_SearchNearest_PicksHighestSimilarity(t *testing.T) {
	ctx := context.Background()
	index := memory.New(2)

	require.NoError(t, index.Insert(ctx, "far", []float64{0, 1}, time.Now()))
	require.NoError(t, index.Insert(ctx, "near", []float64{0.9, 0.1}, time.Now()))

	match, err := index.SearchNearest(ctx, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, "near", match.ID)
}

func TestIndex_SearchNearest_TieBreaksByCreatedAt(t *testing.T) {
	ctx := context.Background()
	index := memory.New(2)

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	// Insert the newer record first so creation time, not insertion order,
	// decides the winner.
	require.NoError(t, index.Insert(ctx, "newer", []float64{1, 0}, newer))
	require.NoError(t, index.Insert(ctx, "older", []float64{1, 0}, older))

	match, err := index.SearchNearest(ctx, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, "older", match.ID)
}

func TestIndex_SearchNearest_TieBreaksByInsertionOrder(t *testing.T) {
	ctx := context.Background()
	index := memory.New(2)

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, index.Insert(ctx, "first", []float64{1, 0}, createdAt))
	require.NoError(t, index.Insert(ctx, "second", []float64{1, 0}, createdAt))

	match, err := index.SearchNearest(ctx, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, "first", match.ID)
}

func TestIndex_SearchNearest_Deterministic(t *testing.T) {
	ctx := context.Background()
	index := memory.New(3)

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	vectors := [][]float64{
		{1, 0, 0},
		{0.9, 0.1, 0},
		{0.9, 0.1, 0},
		{0, 1, 0},
	}
	for i, vector := range vectors {
		id := string(rune('a' + i))
		require.NoError(t, index.Insert(ctx, id, vector, createdAt))
	}

	query := []float64{0.95, 0.05, 0}
	first, err := index.SearchNearest(ctx, query)
	require.NoError(t, err)

	for range 10 {
		match, searchErr := index.SearchNearest(ctx, query)
		require.NoError(t, searchErr)
		require.Equal(t, first.ID, match.ID)
		require.InDelta(t, first.Similarity, match.Similarity, 0)
	}
}

func TestIndex_InsertCopiesEmbedding(t *testing.T) {
	ctx := context.Background()
	index := memory.New(2)

	vector := []float64{1, 0}
	require.NoError(t, index.Insert(ctx, "rec-1", vector, time.Now()))

	// Mutating the caller's slice must not affect stored vectors.
	vector[0] = 0
	vector[1] = 1

	match, err := index.SearchNearest(ctx, []float64{1, 0})
	require.NoError(t, err)
	require.InEpsilon(t, 1.0, match.Similarity, 1e-9)
}

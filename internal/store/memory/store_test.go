package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/store/memory"
)

func newRecord(id, question string) *domain.Record {
	return &domain.Record{
		ID:               id,
		Question:         question,
		Embedding:        []float64{0.1, 0.2},
		Answer:           "answer to " + question,
		CreatedAt:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		HitCount:         0,
		EmbeddingVersion: "stub/v1",
	}
}

func TestStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	record := newRecord("rec-1", "q1")
	require.NoError(t, store.Put(ctx, record))

	got, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	require.Equal(t, record, got)
}

func TestStore_Put_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Put(ctx, newRecord("rec-1", "q1")))

	err := store.Put(ctx, newRecord("rec-1", "q2"))
	require.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := memory.New()

	got, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, got)
}

func TestStore_IncrementHit(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Put(ctx, newRecord("rec-1", "q1")))

	require.NoError(t, store.IncrementHit(ctx, "rec-1"))
	require.NoError(t, store.IncrementHit(ctx, "rec-1"))

	got, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	require.EqualValues(t, 2, got.HitCount)
}

func TestStore_IncrementHit_NotFound(t *testing.T) {
	err := memory.New().IncrementHit(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Put(ctx, newRecord("rec-1", "q1")))
	require.NoError(t, store.Delete(ctx, "rec-1"))

	_, err := store.Get(ctx, "rec-1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestStore_Delete_NotFound(t *testing.T) {
	err := memory.New().Delete(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_All_PreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	ids := []string{"rec-3", "rec-1", "rec-2"}
	for _, id := range ids {
		require.NoError(t, store.Put(ctx, newRecord(id, "question "+id)))
	}

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(ids))
	for i, id := range ids {
		require.Equal(t, id, records[i].ID)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Put(ctx, newRecord("rec-1", "q1")))

	got, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	got.Embedding[0] = 99
	got.Answer = "mutated"

	fresh, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	require.InDelta(t, 0.1, fresh.Embedding[0], 1e-12)
	require.Equal(t, "answer to q1", fresh.Answer)
}

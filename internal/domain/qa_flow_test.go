package domain_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/markl/internal/domain"
	memoryindex "github.com/davidbz/markl/internal/index/memory"
	memorystore "github.com/davidbz/markl/internal/store/memory"
)

// stubEmbedder returns canned vectors per question, standing in for a real
// embedding model with known pairwise similarities.
type stubEmbedder struct {
	vectors map[string][]float64
	dim     int
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vector, ok := s.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return vector, nil
}

func (s *stubEmbedder) Dimension() int { return s.dim }

func (s *stubEmbedder) Version() string { return "stub/v1" }

type stubAnswerer struct {
	calls int
}

func (s *stubAnswerer) Generate(_ context.Context, question string) (string, error) {
	s.calls++
	return "answer to: " + question, nil
}

func (s *stubAnswerer) Name() string { return "stub" }

const (
	oceansQuestion    = "How many oceans are there in the world?"
	oceansParaphrase  = "What is the count of oceans on Earth?"
	unrelatedQuestion = "What are the symptoms of flu?"
	scenarioThreshold = 0.92
	paraphraseCosine  = 0.95
)

// newScenarioEmbedder builds unit vectors with known cosine similarities:
// the paraphrase sits at 0.95 to the original, the unrelated question is
// orthogonal to both.
func newScenarioEmbedder() *stubEmbedder {
	return &stubEmbedder{
		dim: 3,
		vectors: map[string][]float64{
			oceansQuestion:    {1, 0, 0},
			oceansParaphrase:  {paraphraseCosine, 0.31224989991991992, 0},
			unrelatedQuestion: {0, 0, 1},
		},
	}
}

func TestAnswerScenarios(t *testing.T) {
	ctx := context.Background()
	embedder := newScenarioEmbedder()
	answerer := &stubAnswerer{}
	index := memoryindex.New(embedder.Dimension())
	store := memorystore.New()

	service, err := domain.NewSemanticCacheService(embedder, answerer, index, store, scenarioThreshold)
	require.NoError(t, err)

	// Scenario 1: first question misses and is recorded.
	result, err := service.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	require.Equal(t, domain.SourceLLM, result.Source)
	require.Nil(t, result.Similarity)

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 1, index.Len())

	// Scenario 2: a paraphrase above the threshold hits.
	result, err = service.Answer(ctx, oceansParaphrase)
	require.NoError(t, err)
	require.Equal(t, domain.SourceCache, result.Source)
	require.Equal(t, oceansQuestion, result.MatchedQuestion)
	require.NotNil(t, result.Similarity)
	require.InEpsilon(t, paraphraseCosine, *result.Similarity, 0.0001)

	// Hits never create records.
	records, err = store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.EqualValues(t, 1, records[0].HitCount)

	// Scenario 3: an unrelated question misses and grows the cache by one.
	result, err = service.Answer(ctx, unrelatedQuestion)
	require.NoError(t, err)
	require.Equal(t, domain.SourceLLM, result.Source)
	require.NotNil(t, result.Similarity)
	require.Less(t, *result.Similarity, 0.5)

	records, err = store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 2, index.Len())

	// Scenario 4: re-asking the exact question hits at similarity 1.0 and
	// increments the hit count again.
	result, err = service.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	require.Equal(t, domain.SourceCache, result.Source)
	require.NotNil(t, result.Similarity)
	require.InEpsilon(t, 1.0, *result.Similarity, 0.0001)

	records, err = store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.EqualValues(t, 2, records[0].HitCount)

	// The answerer ran exactly once per miss.
	require.Equal(t, 2, answerer.calls)
}

func TestWarmOnPopulatedIndexSucceeds(t *testing.T) {
	// When the index survives a restart (redis backend), warm-up sees every
	// stored record already indexed and must come up cleanly.
	ctx := context.Background()
	embedder := newScenarioEmbedder()
	answerer := &stubAnswerer{}
	index := memoryindex.New(embedder.Dimension())
	store := memorystore.New()

	service, err := domain.NewSemanticCacheService(embedder, answerer, index, store, scenarioThreshold)
	require.NoError(t, err)

	_, err = service.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	_, err = service.Answer(ctx, unrelatedQuestion)
	require.NoError(t, err)

	// Restart with the same index and store.
	restarted, err := domain.NewSemanticCacheService(embedder, answerer, index, store, scenarioThreshold)
	require.NoError(t, err)
	require.NoError(t, restarted.Warm(ctx))
	require.Equal(t, 2, index.Len())

	result, err := restarted.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	require.Equal(t, domain.SourceCache, result.Source)
}

func TestWarmReproducesSearchResults(t *testing.T) {
	ctx := context.Background()
	embedder := newScenarioEmbedder()
	answerer := &stubAnswerer{}
	index := memoryindex.New(embedder.Dimension())
	store := memorystore.New()

	service, err := domain.NewSemanticCacheService(embedder, answerer, index, store, scenarioThreshold)
	require.NoError(t, err)

	_, err = service.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	_, err = service.Answer(ctx, unrelatedQuestion)
	require.NoError(t, err)

	// Simulate a restart: a fresh index warmed from the store must answer
	// previously-asked questions identically.
	rebuiltIndex := memoryindex.New(embedder.Dimension())
	restarted, err := domain.NewSemanticCacheService(embedder, answerer, rebuiltIndex, store, scenarioThreshold)
	require.NoError(t, err)
	require.NoError(t, restarted.Warm(ctx))
	require.Equal(t, index.Len(), rebuiltIndex.Len())

	result, err := restarted.Answer(ctx, oceansParaphrase)
	require.NoError(t, err)
	require.Equal(t, domain.SourceCache, result.Source)
	require.Equal(t, oceansQuestion, result.MatchedQuestion)
	require.InEpsilon(t, paraphraseCosine, *result.Similarity, 0.0001)

	result, err = restarted.Answer(ctx, oceansQuestion)
	require.NoError(t, err)
	require.Equal(t, domain.SourceCache, result.Source)
	require.InEpsilon(t, 1.0, *result.Similarity, 0.0001)
}

package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/markl/internal/observability"
)

// DefaultSimilarityThreshold is the minimum cosine similarity for a cache
// hit when none is configured.
const DefaultSimilarityThreshold = 0.92

// SemanticCacheService answers questions, reusing cached answers for
// semantically similar prior questions. The cache grows without bound:
// records are never evicted (eviction is an explicit non-goal for now).
type SemanticCacheService struct {
	embedder  Embedder
	answerer  Answerer
	index     VectorIndex
	store     CacheStore
	threshold float64

	// writeMu makes the Put-then-Insert sequence for one new record atomic
	// with respect to other writers. A record becomes searchable only
	// after the index insert, so readers never observe a partial write.
	writeMu sync.Mutex
}

// NewSemanticCacheService creates the decision core with its collaborators
// injected. The threshold must be in (0, 1]; a similarity exactly equal to
// it counts as a hit.
func NewSemanticCacheService(
	embedder Embedder,
	answerer Answerer,
	index VectorIndex,
	store CacheStore,
	threshold float64,
) (*SemanticCacheService, error) {
	if embedder == nil {
		return nil, errors.New("embedder cannot be nil")
	}
	if answerer == nil {
		return nil, errors.New("answerer cannot be nil")
	}
	if index == nil {
		return nil, errors.New("vector index cannot be nil")
	}
	if store == nil {
		return nil, errors.New("cache store cannot be nil")
	}
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("similarity threshold must be in (0, 1], got %v", threshold)
	}

	return &SemanticCacheService{
		embedder:  embedder,
		answerer:  answerer,
		index:     index,
		store:     store,
		threshold: threshold,
	}, nil
}

// Answer resolves a question: on a hit it returns the cached answer and
// bumps the matched record's hit count; on a miss it asks the answerer and
// records the new pair for future reuse.
func (s *SemanticCacheService) Answer(ctx context.Context, question string) (*QueryResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrInvalidQuestion
	}

	logger := observability.FromContext(ctx)

	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		logger.Error("failed to embed question", observability.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}

	match, err := s.index.SearchNearest(ctx, embedding)
	if err != nil {
		logger.Error("nearest-neighbor search failed", observability.Error(err))
		return nil, fmt.Errorf("search nearest: %w", err)
	}

	// Inclusive boundary: similarity equal to the threshold is a hit.
	if match != nil && match.Similarity >= s.threshold {
		return s.answerFromCache(ctx, match)
	}

	return s.answerFresh(ctx, question, embedding, match)
}

// answerFromCache resolves a hit against the matched record.
func (s *SemanticCacheService) answerFromCache(ctx context.Context, match *Match) (*QueryResult, error) {
	logger := observability.FromContext(ctx)

	record, err := s.store.Get(ctx, match.ID)
	if err != nil {
		logger.Error("matched record missing from store",
			observability.Error(err),
			observability.String("record_id", match.ID))
		return nil, fmt.Errorf("fetch matched record: %w", err)
	}

	if incErr := s.store.IncrementHit(ctx, match.ID); incErr != nil {
		logger.Error("failed to increment hit count",
			observability.Error(incErr),
			observability.String("record_id", match.ID))
		return nil, fmt.Errorf("increment hit count: %w", incErr)
	}

	logger.Info("cache hit",
		observability.String("record_id", record.ID),
		observability.Float64("similarity", match.Similarity),
		observability.Int64("hit_count", record.HitCount+1))

	similarity := match.Similarity
	cachedAt := record.CreatedAt
	return &QueryResult{
		Answer:          record.Answer,
		Source:          SourceCache,
		MatchedQuestion: record.Question,
		Similarity:      &similarity,
		CachedAt:        &cachedAt,
	}, nil
}

// answerFresh resolves a miss: generate, then persist store-first so the
// record only becomes searchable once both stores hold it.
func (s *SemanticCacheService) answerFresh(
	ctx context.Context,
	question string,
	embedding []float64,
	below *Match,
) (*QueryResult, error) {
	logger := observability.FromContext(ctx)

	answer, err := s.answerer.Generate(ctx, question)
	if err != nil {
		logger.Error("answer generation failed", observability.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrAnswerGeneration, err)
	}

	record := &Record{
		ID:               uuid.NewString(),
		Question:         question,
		Embedding:        embedding,
		Answer:           answer,
		CreatedAt:        time.Now().UTC(),
		HitCount:         0,
		EmbeddingVersion: s.embedder.Version(),
	}

	// Cancellation before the write sequence leaves no partial state; once
	// the sequence starts it runs to completion.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	writeCtx := context.WithoutCancel(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if putErr := s.store.Put(writeCtx, record); putErr != nil {
		logger.Error("failed to persist record", observability.Error(putErr))
		return nil, fmt.Errorf("persist record: %w", putErr)
	}

	if insErr := s.index.Insert(writeCtx, record.ID, record.Embedding, record.CreatedAt); insErr != nil {
		// Compensate so the record is not visible in one store only.
		if delErr := s.store.Delete(writeCtx, record.ID); delErr != nil {
			logger.Error("compensating delete failed",
				observability.Error(delErr),
				observability.String("record_id", record.ID))
		}
		logger.Error("failed to index record", observability.Error(insErr))
		return nil, fmt.Errorf("index record: %w", insErr)
	}

	logger.Info("cache miss, recorded fresh answer",
		observability.String("record_id", record.ID),
		observability.String("answerer", s.answerer.Name()))

	result := &QueryResult{
		Answer: answer,
		Source: SourceLLM,
	}
	if below != nil {
		similarity := below.Similarity
		result.Similarity = &similarity
	}
	return result, nil
}

// Warm rebuilds the vector index from the cache store. Records embedded by
// a different model version are skipped until re-embedded; they stay in the
// store but are excluded from matching.
func (s *SemanticCacheService) Warm(ctx context.Context) error {
	logger := observability.FromContext(ctx)

	records, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("enumerate records: %w", err)
	}

	version := s.embedder.Version()
	loaded, skipped := 0, 0
	for _, record := range records {
		if record.EmbeddingVersion != version {
			logger.Warn("skipping record from different embedding version",
				observability.String("record_id", record.ID),
				observability.String("record_version", record.EmbeddingVersion),
				observability.String("active_version", version))
			skipped++
			continue
		}

		if insErr := s.index.Insert(ctx, record.ID, record.Embedding, record.CreatedAt); insErr != nil {
			// Durable indexes keep vectors across restarts; finding one
			// already published means this record needs no rehydration.
			if errors.Is(insErr, ErrDuplicateID) {
				loaded++
				continue
			}
			return fmt.Errorf("index record %s: %w", record.ID, insErr)
		}
		loaded++
	}

	logger.Info("vector index warmed",
		observability.Int("loaded", loaded),
		observability.Int("skipped", skipped))
	return nil
}

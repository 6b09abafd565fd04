// Package redisearch provides a vector index backed by RediSearch
// (FT.CREATE/FT.SEARCH with a FLAT cosine vector field). It honors the same
// nearest-one and tie-break contract as the in-memory baseline, with one
// caveat: ties are re-ranked only within the top knnCandidates neighbors
// returned by the KNN query, so an equal-similarity group wider than that
// window may rank differently than an exhaustive scan would.
package redisearch

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/observability"
)

const (
	vectorKeyPrefix     = "markl:vec:"
	seqCounterKey       = "markl:vec:next-seq"
	redisDialectVersion = 2

	// knnCandidates is how many neighbors are fetched per search; the
	// extras let equal-similarity ties resolve by created_at in Go.
	knnCandidates = 4
)

// Index stores embeddings in Redis hashes under a RediSearch vector index.
type Index struct {
	client    *redis.Client
	indexName string
	dimension int
}

// New creates the index, issuing FT.CREATE when it doesn't exist yet.
func New(client *redis.Client, indexName string, dimension int) (*Index, error) {
	x := &Index{
		client:    client,
		indexName: indexName,
		dimension: dimension,
	}

	if err := x.createIndex(); err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}
	return x, nil
}

// Insert adds a vector under a record id.
func (x *Index) Insert(ctx context.Context, id string, embedding []float64, createdAt time.Time) error {
	if len(embedding) != x.dimension {
		return fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(embedding), x.dimension)
	}

	key := vectorKeyPrefix + id

	exists, err := x.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: check vector key: %w", domain.ErrStorage, err)
	}
	if exists > 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
	}

	// A monotonic counter records insertion order for the tie-break; it has
	// to live in Redis so the order survives restarts.
	seq, err := x.client.Incr(ctx, seqCounterKey).Result()
	if err != nil {
		return fmt.Errorf("%w: allocate insertion sequence: %w", domain.ErrStorage, err)
	}

	if _, setErr := x.client.HSet(ctx, key,
		"embedding", floatsToBytes(embedding),
		"created_at", createdAt.UnixNano(),
		"seq", seq,
	).Result(); setErr != nil {
		return fmt.Errorf("%w: index vector: %w", domain.ErrStorage, setErr)
	}
	return nil
}

// SearchNearest returns the highest-similarity vector, or nil when the
// index is empty.
func (x *Index) SearchNearest(ctx context.Context, embedding []float64) (*domain.Match, error) {
	if len(embedding) != x.dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", domain.ErrDimensionMismatch, len(embedding), x.dimension)
	}

	query := fmt.Sprintf("*=>[KNN %d @embedding $vec AS score]", knnCandidates)

	results, err := x.client.FTSearchWithArgs(ctx, x.indexName, query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "score"},
				{FieldName: "created_at"},
				{FieldName: "seq"},
			},
			DialectVersion: redisDialectVersion,
			Params: map[string]any{
				"vec": floatsToBytes(embedding),
			},
		},
	).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: vector search: %w", domain.ErrStorage, err)
	}

	candidates := x.parseCandidates(ctx, results)
	if len(candidates) == 0 {
		return nil, nil //nolint:nilnil // Absence of a match is not an error
	}

	rank(candidates)

	best := candidates[0]
	return &domain.Match{ID: best.id, Similarity: best.similarity}, nil
}

type candidate struct {
	id         string
	similarity float64
	createdAt  int64
	seq        int64
}

// rank orders candidates by the deterministic tie-break contract: highest
// similarity, then earliest created_at, then earliest insertion sequence.
// KNN results arrive distance-ordered, but equal distances need the re-rank.
func rank(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		if candidates[i].createdAt != candidates[j].createdAt {
			return candidates[i].createdAt < candidates[j].createdAt
		}
		if candidates[i].seq != candidates[j].seq {
			return candidates[i].seq < candidates[j].seq
		}
		return candidates[i].id < candidates[j].id
	})
}

// parseCandidates converts FT.SEARCH documents into ranked candidates.
func (x *Index) parseCandidates(ctx context.Context, results redis.FTSearchResult) []candidate {
	logger := observability.FromContext(ctx)

	candidates := make([]candidate, 0, len(results.Docs))
	for _, doc := range results.Docs {
		scoreStr, ok := doc.Fields["score"]
		if !ok {
			logger.Warn("search result missing score field",
				observability.String("key", doc.ID))
			continue
		}
		distance, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			logger.Warn("search result has malformed score",
				observability.String("key", doc.ID),
				observability.Error(err))
			continue
		}

		var createdAt int64
		if tsStr, tsOk := doc.Fields["created_at"]; tsOk {
			if ts, parseErr := strconv.ParseInt(tsStr, 10, 64); parseErr == nil {
				createdAt = ts
			}
		}

		var seq int64
		if seqStr, seqOk := doc.Fields["seq"]; seqOk {
			if s, parseErr := strconv.ParseInt(seqStr, 10, 64); parseErr == nil {
				seq = s
			}
		}

		candidates = append(candidates, candidate{
			id: strings.TrimPrefix(doc.ID, vectorKeyPrefix),
			// Cosine distance to similarity.
			similarity: 1.0 - distance,
			createdAt:  createdAt,
			seq:        seq,
		})
	}
	return candidates
}

// createIndex creates the RediSearch index if it doesn't exist.
func (x *Index) createIndex() error {
	ctx := context.Background()
	logger := observability.FromContext(ctx)

	if _, err := x.client.FTInfo(ctx, x.indexName).Result(); err == nil {
		logger.Info("redis search index already exists, skipping creation",
			observability.String("index_name", x.indexName))
		return nil
	}

	logger.Info("creating redis search index",
		observability.String("index_name", x.indexName),
		observability.Int("dimension", x.dimension))

	_, err := x.client.FTCreate(ctx, x.indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{vectorKeyPrefix},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT64",
					Dim:            x.dimension,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: "created_at",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
		&redis.FieldSchema{
			FieldName: "seq",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	logger.Info("successfully created redis search index",
		observability.String("index_name", x.indexName))
	return nil
}

const bytesPerFloat64 = 8

// floatsToBytes converts a float64 slice to the binary layout RediSearch
// expects for FLOAT64 vector fields.
func floatsToBytes(fs []float64) []byte {
	buf := make([]byte, len(fs)*bytesPerFloat64)
	for i, f := range fs {
		binary.LittleEndian.PutUint64(buf[i*bytesPerFloat64:], math.Float64bits(f))
	}
	return buf
}

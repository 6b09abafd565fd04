// Package redis provides a Redis-backed cache store: one hash per record
// plus a list preserving insertion order for startup enumeration.
package redis

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/observability"
)

const (
	recordKeyPrefix = "markl:record:"
	orderListKey    = "markl:records"
)

// Store persists records in Redis hashes.
type Store struct {
	client *redis.Client
}

// New creates a Redis-backed record store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Put inserts a new record.
func (s *Store) Put(ctx context.Context, record *domain.Record) error {
	if record == nil {
		return fmt.Errorf("%w: record cannot be nil", domain.ErrStorage)
	}

	key := recordKey(record.ID)

	// HSETNX on the id field claims the key; a second writer with the same
	// id loses the race and reports the collision.
	claimed, err := s.client.HSetNX(ctx, key, "id", record.ID).Result()
	if err != nil {
		return fmt.Errorf("%w: claim record key: %w", domain.ErrStorage, err)
	}
	if !claimed {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, record.ID)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		"question", record.Question,
		"answer", record.Answer,
		"embedding", floatsToBytes(record.Embedding),
		"created_at", record.CreatedAt.UnixNano(),
		"hit_count", record.HitCount,
		"embedding_version", record.EmbeddingVersion,
	)
	pipe.RPush(ctx, orderListKey, record.ID)

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		// Roll back the claim so a retry of this id is not stuck behind a
		// half-written hash.
		if _, delErr := s.client.Del(ctx, key).Result(); delErr != nil {
			observability.FromContext(ctx).Error("failed to roll back claimed record key",
				observability.Error(delErr),
				observability.String("record_id", record.ID))
		}
		return fmt.Errorf("%w: persist record: %w", domain.ErrStorage, execErr)
	}
	return nil
}

// Get returns the record for id.
func (s *Store) Get(ctx context.Context, id string) (*domain.Record, error) {
	fields, err := s.client.HGetAll(ctx, recordKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: fetch record: %w", domain.ErrStorage, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return parseRecord(id, fields)
}

// IncrementHit atomically increments the record's hit count.
func (s *Store) IncrementHit(ctx context.Context, id string) error {
	key := recordKey(id)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: check record: %w", domain.ErrStorage, err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	if _, incErr := s.client.HIncrBy(ctx, key, "hit_count", 1).Result(); incErr != nil {
		return fmt.Errorf("%w: increment hit count: %w", domain.ErrStorage, incErr)
	}
	return nil
}

// Delete removes a record and its order-list entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, recordKey(id))
	pipe.LRem(ctx, orderListKey, 0, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: delete record: %w", domain.ErrStorage, err)
	}
	if del.Val() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return nil
}

// All returns every record in insertion order.
func (s *Store) All(ctx context.Context) ([]*domain.Record, error) {
	ids, err := s.client.LRange(ctx, orderListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: enumerate records: %w", domain.ErrStorage, err)
	}

	pipe := s.client.Pipeline()
	gets := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		gets[i] = pipe.HGetAll(ctx, recordKey(id))
	}
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		return nil, fmt.Errorf("%w: fetch records: %w", domain.ErrStorage, execErr)
	}

	records := make([]*domain.Record, 0, len(ids))
	for i, id := range ids {
		fields := gets[i].Val()
		if len(fields) == 0 {
			// Order-list entry without a hash: a compensated delete raced
			// the enumeration. Skip it.
			continue
		}
		record, parseErr := parseRecord(id, fields)
		if parseErr != nil {
			return nil, parseErr
		}
		records = append(records, record)
	}
	return records, nil
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}

// parseRecord decodes a record hash.
func parseRecord(id string, fields map[string]string) (*domain.Record, error) {
	createdAt, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: parse created_at for %s: %w", domain.ErrStorage, id, err)
	}

	hitCount, err := strconv.ParseInt(fields["hit_count"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: parse hit_count for %s: %w", domain.ErrStorage, id, err)
	}

	embedding, err := bytesToFloats([]byte(fields["embedding"]))
	if err != nil {
		return nil, fmt.Errorf("%w: parse embedding for %s: %w", domain.ErrStorage, id, err)
	}

	return &domain.Record{
		ID:               id,
		Question:         fields["question"],
		Embedding:        embedding,
		Answer:           fields["answer"],
		CreatedAt:        time.Unix(0, createdAt).UTC(),
		HitCount:         hitCount,
		EmbeddingVersion: fields["embedding_version"],
	}, nil
}

const bytesPerFloat64 = 8

// floatsToBytes converts a float64 slice to its binary representation.
// Full 64-bit precision is kept so rehydrated vectors match the originals
// bit for bit.
func floatsToBytes(fs []float64) []byte {
	buf := make([]byte, len(fs)*bytesPerFloat64)
	for i, f := range fs {
		binary.LittleEndian.PutUint64(buf[i*bytesPerFloat64:], math.Float64bits(f))
	}
	return buf
}

func bytesToFloats(buf []byte) ([]float64, error) {
	if len(buf)%bytesPerFloat64 != 0 {
		return nil, fmt.Errorf("embedding payload length %d is not a multiple of %d", len(buf), bytesPerFloat64)
	}
	fs := make([]float64, len(buf)/bytesPerFloat64)
	for i := range fs {
		fs[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*bytesPerFloat64:]))
	}
	return fs, nil
}

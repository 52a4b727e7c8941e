package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/inkpress/erp-gateway/internal/core"
)

// RedisDocumentStore implements the DocumentStore port on Redis. Each
// document is a JSON value under doc:<collection>:<id> with a per-collection
// index set, and counters use INCRBY for atomic sequence numbers.
type RedisDocumentStore struct {
	client redis.UniversalClient
}

var _ core.DocumentStore = (*RedisDocumentStore)(nil)

// NewRedisDocumentStore creates a document store over the given Redis client.
func NewRedisDocumentStore(client redis.UniversalClient) *RedisDocumentStore {
	return &RedisDocumentStore{client: client}
}

func docKey(collection, id string) string {
	return "doc:" + collection + ":" + id
}

func indexKey(collection string) string {
	return "docidx:" + collection
}

// Insert stores a new document and registers it in the collection index.
func (s *RedisDocumentStore) Insert(ctx context.Context, collection, id string, doc core.Document) error {
	return s.write(ctx, collection, id, doc)
}

// Upsert stores a document, replacing any existing version.
func (s *RedisDocumentStore) Upsert(ctx context.Context, collection, id string, doc core.Document) error {
	return s.write(ctx, collection, id, doc)
}

func (s *RedisDocumentStore) write(ctx context.Context, collection, id string, doc core.Document) error {
	if collection == "" || id == "" {
		return errors.New("collection and id are required")
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, docKey(collection, id), payload, 0)
	pipe.SAdd(ctx, indexKey(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis write document: %w", err)
	}
	return nil
}

// FindOne returns one document by id or ErrDocumentNotFound.
func (s *RedisDocumentStore) FindOne(ctx context.Context, collection, id string) (core.Document, error) {
	if collection == "" || id == "" {
		return nil, errors.New("collection and id are required")
	}

	raw, err := s.client.Get(ctx, docKey(collection, id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("redis get document: %w", err)
	}

	var doc core.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}

// Find returns every document in a collection. Index entries whose value has
// vanished (manual deletion) are skipped, not treated as errors.
func (s *RedisDocumentStore) Find(ctx context.Context, collection string) ([]core.Document, error) {
	if collection == "" {
		return nil, errors.New("collection is required")
	}

	ids, err := s.client.SMembers(ctx, indexKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis read index: %w", err)
	}
	if len(ids) == 0 {
		return []core.Document{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(collection, id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget documents: %w", err)
	}

	docs := make([]core.Document, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var doc core.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Increment atomically adds delta to a named counter and returns the new value.
func (s *RedisDocumentStore) Increment(ctx context.Context, counter string, delta int64) (int64, error) {
	if counter == "" {
		return 0, errors.New("counter name is required")
	}

	v, err := s.client.IncrBy(ctx, "counter:"+counter, delta).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incrby: %w", err)
	}
	return v, nil
}

// Health checks the Redis connection.
func (s *RedisDocumentStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

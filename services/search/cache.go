package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// EmbeddingCache stores query embeddings so repeat searches skip the paid
// embedding API.
type EmbeddingCache interface {
	Get(ctx context.Context, query string) ([]float64, bool)
	Set(ctx context.Context, query string, vec []float64) error
}

// RedisEmbeddingCache is the Redis-backed embedding cache.
type RedisEmbeddingCache struct {
	client *redis.Client
}

func NewRedisEmbeddingCache(client *redis.Client) EmbeddingCache {
	return &RedisEmbeddingCache{client: client}
}

const (
	embeddingKeyPrefix = "search:embedding:"
	embeddingTTL       = 24 * time.Hour
)

func embeddingKey(query string) string {
	return fmt.Sprintf("%s%s", embeddingKeyPrefix, strings.ToLower(strings.TrimSpace(query)))
}

func (c *RedisEmbeddingCache) Get(ctx context.Context, query string) ([]float64, bool) {
	val, err := c.client.Get(ctx, embeddingKey(query)).Result()
	if err != nil {
		return nil, false
	}
	var vec []float64
	if err := json.Unmarshal([]byte(val), &vec); err != nil {
		return nil, false // treat corrupt entries as a miss
	}
	return vec, true
}

func (c *RedisEmbeddingCache) Set(ctx context.Context, query string, vec []float64) error {
	data, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, embeddingKey(query), data, embeddingTTL).Err()
}

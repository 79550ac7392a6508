package utils

import (
	"context"
	"log"
	"time"

	"oficio/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (query embeddings, catalog lookups).
	CacheClient *redis.Client
)

// InitRedis initializes the generic Redis cache client.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}

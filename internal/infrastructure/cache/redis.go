package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/meettrack-team/meettrack/pkg/config"
)

// RedisClient wraps the go-redis client behind the Store interface used by
// the OAuth state manager
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client and verifies connectivity,
// retrying with exponential backoff
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(ping, bo); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")

	return &RedisClient{client: client}, nil
}

// Set stores a key-value pair with expiration
func (rc *RedisClient) Set(ctx context.Context, key, value string, expiration time.Duration) {
	rc.client.Set(ctx, key, value, expiration)
}

// Get retrieves a value by key
func (rc *RedisClient) Get(ctx context.Context, key string) (string, bool) {
	value, err := rc.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Delete removes a key
func (rc *RedisClient) Delete(ctx context.Context, key string) {
	rc.client.Del(ctx, key)
}

// Close closes the underlying connection
func (rc *RedisClient) Close() error {
	return rc.client.Close()
}

// Package cache holds the Redis connection shared by sessions and the product
// read-model cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/porcelarte/pkg/config"
)

const (
	defaultPoolSize = 10
	pingTimeout     = 2 * time.Second
)

// RedisClient wraps redis.Client.
type RedisClient struct {
	client *redis.Client
}

// ParseOptions parses a redis:// URL and applies the pool and timeout
// settings used by every process.
func ParseOptions(url string, poolSize int) (*redis.Options, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	opts.PoolSize = poolSize
	opts.MinIdleConns = max(1, poolSize/5)
	opts.MaxRetries = 3
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	// Waiting for a pooled connection may take slightly longer than a read.
	opts.PoolTimeout = opts.ReadTimeout + time.Second
	return opts, nil
}

// NewRedisClient connects to cfg.RedisURL and verifies the connection.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := ParseOptions(cfg.RedisURL, cfg.RedisPoolSize)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}

	return &RedisClient{client: rdb}, nil
}

// Ping checks the Redis connection health.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client returns the underlying redis.Client for the session store.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the client behind the feedback list cache.

The cache only holds short-lived list pages keyed by query and a
generation counter, so the pool is kept small.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 500 * time.Millisecond
	writeTimeout = 500 * time.Millisecond
	pingTimeout  = 2 * time.Second

	defaultPoolSize = 10
)

// NewClient parses redisURL, applies the cache timeouts and pings the server.
//
// Read and write timeouts are short: a slow cache is bypassed rather than
// waited on.
func NewClient(ctx context.Context, redisURL string, poolSize int, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	options.PoolSize = poolSize
	options.MinIdleConns = max(1, poolSize/5)
	options.MaxIdleConns = max(options.MinIdleConns, poolSize/2)

	options.DialTimeout = dialTimeout
	options.ReadTimeout = readTimeout
	options.WriteTimeout = writeTimeout

	client := redis.NewClient(options)

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)

	return client, nil
}

// Ping verifies that the server answers.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

// Checker returns a readiness probe bound to client.
func Checker(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return Ping(ctx, client)
	}
}

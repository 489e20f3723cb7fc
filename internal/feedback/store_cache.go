// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/feedback/internal/platform/constants"
)

// CachedRepository is a read-through Redis cache in front of another [Repository].
//
// # Invalidation
//
// List pages are stored under a key that embeds a generation counter. Every
// successful Append increments the counter, so all earlier pages become
// unreachable at once and expire on their own TTL.
//
// Redis failures are logged and bypassed. They never fail a request.
type CachedRepository struct {
	next   Repository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedRepository wraps next with a cache stored in client.
func NewCachedRepository(next Repository, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedPage is the value stored per list key.
type cachedPage struct {
	Data  []*Feedback `json:"data"`
	Total int         `json:"total"`
}

// Append implements [Repository].
func (repository *CachedRepository) Append(ctx context.Context, record *Feedback) error {
	if err := repository.next.Append(ctx, record); err != nil {
		return err
	}

	if err := repository.client.Incr(ctx, constants.RedisKeyFeedbackGen).Err(); err != nil {
		repository.logger.WarnContext(ctx, "feedback_cache_invalidate_failed", slog.Any("error", err))
	}
	return nil
}

// Query implements [Repository].
func (repository *CachedRepository) Query(ctx context.Context, c Criteria) ([]*Feedback, int, error) {
	generation, err := repository.client.Get(ctx, constants.RedisKeyFeedbackGen).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		repository.logger.WarnContext(ctx, "feedback_cache_unavailable", slog.Any("error", err))
		return repository.next.Query(ctx, c)
	}

	key := listKey(generation, c)

	// 1. Cache hit
	raw, err := repository.client.Get(ctx, key).Bytes()
	if err == nil {
		var page cachedPage
		if jsonErr := json.Unmarshal(raw, &page); jsonErr == nil {
			return page.Data, page.Total, nil
		}
		repository.logger.WarnContext(ctx, "feedback_cache_corrupt", slog.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		repository.logger.WarnContext(ctx, "feedback_cache_get_failed", slog.Any("error", err))
	}

	// 2. Miss: read through and populate
	records, total, err := repository.next.Query(ctx, c)
	if err != nil {
		return nil, 0, err
	}

	payload, err := json.Marshal(cachedPage{Data: records, Total: total})
	if err != nil {
		return records, total, nil
	}

	if err := repository.client.Set(ctx, key, string(payload), repository.ttl).Err(); err != nil {
		repository.logger.WarnContext(ctx, "feedback_cache_set_failed", slog.Any("error", err))
	}

	return records, total, nil
}

func listKey(generation int64, c Criteria) string {
	return fmt.Sprintf("%s%d:%s", constants.RedisPrefixFeedbackList, generation, c.Key())
}

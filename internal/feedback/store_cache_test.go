// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/feedback"
)

const (
	generationKey = "feedback:generation"
	cacheTTL      = time.Minute
)

func TestCachedRepository_MissThenHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := feedback.NewMemoryRepository()
	record := &feedback.Feedback{CustomerName: "Ana", Rating: 5, Message: "Great service, loved it!", HappinessLevel: 5}
	require.NoError(t, store.Append(context.Background(), record))

	repository := feedback.NewCachedRepository(store, client, cacheTTL, discardLogger())
	criteria := feedback.Criteria{SortBy: feedback.SortByID, Descending: true, Limit: 10}
	key := "feedback:list:0:" + criteria.Key()

	payload, err := json.Marshal(map[string]any{"data": []*feedback.Feedback{record}, "total": 1})
	require.NoError(t, err)

	// First call: miss and populate.
	mock.ExpectGet(generationKey).RedisNil()
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, string(payload), cacheTTL).SetVal("OK")

	records, total, err := repository.Query(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, records, 1)

	// Second call: served from the cache.
	mock.ExpectGet(generationKey).RedisNil()
	mock.ExpectGet(key).SetVal(string(payload))

	cached, cachedTotal, err := repository.Query(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, cachedTotal)
	assert.Equal(t, records[0].ID, cached[0].ID)
	assert.True(t, records[0].CreatedAt.Equal(cached[0].CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedRepository_AppendBumpsGeneration(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repository := feedback.NewCachedRepository(feedback.NewMemoryRepository(), client, cacheTTL, discardLogger())

	mock.ExpectIncr(generationKey).SetVal(1)

	record := &feedback.Feedback{CustomerName: "Ana", Rating: 4, Message: "Great service, loved it!", HappinessLevel: 4}
	require.NoError(t, repository.Append(context.Background(), record))
	assert.Equal(t, int64(1), record.ID)

	criteria := feedback.Criteria{SortBy: feedback.SortByID, Descending: true, Limit: 10}
	key := "feedback:list:1:" + criteria.Key()

	mock.ExpectGet(generationKey).SetVal("1")
	mock.ExpectGet(key).RedisNil()
	payload, err := json.Marshal(map[string]any{"data": []*feedback.Feedback{record}, "total": 1})
	require.NoError(t, err)
	mock.ExpectSet(key, string(payload), cacheTTL).SetVal("OK")

	_, total, err := repository.Query(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedRepository_RedisDownFallsThrough(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repository := feedback.NewCachedRepository(feedback.NewMemoryRepository(), client, cacheTTL, discardLogger())

	mock.ExpectIncr(generationKey).SetErr(errors.New("connection refused"))
	require.NoError(t, repository.Append(context.Background(), &feedback.Feedback{Rating: 2, HappinessLevel: 2}))

	mock.ExpectGet(generationKey).SetErr(errors.New("connection refused"))

	records, total, err := repository.Query(context.Background(), feedback.Criteria{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, records, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/feedback"
	"github.com/taibuivan/feedback/pkg/pointer"
)

func TestMemoryRepository_StableTies(t *testing.T) {
	repository := feedback.NewMemoryRepository()
	ctx := context.Background()

	for _, rating := range []int{2, 5, 2, 5} {
		require.NoError(t, repository.Append(ctx, &feedback.Feedback{Rating: rating, HappinessLevel: 1}))
	}

	records, total, err := repository.Query(ctx, feedback.Criteria{SortBy: feedback.SortByRating, Descending: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	ids := make([]int64, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
	}
	// Equal ratings keep insertion order in both directions.
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repository := feedback.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repository.Append(ctx, &feedback.Feedback{CustomerName: "Ana", Rating: 3, HappinessLevel: 3}))

	records, _, err := repository.Query(ctx, feedback.Criteria{Limit: 1})
	require.NoError(t, err)
	records[0].CustomerName = "mutated"

	again, _, err := repository.Query(ctx, feedback.Criteria{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "Ana", again[0].CustomerName)
}

func TestMemoryRepository_ConcurrentAppends(t *testing.T) {
	repository := feedback.NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repository.Append(ctx, &feedback.Feedback{Rating: 1, HappinessLevel: 1})
			_, _, _ = repository.Query(ctx, feedback.Criteria{Rating: pointer.To(1), Limit: 5})
		}()
	}
	wg.Wait()

	records, total, err := repository.Query(ctx, feedback.Criteria{SortBy: feedback.SortByID, Descending: true, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, 50, total)
	assert.Equal(t, int64(50), records[0].ID)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/client"
	"github.com/taibuivan/feedback/internal/feedback"
	"github.com/taibuivan/feedback/pkg/pointer"
)

type listResult struct {
	page *client.Page
	err  error
}

type pendingList struct {
	query client.Query
	reply chan listResult
}

// gatedLister blocks every List call until the test sends its reply.
type gatedLister struct {
	calls chan pendingList
}

func newGatedLister() *gatedLister {
	return &gatedLister{calls: make(chan pendingList)}
}

func (lister *gatedLister) List(_ context.Context, query client.Query) (*client.Page, error) {
	reply := make(chan listResult)
	lister.calls <- pendingList{query: query, reply: reply}
	result := <-reply
	return result.page, result.err
}

func pageOf(total int, ratings ...int) *client.Page {
	page := &client.Page{Data: []feedback.Feedback{}, Total: total}
	for i, rating := range ratings {
		page.Data = append(page.Data, feedback.Feedback{ID: int64(i + 1), Rating: rating, HappinessLevel: 3})
	}
	return page
}

// staticLister answers every call with the same result.
type staticLister struct {
	result  listResult
	queries []client.Query
}

func (lister *staticLister) List(_ context.Context, query client.Query) (*client.Page, error) {
	lister.queries = append(lister.queries, query)
	return lister.result.page, lister.result.err
}

func TestBrowser_StaleResponseDropped(t *testing.T) {
	lister := newGatedLister()
	browser := client.NewBrowser(lister, client.NewQuery(10))
	ctx := context.Background()

	older := make(chan error, 1)
	go func() { older <- browser.SetRating(ctx, pointer.To(3)) }()
	first := <-lister.calls

	newer := make(chan error, 1)
	go func() { newer <- browser.SetRating(ctx, pointer.To(4)) }()
	second := <-lister.calls

	assert.Equal(t, 3, *first.query.Rating())
	assert.Equal(t, 4, *second.query.Rating())

	// The newer request resolves first.
	second.reply <- listResult{page: pageOf(1, 4)}
	require.NoError(t, <-newer)

	first.reply <- listResult{page: pageOf(7, 3, 3, 3)}
	require.NoError(t, <-older)

	state := browser.State()
	assert.Equal(t, 1, state.Total)
	require.Len(t, state.Records, 1)
	assert.Equal(t, 4, state.Records[0].Rating)
	assert.Equal(t, 4, *state.Query.Rating())
}

func TestBrowser_InOrderResponsesApplied(t *testing.T) {
	lister := newGatedLister()
	browser := client.NewBrowser(lister, client.NewQuery(10))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- browser.SetPage(ctx, 2) }()
	call := <-lister.calls
	call.reply <- listResult{page: pageOf(12, 5, 4)}
	require.NoError(t, <-done)
	assert.Equal(t, 12, browser.State().Total)

	go func() { done <- browser.SetSort(ctx, "asc") }()
	call = <-lister.calls
	assert.Equal(t, 1, call.query.Page())
	call.reply <- listResult{page: pageOf(12, 1, 2)}
	require.NoError(t, <-done)

	state := browser.State()
	assert.Equal(t, "asc", state.Query.Order())
	assert.Equal(t, 1, state.Records[0].Rating)
}

func TestBrowser_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		lister := &staticLister{result: listResult{page: pageOf(2, 5, 5)}}
		browser := client.NewBrowser(lister, client.NewQuery(10))
		require.NoError(t, browser.Refresh(ctx))

		lister.result = listResult{err: &client.ValidationError{
			Message: "The given data was invalid.",
			Errors:  map[string][]string{"rating": {"Must be between 1 and 5"}},
		}}
		err := browser.SetRating(ctx, pointer.To(9))
		require.Error(t, err)

		state := browser.State()
		assert.Empty(t, state.Records)
		assert.Zero(t, state.Total)
		assert.Contains(t, state.FieldErrors, "rating")
		assert.Empty(t, state.Error)
	})

	t.Run("generic", func(t *testing.T) {
		lister := &staticLister{result: listResult{err: &client.TransportError{Err: errors.New("connection refused")}}}
		browser := client.NewBrowser(lister, client.NewQuery(10))

		require.Error(t, browser.Refresh(ctx))

		state := browser.State()
		assert.Empty(t, state.Records)
		assert.Nil(t, state.FieldErrors)
		assert.Equal(t, client.GenericErrorMessage, state.Error)
	})

	t.Run("recovery_clears_error", func(t *testing.T) {
		lister := &staticLister{result: listResult{err: errors.New("boom")}}
		browser := client.NewBrowser(lister, client.NewQuery(10))
		require.Error(t, browser.Refresh(ctx))

		lister.result = listResult{page: pageOf(1, 3)}
		require.NoError(t, browser.Refresh(ctx))

		state := browser.State()
		assert.Empty(t, state.Error)
		assert.Len(t, state.Records, 1)
	})
}

func TestBrowser_StateIsDetached(t *testing.T) {
	ctx := context.Background()

	lister := &staticLister{result: listResult{page: pageOf(1, 4)}}
	browser := client.NewBrowser(lister, client.NewQuery(10))
	require.NoError(t, browser.Refresh(ctx))

	snapshot := browser.State()
	snapshot.Records[0].Rating = 1
	assert.Equal(t, 4, browser.State().Records[0].Rating)

	lister.result = listResult{err: &client.ValidationError{
		Errors: map[string][]string{"rating": {"Must be between 1 and 5"}},
	}}
	require.Error(t, browser.Refresh(ctx))

	snapshot = browser.State()
	snapshot.FieldErrors["rating"][0] = "changed"
	snapshot.FieldErrors["page"] = []string{"added"}

	state := browser.State()
	assert.Equal(t, map[string][]string{"rating": {"Must be between 1 and 5"}}, state.FieldErrors)
}

func TestBrowser_EveryChangeIssuesRequest(t *testing.T) {
	lister := &staticLister{result: listResult{page: pageOf(0)}}
	browser := client.NewBrowser(lister, client.NewQuery(10))
	ctx := context.Background()

	require.NoError(t, browser.SetRating(ctx, pointer.To(2)))
	require.NoError(t, browser.SetHappiness(ctx, pointer.To(4)))
	require.NoError(t, browser.SetPage(ctx, 3))
	require.NoError(t, browser.SetRating(ctx, nil))

	require.Len(t, lister.queries, 4)
	assert.Equal(t, "happiness_level=4&page=1&per_page=10&rating=2", lister.queries[1].Values().Encode())
	assert.Equal(t, "happiness_level=4&page=3&per_page=10&rating=2", lister.queries[2].Values().Encode())
	assert.Equal(t, "happiness_level=4&page=1&per_page=10", lister.queries[3].Values().Encode())
}

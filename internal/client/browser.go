// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/taibuivan/feedback/internal/feedback"
)

// GenericErrorMessage is shown for any list failure without field errors.
const GenericErrorMessage = "Error loading feedbacks"

// Lister is the read side of [Client].
type Lister interface {
	List(ctx context.Context, query Query) (*Page, error)
}

// State is a snapshot of the list view.
type State struct {
	Query   Query
	Records []feedback.Feedback
	Total   int

	// FieldErrors is set when the last applied response was a validation failure.
	FieldErrors map[string][]string

	// Error is set for every other failure.
	Error string
}

// Pager returns the pagination control for the state, or nil if there is
// at most one page.
func (s State) Pager() *Pager {
	return NewPager(s.Query.Page(), s.Total, s.Query.PerPage())
}

/*
Browser holds the list view state and reloads it on every change.

Requests are numbered when issued. A response is applied only if no newer
request has been applied yet, so a slow response for an old query never
overwrites the result of a newer one.
*/
type Browser struct {
	lister Lister

	mu      sync.Mutex
	state   State
	issued  uint64
	applied uint64
}

// NewBrowser creates a browser starting from query. Nothing is loaded until
// the first call to [Browser.Refresh] or a setter.
func NewBrowser(lister Lister, query Query) *Browser {
	return &Browser{
		lister: lister,
		state:  State{Query: query, Records: []feedback.Feedback{}},
	}
}

// State returns a copy of the current view state.
func (browser *Browser) State() State {
	browser.mu.Lock()
	defer browser.mu.Unlock()

	state := browser.state
	state.Records = slices.Clone(state.Records)
	state.FieldErrors = maps.Clone(state.FieldErrors)
	for field, messages := range state.FieldErrors {
		state.FieldErrors[field] = slices.Clone(messages)
	}
	return state
}

// Refresh reloads the current query.
func (browser *Browser) Refresh(ctx context.Context) error {
	return browser.load(ctx, func(q Query) Query { return q })
}

// SetRating changes the rating filter and goes back to the first page.
func (browser *Browser) SetRating(ctx context.Context, rating *int) error {
	return browser.load(ctx, func(q Query) Query { return q.WithRating(rating) })
}

// SetHappiness changes the happiness filter and goes back to the first page.
func (browser *Browser) SetHappiness(ctx context.Context, level *int) error {
	return browser.load(ctx, func(q Query) Query { return q.WithHappiness(level) })
}

// SetSort changes the rating sort direction and goes back to the first page.
func (browser *Browser) SetSort(ctx context.Context, direction string) error {
	return browser.load(ctx, func(q Query) Query { return q.WithSort(direction) })
}

// SetPage selects a page.
func (browser *Browser) SetPage(ctx context.Context, page int) error {
	return browser.load(ctx, func(q Query) Query { return q.WithPage(page) })
}

func (browser *Browser) load(ctx context.Context, next func(Query) Query) error {
	browser.mu.Lock()
	browser.issued++
	seq := browser.issued
	query := next(browser.state.Query)
	browser.state.Query = query
	browser.mu.Unlock()

	page, err := browser.lister.List(ctx, query)

	browser.mu.Lock()
	defer browser.mu.Unlock()

	// Stale
	if seq <= browser.applied {
		return err
	}
	browser.applied = seq

	browser.state.FieldErrors = nil
	browser.state.Error = ""

	if err != nil {
		browser.state.Records = []feedback.Feedback{}
		browser.state.Total = 0

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			browser.state.FieldErrors = validationErr.Errors
		} else {
			browser.state.Error = GenericErrorMessage
		}
		return err
	}

	browser.state.Records = page.Data
	browser.state.Total = page.Total
	return nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"net/url"
	"strconv"

	"github.com/taibuivan/feedback/internal/feedback"
	"github.com/taibuivan/feedback/pkg/pagination"
	"github.com/taibuivan/feedback/pkg/pointer"
)

// Query is the filter, sort and page selection of a list request.
//
// It is an immutable value: every With method returns a modified copy.
type Query struct {
	rating    *int
	happiness *int
	order     string
	page      int
	perPage   int
}

// NewQuery returns an unfiltered, unsorted query for the first page.
func NewQuery(perPage int) Query {
	if perPage < 1 {
		perPage = pagination.DefaultPerPage
	}
	return Query{page: pagination.DefaultPage, perPage: perPage}
}

// Rating returns the rating filter, or nil when unset.
func (q Query) Rating() *int { return pointer.Copy(q.rating) }

// Happiness returns the happiness filter, or nil when unset.
func (q Query) Happiness() *int { return pointer.Copy(q.happiness) }

// Order returns the rating sort direction, empty when unsorted.
func (q Query) Order() string { return q.order }

func (q Query) Page() int    { return q.page }
func (q Query) PerPage() int { return q.perPage }

// WithRating sets or clears (nil) the rating filter and returns to page 1.
func (q Query) WithRating(rating *int) Query {
	q.rating = pointer.Copy(rating)
	q.page = pagination.DefaultPage
	return q
}

// WithHappiness sets or clears (nil) the happiness filter and returns to page 1.
func (q Query) WithHappiness(level *int) Query {
	q.happiness = pointer.Copy(level)
	q.page = pagination.DefaultPage
	return q
}

// WithSort orders by rating in direction ("asc" or "desc"). An empty
// direction removes the sort. The page returns to 1.
func (q Query) WithSort(direction string) Query {
	q.order = direction
	q.page = pagination.DefaultPage
	return q
}

// WithPage selects a page. Values below 1 select the first page.
func (q Query) WithPage(page int) Query {
	q.page = max(page, pagination.DefaultPage)
	return q
}

/*
Values encodes the query as URL parameters.

Filters appear only when set, sort and order only when a direction is
chosen, while page and per_page are always present.
*/
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.rating != nil {
		values.Set(feedback.FieldRating, strconv.Itoa(*q.rating))
	}
	if q.happiness != nil {
		values.Set(feedback.FieldHappinessLevel, strconv.Itoa(*q.happiness))
	}
	if q.order != "" {
		values.Set(feedback.ParamSort, feedback.SortRating)
		values.Set(feedback.ParamOrder, q.order)
	}
	values.Set(pagination.ParamPage, strconv.Itoa(q.page))
	values.Set(pagination.ParamPerPage, strconv.Itoa(q.perPage))
	return values
}

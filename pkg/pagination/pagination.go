// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via the "page" and
// "per_page" query parameters and how the resulting metadata is delivered in
// the API response. Both the server and the client import it so that page
// arithmetic never diverges between the two.
package pagination

import "math"

const (
	// DefaultPerPage is the number of items per page if not specified.
	DefaultPerPage = 10
	// MaxPerPage is the upper bound for items per page.
	MaxPerPage = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// ParamPage is the query parameter carrying the 1-based page number.
	ParamPage = "page"
	// ParamPerPage is the query parameter carrying the page size.
	ParamPerPage = "per_page"
)

// Params holds a validated page number and page size.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET value derived from [Page] and [PerPage].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// MaxPage returns the largest page whose offset still fits in an int for
// the given page size.
func MaxPage(perPage int) int {
	if perPage <= 1 {
		return math.MaxInt
	}
	return math.MaxInt/perPage + 1
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
}

// NewMeta constructs pagination metadata for a response.
//
// The last page is never below 1, matching what a client expects to render
// for an empty result set.
func NewMeta(page, perPage, total int) Meta {
	lastPage := TotalPages(total, perPage)
	if lastPage < 1 {
		lastPage = 1
	}

	return Meta{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}

// TotalPages returns ceil(total/perPage), or 0 when perPage is not positive.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

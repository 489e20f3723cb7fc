// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import "github.com/taibuivan/feedback/pkg/pagination"

// windowSize is the maximum number of page links shown at once.
const windowSize = 5

// Control is one navigation button.
type Control struct {
	Page     int
	Disabled bool
}

// Pager is the pagination control of a list view.
type Pager struct {
	Current    int
	TotalPages int

	// Pages is the window of page links, centred on Current where possible.
	Pages []int

	First    Control
	Previous Control
	Next     Control
	Last     Control
}

// NewPager computes the control for a result of total records. It returns
// nil when there is at most one page.
func NewPager(current, total, perPage int) *Pager {
	totalPages := pagination.TotalPages(total, perPage)
	if totalPages <= 1 {
		return nil
	}

	current = min(max(current, 1), totalPages)

	start := max(1, current-windowSize/2)
	end := start + windowSize - 1
	if end > totalPages {
		end = totalPages
		start = max(1, end-windowSize+1)
	}

	pages := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		pages = append(pages, page)
	}

	return &Pager{
		Current:    current,
		TotalPages: totalPages,
		Pages:      pages,
		First:      Control{Page: 1, Disabled: current == 1},
		Previous:   Control{Page: max(current-1, 1), Disabled: current == 1},
		Next:       Control{Page: min(current+1, totalPages), Disabled: current == totalPages},
		Last:       Control{Page: totalPages, Disabled: current == totalPages},
	}
}

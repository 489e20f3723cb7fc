// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/feedback/pkg/pagination"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"empty", 0, 10, 0},
		{"exact_multiple", 20, 10, 2},
		{"remainder", 21, 10, 3},
		{"single_partial", 3, 10, 1},
		{"zero_per_page", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.TotalPages(tt.total, tt.perPage))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, PerPage: 10}.Offset())
	assert.Equal(t, 20, pagination.Params{Page: 3, PerPage: 10}.Offset())
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(2, 2, 5)
	assert.Equal(t, pagination.Meta{CurrentPage: 2, PerPage: 2, Total: 5, LastPage: 3}, meta)

	// An empty result still reports one (empty) page.
	assert.Equal(t, 1, pagination.NewMeta(1, 10, 0).LastPage)
}

func TestMaxPage(t *testing.T) {
	assert.Equal(t, math.MaxInt, pagination.MaxPage(1))

	largest := pagination.MaxPage(10)
	assert.GreaterOrEqual(t, pagination.Params{Page: largest, PerPage: 10}.Offset(), 0)
	assert.Equal(t, math.MaxInt/10+1, largest)
}

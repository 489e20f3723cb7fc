// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"fmt"
	"strings"

	"github.com/taibuivan/feedback/internal/platform/validate"
	"github.com/taibuivan/feedback/pkg/pagination"
	"github.com/taibuivan/feedback/pkg/pointer"
)

// Supported sort keys and directions.
const (
	SortRating = "rating"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListParams carries the raw list query parameters exactly as received.
//
// Values stay strings so that malformed input is reported by validation
// instead of being coerced to a default.
type ListParams struct {
	Rating         string
	HappinessLevel string
	Sort           string
	Order          string
	Page           string
	PerPage        string
}

// Query is a validated list query.
type Query struct {
	Rating         *int
	HappinessLevel *int
	Sort           string
	Order          string
	pagination.Params
}

// SortField is a store column a listing may be ordered by.
type SortField string

// Orderable fields.
const (
	SortByID     SortField = "id"
	SortByRating SortField = "rating"
)

// Criteria is what a [Repository] needs to answer a listing: a predicate,
// exactly one ordering key, and a window.
type Criteria struct {
	Rating         *int
	HappinessLevel *int
	SortBy         SortField
	Descending     bool
	Limit          int
	Offset         int
}

// Parse validates every parameter, collecting all violations, and returns
// the resulting [Query]. Absent or empty parameters take their defaults.
func (params ListParams) Parse() (Query, error) {
	validator := &validate.Validator{}
	query := Query{
		Order:  OrderDesc,
		Params: pagination.Params{Page: pagination.DefaultPage, PerPage: pagination.DefaultPerPage},
	}

	if rating, ok := validator.Int(FieldRating, params.Rating); ok {
		validator.Range(FieldRating, rating, MinScore, MaxScore)
		query.Rating = pointer.To(rating)
	}

	if happiness, ok := validator.Int(FieldHappinessLevel, params.HappinessLevel); ok {
		validator.Range(FieldHappinessLevel, happiness, MinScore, MaxScore)
		query.HappinessLevel = pointer.To(happiness)
	}

	if params.Sort != "" {
		validator.OneOf(ParamSort, params.Sort, SortRating)
		query.Sort = params.Sort
	}

	// order is accepted without sort but only takes effect alongside it.
	if params.Order != "" {
		validator.OneOf(ParamOrder, params.Order, OrderAsc, OrderDesc)
		query.Order = params.Order
	}

	if page, ok := validator.Int(pagination.ParamPage, params.Page); ok {
		validator.Custom(pagination.ParamPage, page < 1, "Must be at least 1")
		query.Page = page
	}

	if perPage, ok := validator.Int(pagination.ParamPerPage, params.PerPage); ok {
		validator.Range(pagination.ParamPerPage, perPage, 1, pagination.MaxPerPage)
		query.PerPage = perPage
	}

	if limit := pagination.MaxPage(query.PerPage); query.PerPage >= 1 && query.Page > limit {
		validator.Custom(pagination.ParamPage, true, fmt.Sprintf("Must not exceed %d", limit))
	}

	if err := validator.Err(); err != nil {
		return Query{}, err
	}
	return query, nil
}

// Criteria translates the query into store criteria. Without a sort the
// newest records come first.
func (query Query) Criteria() Criteria {
	criteria := Criteria{
		Rating:         query.Rating,
		HappinessLevel: query.HappinessLevel,
		SortBy:         SortByID,
		Descending:     true,
		Limit:          query.PerPage,
		Offset:         query.Offset(),
	}

	if query.Sort == SortRating {
		criteria.SortBy = SortByRating
		criteria.Descending = query.Order != OrderAsc
	}

	return criteria
}

// Matches reports whether a record satisfies the predicate part of c.
func (c Criteria) Matches(record *Feedback) bool {
	if c.Rating != nil && record.Rating != *c.Rating {
		return false
	}
	if c.HappinessLevel != nil && record.HappinessLevel != *c.HappinessLevel {
		return false
	}
	return true
}

// Key is a canonical, human-readable encoding of c used as a cache key.
func (c Criteria) Key() string {
	direction := OrderAsc
	if c.Descending {
		direction = OrderDesc
	}

	var builder strings.Builder
	builder.WriteString("r=")
	builder.WriteString(optionalInt(c.Rating))
	builder.WriteString("|h=")
	builder.WriteString(optionalInt(c.HappinessLevel))
	fmt.Fprintf(&builder, "|s=%s:%s|l=%d|o=%d", c.SortBy, direction, c.Limit, c.Offset)
	return builder.String()
}

func optionalInt(value *int) string {
	if value == nil {
		return "*"
	}
	return fmt.Sprint(*value)
}

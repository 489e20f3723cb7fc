// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package feedback implements the customer feedback domain: submitting a
satisfaction record and browsing submitted records with filters, sorting and
pagination.

# Layers

  - feedback.go: the record and its input/output shapes.
  - query.go: list parameter validation and store criteria.
  - service.go: validate-then-execute operations.
  - store*.go: the [Repository] contract and its PostgreSQL, in-memory and
    Redis-cached implementations.
  - http.go: the chi handler.

Records are append-only. Nothing in this package updates or deletes them.
*/
package feedback

import (
	"encoding/json"
	"math"
	"time"
)

// Feedback is a single customer satisfaction record.
type Feedback struct {
	ID             int64     `json:"id"`
	CustomerName   string    `json:"customer_name"`
	Rating         int       `json:"rating"`
	Message        string    `json:"message"`
	HappinessLevel int       `json:"happiness_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateInput is the payload of a feedback submission.
//
// Pointer fields distinguish a missing field from a zero value so that every
// missing field can be reported individually.
type CreateInput struct {
	CustomerName   *string `json:"customer_name"`
	Rating         *int    `json:"rating"`
	Message        *string `json:"message"`
	HappinessLevel *int    `json:"happiness_level"`

	// invalid holds fields whose JSON value had the wrong type.
	invalid map[string]string
}

// UnmarshalJSON decodes a submission field by field. A value of the wrong
// type is recorded for validation instead of failing the whole body, so it
// is reported alongside every other field error. The body itself must be a
// JSON object.
func (input *CreateInput) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*input = CreateInput{}
	input.CustomerName = input.decodeString(fields, FieldCustomerName)
	input.Rating = input.decodeInt(fields, FieldRating)
	input.Message = input.decodeString(fields, FieldMessage)
	input.HappinessLevel = input.decodeInt(fields, FieldHappinessLevel)
	return nil
}

func (input *CreateInput) decodeString(fields map[string]json.RawMessage, field string) *string {
	raw, ok := fields[field]
	if !ok || string(raw) == "null" {
		return nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		input.reject(field, "Must be a string")
		return nil
	}
	return &value
}

// decodeInt accepts JSON numbers with no fractional part, so 6.0 reads as 6.
func (input *CreateInput) decodeInt(fields map[string]json.RawMessage, field string) *int {
	raw, ok := fields[field]
	if !ok || string(raw) == "null" {
		return nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err != nil ||
		number != math.Trunc(number) || math.Abs(number) > math.MaxInt32 {
		input.reject(field, "Must be an integer")
		return nil
	}

	value := int(number)
	return &value
}

func (input *CreateInput) reject(field, message string) {
	if input.invalid == nil {
		input.invalid = make(map[string]string)
	}
	input.invalid[field] = message
}

// Page is one page of a filtered, ordered listing.
type Page struct {
	Data        []*Feedback
	Total       int
	CurrentPage int
	PerPage     int
}

// Field names, shared by validation errors, JSON and query parameters.
const (
	FieldCustomerName   = "customer_name"
	FieldRating         = "rating"
	FieldMessage        = "message"
	FieldHappinessLevel = "happiness_level"

	ParamSort  = "sort"
	ParamOrder = "order"
)

// Value constraints.
const (
	MinScore = 1
	MaxScore = 5

	MaxCustomerNameLen = 255
	MinMessageLen      = 10
	MaxMessageLen      = 255
)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/feedback/internal/platform/apperr"
	"github.com/taibuivan/feedback/internal/platform/validate"
)

// Service runs feedback operations. Validation always precedes store access,
// so an invalid request never touches the [Repository].
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a feedback [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
List returns one page of records matching the filters in params.

Returns:
  - *Page: the requested page plus the filtered total
  - error: apperr VALIDATION_ERROR listing every invalid parameter, or a store error
*/
func (service *Service) List(ctx context.Context, params ListParams) (*Page, error) {
	query, err := params.Parse()
	if err != nil {
		return nil, err
	}

	records, total, err := service.repo.Query(ctx, query.Criteria())
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []*Feedback{}
	}

	return &Page{
		Data:        records,
		Total:       total,
		CurrentPage: query.Page,
		PerPage:     query.PerPage,
	}, nil
}

/*
Create validates input and appends a new record.

Text fields are trimmed and NFC-normalised before they are measured and stored.

Returns:
  - *Feedback: the stored record with its id and timestamps
  - error: apperr VALIDATION_ERROR listing every invalid field, or a store error
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Feedback, error) {
	record, err := input.validate()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Append(ctx, record); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "feedback_created",
		slog.Int64("feedback_id", record.ID),
		slog.Int("rating", record.Rating),
		slog.Int("happiness_level", record.HappinessLevel),
	)
	return record, nil
}

// Get, Update and Delete back routes that are declared but have no behaviour.

func (service *Service) Get(context.Context, int64) (*Feedback, error) {
	return nil, apperr.NotImplemented("Reading a single feedback")
}

func (service *Service) Update(context.Context, int64) (*Feedback, error) {
	return nil, apperr.NotImplemented("Updating feedback")
}

func (service *Service) Delete(context.Context, int64) error {
	return apperr.NotImplemented("Deleting feedback")
}

// validate checks every writable field and builds the record to persist.
func (input CreateInput) validate() (*Feedback, error) {
	validator := &validate.Validator{}
	record := &Feedback{}

	if input.check(validator, FieldCustomerName, input.CustomerName != nil) {
		record.CustomerName = normalize(*input.CustomerName)
		validator.
			Required(FieldCustomerName, record.CustomerName).
			MaxLen(FieldCustomerName, record.CustomerName, MaxCustomerNameLen).
			NoDigits(FieldCustomerName, record.CustomerName)
	}

	if input.check(validator, FieldRating, input.Rating != nil) {
		record.Rating = *input.Rating
		validator.Range(FieldRating, record.Rating, MinScore, MaxScore)
	}

	if input.check(validator, FieldMessage, input.Message != nil) {
		record.Message = normalize(*input.Message)
		validator.
			MinLen(FieldMessage, record.Message, MinMessageLen).
			MaxLen(FieldMessage, record.Message, MaxMessageLen)
	}

	if input.check(validator, FieldHappinessLevel, input.HappinessLevel != nil) {
		record.HappinessLevel = *input.HappinessLevel
		validator.Range(FieldHappinessLevel, record.HappinessLevel, MinScore, MaxScore)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return record, nil
}

// check records a type or presence failure for field and reports whether
// its value can be validated further.
func (input CreateInput) check(validator *validate.Validator, field string, set bool) bool {
	if message, invalid := input.invalid[field]; invalid {
		validator.Custom(field, true, message)
		return false
	}
	validator.Present(field, set)
	return set
}

func normalize(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

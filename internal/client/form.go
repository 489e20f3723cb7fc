// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"context"
	"errors"

	"github.com/taibuivan/feedback/internal/feedback"
)

// Defaults for a fresh submission form.
const (
	DefaultRating    = 5
	DefaultHappiness = 3
)

// SubmitErrorMessage is shown for any submission failure without field errors.
const SubmitErrorMessage = "Failed to submit feedback. Please try again."

// Creator is the write side of [Client].
type Creator interface {
	Create(ctx context.Context, submission Submission) (*feedback.Feedback, error)
}

/*
Form is the new-feedback input flow.

A successful submit resets the inputs, closes the form and runs the
refresh callback. A validation failure keeps the form open with the
per-field messages. Any other failure keeps it open with one message that
[Form.Dismiss] clears.
*/
type Form struct {
	creator   Creator
	onCreated func(ctx context.Context) error

	Input       Submission
	Open        bool
	FieldErrors map[string][]string
	Error       string
}

// NewForm creates a closed form. onCreated may be nil.
func NewForm(creator Creator, onCreated func(ctx context.Context) error) *Form {
	form := &Form{creator: creator, onCreated: onCreated}
	form.reset()
	return form
}

// Show opens the form.
func (form *Form) Show() { form.Open = true }

// Close hides the form and clears its messages. Inputs are kept.
func (form *Form) Close() {
	form.Open = false
	form.FieldErrors = nil
	form.Error = ""
}

// Dismiss clears the generic error message.
func (form *Form) Dismiss() { form.Error = "" }

// Submit sends the current input.
func (form *Form) Submit(ctx context.Context) (*feedback.Feedback, error) {
	form.FieldErrors = nil
	form.Error = ""

	record, err := form.creator.Create(ctx, form.Input)
	if err != nil {
		form.Open = true

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			form.FieldErrors = validationErr.Errors
		} else {
			form.Error = SubmitErrorMessage
		}
		return nil, err
	}

	form.reset()
	form.Open = false

	if form.onCreated != nil {
		if err := form.onCreated(ctx); err != nil {
			return record, err
		}
	}
	return record, nil
}

func (form *Form) reset() {
	form.Input = Submission{Rating: DefaultRating, HappinessLevel: DefaultHappiness}
}

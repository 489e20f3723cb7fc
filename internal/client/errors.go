// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is a 422 response carrying per-field messages.
type ValidationError struct {
	Message string
	Errors  map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fmt.Sprintf("validation failed: %s (%s)", e.Message, strings.Join(fields, ", "))
}

// Field returns the messages reported for field, if any.
func (e *ValidationError) Field(field string) []string {
	return e.Errors[field]
}

// TransportError covers every failure that is not a field validation:
// unreachable server, unexpected status, or an undecodable body.
type TransportError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("feedback api: status %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("feedback api: status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("feedback api: %v", e.Err)
	}
	return "feedback api: request failed"
}

func (e *TransportError) Unwrap() error { return e.Err }

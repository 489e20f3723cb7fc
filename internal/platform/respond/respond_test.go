// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/feedback/internal/platform/apperr"
	"github.com/taibuivan/feedback/internal/platform/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			"plain_error_hidden",
			errors.New("connection reset by peer"),
			http.StatusInternalServerError,
			`{"code":"INTERNAL_ERROR","message":"An unexpected error occurred"}`,
		},
		{
			"wrapped_app_error",
			fmt.Errorf("list: %w", apperr.ValidationError("The given data was invalid.",
				apperr.FieldError{Field: "rating", Message: "Must be between 1 and 5"})),
			http.StatusUnprocessableEntity,
			`{"code":"VALIDATION_ERROR","message":"The given data was invalid.","errors":{"rating":["Must be between 1 and 5"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

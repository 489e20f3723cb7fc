// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/platform/ctxutil"
	"github.com/taibuivan/feedback/internal/platform/middleware"
	"github.com/taibuivan/feedback/internal/platform/sec"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "client-id")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "client-id", seen)
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.NewRateLimiter(ctx, 0.001, 2).Handler(okHandler)

	statuses := make([]int, 0, 3)
	var lastRetryAfter string
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Real-IP", "10.0.0.1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		statuses = append(statuses, recorder.Code)
		lastRetryAfter = recorder.Header().Get("Retry-After")
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
	assert.Equal(t, "1000", lastRetryAfter)

	// A different client has its own bucket.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Real-IP", "10.0.0.2")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"An unexpected error occurred"}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}

type originList []string

func (list originList) IsOriginAllowed(origin string) bool {
	for _, allowed := range list {
		if allowed == origin {
			return true
		}
	}
	return false
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(originList{"https://feedback.example.com"})(okHandler)

	t.Run("allowed_preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/api/feedback", nil)
		request.Header.Set("Origin", "https://feedback.example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "https://feedback.example.com", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown_origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
		request.Header.Set("Origin", "https://evil.example.com")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &sec.AuthClaims{UserID: "user-1", Username: "staff"}, nil
}

func TestAuthenticate(t *testing.T) {
	var claims *sec.AuthClaims
	protected := middleware.Authenticate(stubVerifier{})(middleware.RequireAuth(
		http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims = ctxutil.GetAuthUser(request.Context())
			writer.WriteHeader(http.StatusOK)
		}),
	))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"malformed", "Token good", http.StatusUnauthorized},
		{"invalid_token", "Bearer nope", http.StatusUnauthorized},
		{"valid_token", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			protected.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
		})
	}

	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
}

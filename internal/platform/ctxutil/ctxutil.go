// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores per-request values in [context.Context]: the
// correlation ID, the request-scoped logger and the verified caller.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/feedback/internal/platform/sec"
)

// contextKey is unexported so no other package can collide with these keys.
type contextKey int

const (
	keyRequestID contextKey = iota
	keyLogger
	keyAuthUser
)

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

// GetRequestID returns the correlation value, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger. Outside a request it falls
// back to [slog.Default], tagged with the request ID when one is known.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok {
		return logger
	}
	if id := GetRequestID(ctx); id != "" {
		return slog.Default().With(slog.String("request_id", id))
	}
	return slog.Default()
}

// WithAuthUser attaches the verified token claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, keyAuthUser, user)
}

// GetAuthUser returns the verified claims, or nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(keyAuthUser).(*sec.AuthClaims)
	return claims
}

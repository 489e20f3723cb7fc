// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/feedback/internal/platform/middleware"
	requestutil "github.com/taibuivan/feedback/internal/platform/request"
	"github.com/taibuivan/feedback/internal/platform/respond"
)

// Handler implements the HTTP layer for the caller's account.
type Handler struct{}

// NewHandler constructs an account [Handler].
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the account endpoints on router behind [middleware.RequireAuth].
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth).Get("/user", handler.getUser)
}

/*
GET /api/user.

Response:
  - 200: Profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ProfileFromClaims(claims))
}

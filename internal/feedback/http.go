// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/feedback/internal/platform/request"
	"github.com/taibuivan/feedback/internal/platform/respond"
	"github.com/taibuivan/feedback/pkg/pagination"
)

// CreatedMessage accompanies a successful submission.
const CreatedMessage = "Feedback submitted successfully"

// Handler implements the HTTP layer for feedback.
type Handler struct {
	service *Service
}

// NewHandler constructs a feedback [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the feedback endpoints on router.
//
// The collection lives at /feedback while single-record routes use /feedbacks/{id}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/feedback", handler.listFeedback)
	router.Post("/feedback", handler.createFeedback)

	router.Get("/feedbacks/{id}", handler.showFeedback)
	router.Put("/feedbacks/{id}", handler.updateFeedback)
	router.Delete("/feedbacks/{id}", handler.deleteFeedback)
}

/*
GET /api/feedback.

Request:
  - rating: int (1-5)
  - happiness_level: int (1-5)
  - sort: string (rating)
  - order: string (asc, desc; default desc)
  - page: int (>= 1)
  - per_page: int (1-100; default 10)

Response:
  - 200: {data, total, current_page, per_page, last_page}
  - 422: {message, code, errors}
*/
func (handler *Handler) listFeedback(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	params := ListParams{
		Rating:         queryParams.Get(FieldRating),
		HappinessLevel: queryParams.Get(FieldHappinessLevel),
		Sort:           queryParams.Get(ParamSort),
		Order:          queryParams.Get(ParamOrder),
		Page:           queryParams.Get(pagination.ParamPage),
		PerPage:        queryParams.Get(pagination.ParamPerPage),
	}

	page, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Data, pagination.NewMeta(page.CurrentPage, page.PerPage, page.Total))
}

/*
POST /api/feedback.

Request body: {customer_name, rating, message, happiness_level}

Response:
  - 201: {message, data}
  - 422: {message, code, errors}
*/
func (handler *Handler) createFeedback(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, CreatedMessage, record)
}

func (handler *Handler) showFeedback(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id", "Feedback")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) updateFeedback(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id", "Feedback")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Update(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, record)
}

func (handler *Handler) deleteFeedback(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id", "Feedback")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

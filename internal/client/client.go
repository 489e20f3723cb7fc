// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package client is the consumer side of the feedback API.

It holds an HTTP [Client] plus the view state a front end keeps on top of
it: the [Browser] list view, the submission [Form] and the [Pager].
*/
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/feedback/internal/feedback"
)

const feedbackPath = "/api/feedback"

// Page is one decoded list response.
type Page struct {
	Data        []feedback.Feedback `json:"data"`
	Total       int                 `json:"total"`
	CurrentPage int                 `json:"current_page"`
	PerPage     int                 `json:"per_page"`
	LastPage    int                 `json:"last_page"`
}

// Submission is the JSON body of a create request.
type Submission struct {
	CustomerName   string `json:"customer_name"`
	Rating         int    `json:"rating"`
	Message        string `json:"message"`
	HappinessLevel int    `json:"happiness_level"`
}

// errorBody is the server error envelope.
type errorBody struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  map[string][]string `json:"errors"`
}

// Client talks to the feedback API over HTTP. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// List fetches the page selected by query.
func (c *Client) List(ctx context.Context, query Query) (*Page, error) {
	target := c.baseURL + feedbackPath + "?" + query.Values().Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	request.Header.Set("Accept", "application/json")

	var page Page
	if err := c.do(request, http.StatusOK, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []feedback.Feedback{}
	}
	return &page, nil
}

// Create submits a new feedback record and returns the stored version.
func (c *Client) Create(ctx context.Context, submission Submission) (*feedback.Feedback, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+feedbackPath, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	var envelope struct {
		Message string            `json:"message"`
		Data    feedback.Feedback `json:"data"`
	}
	if err := c.do(request, http.StatusCreated, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// do sends request and decodes a response with status want into target.
func (c *Client) do(request *http.Request, want int, target any) error {
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.WarnContext(request.Context(), "feedback_request_failed",
			slog.String("method", request.Method),
			slog.Any("error", err),
		)
		return &TransportError{Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return &TransportError{StatusCode: response.StatusCode, Err: err}
	}

	if response.StatusCode == want {
		if err := json.Unmarshal(body, target); err != nil {
			return &TransportError{StatusCode: response.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
		return nil
	}

	var failure errorBody
	decodeErr := json.Unmarshal(body, &failure)

	if response.StatusCode == http.StatusUnprocessableEntity && decodeErr == nil && len(failure.Errors) > 0 {
		return &ValidationError{Message: failure.Message, Errors: failure.Errors}
	}

	c.logger.WarnContext(request.Context(), "feedback_unexpected_status",
		slog.String("method", request.Method),
		slog.Int("status", response.StatusCode),
		slog.String("code", failure.Code),
	)
	return &TransportError{
		StatusCode: response.StatusCode,
		Message:    failure.Message,
		Err:        errors.New(http.StatusText(response.StatusCode)),
	}
}

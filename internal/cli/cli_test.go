// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/cli"
	"github.com/taibuivan/feedback/internal/client"
	"github.com/taibuivan/feedback/internal/feedback"
)

func newAPI(t *testing.T) (*httptest.Server, *feedback.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := feedback.NewService(feedback.NewMemoryRepository(), logger)

	router := chi.NewRouter()
	router.Route("/api", feedback.NewHandler(service).RegisterRoutes)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, service
}

func run(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(cli.Settings{APIURL: apiURL, Timeout: 5 * time.Second})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("FEEDBACK_API_URL", "http://feedback.internal:9000")

	settings, err := cli.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "http://feedback.internal:9000", settings.APIURL)
	assert.Equal(t, 10*time.Second, settings.Timeout)
}

func TestSubmitAndList(t *testing.T) {
	server, _ := newAPI(t)

	out, err := run(t, server.URL, "submit", "--name", "Ana", "--rating", "4", "--message", "Great service, loved it!")
	require.NoError(t, err)
	assert.Contains(t, out, "Feedback submitted successfully (id 1)")

	out, err = run(t, server.URL, "list", "--rating", "4", "--happiness", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Displaying 1 out of 1 feedbacks")
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "★★★★☆")

	out, err = run(t, server.URL, "list", "--rating", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No feedbacks found")
}

func TestSubmit_ValidationError(t *testing.T) {
	server, service := newAPI(t)

	out, err := run(t, server.URL, "submit", "--name", "Ana1", "--message", "short")
	require.Error(t, err)

	var validationErr *client.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, out, "customer_name:")
	assert.Contains(t, out, "message:")

	page, err := service.List(context.Background(), feedback.ListParams{})
	require.NoError(t, err)
	assert.Zero(t, page.Total)
}

func TestList_InvalidFilter(t *testing.T) {
	server, _ := newAPI(t)

	out, err := run(t, server.URL, "list", "--rating", "9")
	require.Error(t, err)
	assert.Contains(t, out, "rating:")

	_, err = run(t, server.URL, "list", "--sort", "sideways")
	assert.ErrorContains(t, err, "--sort")
}

func TestSeed(t *testing.T) {
	server, service := newAPI(t)

	out, err := run(t, server.URL, "seed", "--count", "23", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 23 feedbacks")

	page, err := service.List(context.Background(), feedback.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 23, page.Total)

	out, err = run(t, server.URL, "list", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Displaying 3 out of 23 feedbacks")
	assert.Contains(t, out, "[3]")
}

func TestSampleSubmission_AlwaysValid(t *testing.T) {
	server, _ := newAPI(t)
	api := client.New(server.URL)
	rng := rand.New(rand.NewPCG(1, 2))

	for range 100 {
		_, err := api.Create(context.Background(), cli.SampleSubmission(rng))
		require.NoError(t, err)
	}
}

func TestUnreachableAPI(t *testing.T) {
	server := httptest.NewServer(nil)
	url := server.URL
	server.Close()

	out, err := run(t, url, "list")
	require.Error(t, err)

	var transportErr *client.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Contains(t, out, client.GenericErrorMessage)
}

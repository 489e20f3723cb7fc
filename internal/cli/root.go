// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements feedbackctl, a terminal front end for the feedback API.

Commands:

  - list: browse feedback with filters, sort and paging
  - submit: send one feedback record
  - seed: submit generated sample records
*/
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/feedback/internal/client"
)

// Settings is read from the environment. Flags override it.
type Settings struct {
	APIURL  string        `env:"FEEDBACK_API_URL"     envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"FEEDBACK_API_TIMEOUT" envDefault:"10s"`
	Verbose bool          `env:"FEEDBACK_VERBOSE"     envDefault:"false"`
}

// LoadSettings parses [Settings] from the environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("cli: failed to parse environment variables: %w", err)
	}
	return settings, nil
}

// NewRootCommand builds the feedbackctl command tree.
func NewRootCommand(settings Settings) *cobra.Command {
	root := &cobra.Command{
		Use:           "feedbackctl",
		Short:         "Browse and submit customer feedback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&settings.APIURL, "api-url", settings.APIURL, "feedback API base URL (FEEDBACK_API_URL)")
	root.PersistentFlags().DurationVar(&settings.Timeout, "timeout", settings.Timeout, "per-request timeout")
	root.PersistentFlags().BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "log failed requests to stderr")

	// Flags are bound to settings, so the client is only built once they are parsed.
	newClient := func(cmd *cobra.Command) *client.Client {
		return client.New(settings.APIURL,
			client.WithHTTPClient(&http.Client{Timeout: settings.Timeout}),
			client.WithLogger(newLogger(cmd.ErrOrStderr(), settings.Verbose)),
		)
	}

	root.AddCommand(
		newListCommand(newClient),
		newSubmitCommand(newClient),
		newSeedCommand(newClient),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

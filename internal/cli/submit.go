// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/taibuivan/feedback/internal/client"
	"github.com/taibuivan/feedback/internal/feedback"
)

func newSubmitCommand(newClient func(*cobra.Command) *client.Client) *cobra.Command {
	var input client.Submission

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one feedback record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := client.NewForm(newClient(cmd), nil)
			form.Show()
			form.Input = input

			record, err := form.Submit(cmd.Context())
			out := cmd.OutOrStdout()

			var validationErr *client.ValidationError
			switch {
			case errors.As(err, &validationErr):
				fields := make([]string, 0, len(form.FieldErrors))
				for field := range form.FieldErrors {
					fields = append(fields, field)
				}
				slices.Sort(fields)
				for _, field := range fields {
					for _, message := range form.FieldErrors[field] {
						fmt.Fprintf(out, "%s: %s\n", field, message)
					}
				}
				return err
			case err != nil:
				fmt.Fprintln(out, form.Error)
				return err
			}

			fmt.Fprintf(out, "%s (id %d)\n", feedback.CreatedMessage, record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.CustomerName, "name", "", "customer name")
	cmd.Flags().IntVar(&input.Rating, "rating", client.DefaultRating, "rating (1-5)")
	cmd.Flags().StringVar(&input.Message, "message", "", "feedback message (10-255 characters)")
	cmd.Flags().IntVar(&input.HappinessLevel, "happiness", client.DefaultHappiness, "happiness level (1-5)")
	return cmd
}

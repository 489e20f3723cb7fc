// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/feedback/internal/client"
	"github.com/taibuivan/feedback/internal/feedback"
	"github.com/taibuivan/feedback/pkg/pagination"
)

func newListCommand(newClient func(*cobra.Command) *client.Client) *cobra.Command {
	var (
		rating    int
		happiness int
		order     string
		page      int
		perPage   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List feedback, newest first unless sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if order != "" && order != feedback.OrderAsc && order != feedback.OrderDesc {
				return fmt.Errorf("--sort must be %q or %q", feedback.OrderAsc, feedback.OrderDesc)
			}

			query := client.NewQuery(perPage)
			if cmd.Flags().Changed("rating") {
				query = query.WithRating(&rating)
			}
			if cmd.Flags().Changed("happiness") {
				query = query.WithHappiness(&happiness)
			}
			query = query.WithSort(order).WithPage(page)

			browser := client.NewBrowser(newClient(cmd), query)
			listErr := browser.Refresh(cmd.Context())

			if err := client.Render(cmd.OutOrStdout(), browser.State()); err != nil {
				return err
			}
			return listErr
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "only show this rating (1-5)")
	cmd.Flags().IntVar(&happiness, "happiness", 0, "only show this happiness level (1-5)")
	cmd.Flags().StringVar(&order, "sort", "", "sort by rating: asc or desc")
	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", pagination.DefaultPerPage, "records per page")
	return cmd
}

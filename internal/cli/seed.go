// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/taibuivan/feedback/internal/client"
	"github.com/taibuivan/feedback/internal/feedback"
)

var (
	sampleNames = []string{
		"Ana Souza", "Bo Lindqvist", "Chidi Okafor", "Dana Whitfield", "Emeka Nwosu",
		"Farah Haddad", "Gino Moretti", "Hana Sato", "Ines Duarte", "Jonas Weber",
	}
	sampleMessages = []string{
		"Great service, loved it!",
		"Delivery was late but support sorted it out.",
		"The staff were friendly and quick.",
		"Not what I expected, the product broke after a week.",
		"Checkout was confusing on mobile.",
		"Excellent value for the price.",
		"Waited too long on the phone before anyone answered.",
		"Would happily recommend to friends.",
	}
)

// SampleSubmission generates a random valid submission.
func SampleSubmission(rng *rand.Rand) client.Submission {
	return client.Submission{
		CustomerName:   sampleNames[rng.IntN(len(sampleNames))],
		Rating:         feedback.MinScore + rng.IntN(feedback.MaxScore),
		Message:        sampleMessages[rng.IntN(len(sampleMessages))],
		HappinessLevel: feedback.MinScore + rng.IntN(feedback.MaxScore),
	}
}

func newSeedCommand(newClient func(*cobra.Command) *client.Client) *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Submit generated sample feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}

			rng := rand.New(rand.NewPCG(seed, seed))
			api := newClient(cmd)

			for i := range count {
				if _, err := api.Create(cmd.Context(), SampleSubmission(rng)); err != nil {
					return fmt.Errorf("seed: record %d of %d: %w", i+1, count, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d feedbacks\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 50, "number of records to submit")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible data")
	return cmd
}

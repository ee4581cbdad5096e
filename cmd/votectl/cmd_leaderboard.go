// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank every project by overall average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.store.Leaderboard(cmd.Context())
			if err != nil {
				return fmt.Errorf("leaderboard: %w", err)
			}
			renderLeaderboard(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with its averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := a.store.GetProject(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get project: %w", err)
			}
			if !ok {
				return fmt.Errorf("project %s not found", args[0])
			}

			renderDetail(cmd.OutOrStdout(), models.ProjectDetail{
				Project:  p,
				Averages: store.ComputeAverages(p.Votes),
			})
			return nil
		},
	}
}

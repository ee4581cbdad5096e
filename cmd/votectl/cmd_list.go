// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
)

func newListCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the newest projects with their averages",
		Long:  "List projects newest first. The number shown follows --limit\n(or LIST_LIMIT); --all lists every project.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit := a.cfg.ListLimit
			if all {
				limit = 0
			}

			projects, err := a.store.GetProjects(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			summaries := make([]models.ProjectSummary, len(projects))
			for i, p := range projects {
				summaries[i] = store.Summarize(p)
			}
			renderSummaries(cmd.OutOrStdout(), summaries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every project")

	return cmd
}

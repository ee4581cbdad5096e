// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/project-votes/store"
)

func newCreateCmd(a *app) *cobra.Command {
	var description, image string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("name is required")
			}

			p, err := a.store.CreateProject(cmd.Context(), store.NewProject{
				Name:        name,
				Description: strings.TrimSpace(description),
				ImageURL:    image,
			})
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", p.ID, p.Name)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&description, "description", "", "Project description")
	f.StringVar(&image, "image", "", "Image URL or data URI")

	return cmd
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/project-votes/handlers"
	"github.com/danielhkuo/project-votes/models"
)

// voteFlags maps each flag to the criterion it scores.
var voteFlags = []struct {
	flag      string
	criterion string
}{
	{"general", models.CriterionGeneralUsefulness},
	{"yearn", models.CriterionUsefulnessToYearn},
	{"creativity", models.CriterionCreativity},
	{"execution", models.CriterionExecutionClarity},
}

func newVoteCmd(a *app) *cobra.Command {
	scores := make(map[string]*int, len(voteFlags))

	cmd := &cobra.Command{
		Use:   "vote <id>",
		Short: "Submit a vote for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unset flags stay nil so validation reports them as required.
			raw := make(map[string]any, len(voteFlags))
			for _, vf := range voteFlags {
				if cmd.Flags().Changed(vf.flag) {
					raw[vf.criterion] = float64(*scores[vf.flag])
				}
			}

			validated, err := handlers.ValidateScores(models.SubmitVoteRequest{
				GeneralUsefulness: raw[models.CriterionGeneralUsefulness],
				UsefulnessToYearn: raw[models.CriterionUsefulnessToYearn],
				Creativity:        raw[models.CriterionCreativity],
				ExecutionClarity:  raw[models.CriterionExecutionClarity],
			})
			if err != nil {
				return err
			}

			vote, ok, err := a.store.AddVote(cmd.Context(), args[0], validated)
			if err != nil {
				return fmt.Errorf("add vote: %w", err)
			}
			if !ok {
				return fmt.Errorf("project %s not found", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded vote %s for project %s\n", vote.ID, args[0])
			return nil
		},
	}

	f := cmd.Flags()
	for _, vf := range voteFlags {
		scores[vf.flag] = f.Int(vf.flag, 0, fmt.Sprintf("%s score (%d-%d)", vf.criterion, models.MinScore, models.MaxScore))
	}

	return cmd
}

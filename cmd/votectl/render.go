// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/danielhkuo/project-votes/models"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

func formatAverage(a models.Averages, v float64) string {
	if !a.HasVotes() {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatVotes(n int) string {
	if n == 1 {
		return "1 vote"
	}
	return humanize.Comma(int64(n)) + " votes"
}

func since(ms int64) string {
	return humanize.Time(time.UnixMilli(ms))
}

func renderSummaries(out io.Writer, summaries []models.ProjectSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No projects yet.")
		return
	}

	t := newTable(out)
	t.AppendHeader(table.Row{"ID", "Name", "Created", "Overall", "Votes"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.Name, since(s.CreatedAt), formatAverage(s.Averages, s.Averages.Overall), formatVotes(s.Averages.Count)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 40},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

func renderDetail(out io.Writer, d models.ProjectDetail) {
	fmt.Fprintf(out, "ID:          %s\n", d.ID)
	fmt.Fprintf(out, "Name:        %s\n", d.Name)
	if d.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", d.Description)
	}
	if d.ImageURL != "" {
		fmt.Fprintf(out, "Image:       %s\n", truncate(d.ImageURL, 60))
	}
	fmt.Fprintf(out, "Created:     %s\n", since(d.CreatedAt))
	fmt.Fprintf(out, "Votes:       %s\n", formatVotes(d.Averages.Count))

	a := d.Averages
	t := newTable(out)
	t.AppendHeader(table.Row{"Criterion", "Average"})
	t.AppendRow(table.Row{models.CriterionGeneralUsefulness, formatAverage(a, a.GeneralUsefulness)})
	t.AppendRow(table.Row{models.CriterionUsefulnessToYearn, formatAverage(a, a.UsefulnessToYearn)})
	t.AppendRow(table.Row{models.CriterionCreativity, formatAverage(a, a.Creativity)})
	t.AppendRow(table.Row{models.CriterionExecutionClarity, formatAverage(a, a.ExecutionClarity)})
	t.AppendFooter(table.Row{"overall", formatAverage(a, a.Overall)})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

func renderLeaderboard(out io.Writer, entries []models.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No projects yet.")
		return
	}

	t := newTable(out)
	t.AppendHeader(table.Row{"Rank", "Name", "Overall", "Votes"})
	for _, e := range entries {
		t.AppendRow(table.Row{humanize.Ordinal(e.Rank), e.Name, formatAverage(e.Averages, e.Averages.Overall), formatVotes(e.Averages.Count)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

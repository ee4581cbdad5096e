// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"slices"

	"github.com/danielhkuo/project-votes/models"
)

// Rank orders projects for the leaderboard:
//
//  1. Projects with at least one vote come before projects with none
//  2. Higher overall average wins
//
// The sort is stable, so equal projects (including all unvoted ones) keep
// the order they were passed in.
func Rank(summaries []models.ProjectSummary) []models.LeaderboardEntry {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b models.ProjectSummary) int {
		return compareForRank(a.Averages, b.Averages)
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		entries[i] = models.LeaderboardEntry{
			Rank:     i + 1,
			ID:       s.ID,
			Name:     s.Name,
			Averages: s.Averages,
		}
	}
	return entries
}

// RankProjects summarizes projects and ranks them with Rank.
func RankProjects(projects []models.Project) []models.LeaderboardEntry {
	summaries := make([]models.ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = Summarize(p)
	}
	return Rank(summaries)
}

func compareForRank(a, b models.Averages) int {
	if a.HasVotes() != b.HasVotes() {
		if a.HasVotes() {
			return -1
		}
		return 1
	}
	if !a.HasVotes() {
		return 0
	}

	switch {
	case a.Overall > b.Overall:
		return -1
	case a.Overall < b.Overall:
		return 1
	}
	return 0
}

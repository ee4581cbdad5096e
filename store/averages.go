// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/project-votes/models"

// ComputeAverages returns the per-criterion means of votes and their
// unweighted mean. With no votes every field is zero and Count is 0.
func ComputeAverages(votes []models.Vote) models.Averages {
	if len(votes) == 0 {
		return models.Averages{}
	}

	var general, yearn, creativity, execution int
	for _, v := range votes {
		general += v.GeneralUsefulness
		yearn += v.UsefulnessToYearn
		creativity += v.Creativity
		execution += v.ExecutionClarity
	}

	n := float64(len(votes))
	avg := models.Averages{
		GeneralUsefulness: float64(general) / n,
		UsefulnessToYearn: float64(yearn) / n,
		Creativity:        float64(creativity) / n,
		ExecutionClarity:  float64(execution) / n,
		Count:             len(votes),
	}
	avg.Overall = (avg.GeneralUsefulness + avg.UsefulnessToYearn + avg.Creativity + avg.ExecutionClarity) / 4

	return avg
}

// Summarize drops the votes from p and attaches their averages.
func Summarize(p models.Project) models.ProjectSummary {
	return models.ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		Averages:    ComputeAverages(p.Votes),
	}
}

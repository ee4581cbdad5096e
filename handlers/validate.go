// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math"

	"github.com/danielhkuo/project-votes/models"
)

// ValidationError names the request field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateScores checks every criterion of req in canonical order and
// returns the first failure. A score must be present, a whole number and
// within [MinScore, MaxScore].
func ValidateScores(req models.SubmitVoteRequest) (models.Scores, error) {
	raw := map[string]any{
		models.CriterionGeneralUsefulness: req.GeneralUsefulness,
		models.CriterionUsefulnessToYearn: req.UsefulnessToYearn,
		models.CriterionCreativity:        req.Creativity,
		models.CriterionExecutionClarity:  req.ExecutionClarity,
	}

	values := make(map[string]int, len(models.Criteria))
	for _, field := range models.Criteria {
		v, err := scoreValue(field, raw[field])
		if err != nil {
			return models.Scores{}, err
		}
		values[field] = v
	}

	return models.Scores{
		GeneralUsefulness: values[models.CriterionGeneralUsefulness],
		UsefulnessToYearn: values[models.CriterionUsefulnessToYearn],
		Creativity:        values[models.CriterionCreativity],
		ExecutionClarity:  values[models.CriterionExecutionClarity],
	}, nil
}

func scoreValue(field string, v any) (int, error) {
	if v == nil {
		return 0, &ValidationError{Field: field, Message: field + " is required"}
	}

	invalid := &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s must be an integer between %d and %d", field, models.MinScore, models.MaxScore),
	}

	// encoding/json decodes every number into float64
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < models.MinScore || f > models.MaxScore {
		return 0, invalid
	}
	return int(f), nil
}

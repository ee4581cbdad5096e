// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"testing"

	"github.com/danielhkuo/project-votes/models"
)

func validRequest() models.SubmitVoteRequest {
	return models.SubmitVoteRequest{
		GeneralUsefulness: float64(7),
		UsefulnessToYearn: float64(8),
		Creativity:        float64(9),
		ExecutionClarity:  float64(10),
	}
}

func TestValidateScores(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(r *models.SubmitVoteRequest)
		expectedField string
		expectedMsg   string
	}{
		{
			name:          "zero",
			modify:        func(r *models.SubmitVoteRequest) { r.GeneralUsefulness = float64(0) },
			expectedField: "generalUsefulness",
			expectedMsg:   "generalUsefulness must be an integer between 1 and 10",
		},
		{
			name:          "eleven",
			modify:        func(r *models.SubmitVoteRequest) { r.UsefulnessToYearn = float64(11) },
			expectedField: "usefulnessToYearn",
			expectedMsg:   "usefulnessToYearn must be an integer between 1 and 10",
		},
		{
			name:          "fractional",
			modify:        func(r *models.SubmitVoteRequest) { r.Creativity = 5.5 },
			expectedField: "creativity",
			expectedMsg:   "creativity must be an integer between 1 and 10",
		},
		{
			name:          "missing",
			modify:        func(r *models.SubmitVoteRequest) { r.ExecutionClarity = nil },
			expectedField: "executionClarity",
			expectedMsg:   "executionClarity is required",
		},
		{
			name:          "string number",
			modify:        func(r *models.SubmitVoteRequest) { r.Creativity = "5" },
			expectedField: "creativity",
			expectedMsg:   "creativity must be an integer between 1 and 10",
		},
		{
			name:          "boolean",
			modify:        func(r *models.SubmitVoteRequest) { r.GeneralUsefulness = true },
			expectedField: "generalUsefulness",
			expectedMsg:   "generalUsefulness must be an integer between 1 and 10",
		},
		{
			name: "first failing field in criterion order wins",
			modify: func(r *models.SubmitVoteRequest) {
				r.ExecutionClarity = float64(0)
				r.UsefulnessToYearn = nil
			},
			expectedField: "usefulnessToYearn",
			expectedMsg:   "usefulnessToYearn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(&req)

			_, err := ValidateScores(req)
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.expectedField {
				t.Errorf("Expected field %q, got %q", tt.expectedField, verr.Field)
			}
			if verr.Message != tt.expectedMsg {
				t.Errorf("Expected message %q, got %q", tt.expectedMsg, verr.Message)
			}
		})
	}
}

func TestValidateScores_Valid(t *testing.T) {
	tests := []struct {
		name     string
		req      models.SubmitVoteRequest
		expected models.Scores
	}{
		{
			name:     "mixed scores",
			req:      validRequest(),
			expected: models.Scores{GeneralUsefulness: 7, UsefulnessToYearn: 8, Creativity: 9, ExecutionClarity: 10},
		},
		{
			name: "bounds are inclusive",
			req: models.SubmitVoteRequest{
				GeneralUsefulness: float64(1),
				UsefulnessToYearn: float64(10),
				Creativity:        float64(1),
				ExecutionClarity:  float64(10),
			},
			expected: models.Scores{GeneralUsefulness: 1, UsefulnessToYearn: 10, Creativity: 1, ExecutionClarity: 10},
		},
		{
			name: "integral float",
			req: models.SubmitVoteRequest{
				GeneralUsefulness: 4.0,
				UsefulnessToYearn: 4.0,
				Creativity:        4.0,
				ExecutionClarity:  4.0,
			},
			expected: models.Scores{GeneralUsefulness: 4, UsefulnessToYearn: 4, Creativity: 4, ExecutionClarity: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := ValidateScores(tt.req)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if scores != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, scores)
			}
		})
	}
}

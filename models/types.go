// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Criterion names, in the order votes are validated and displayed
const (
	CriterionGeneralUsefulness = "generalUsefulness"
	CriterionUsefulnessToYearn = "usefulnessToYearn"
	CriterionCreativity        = "creativity"
	CriterionExecutionClarity  = "executionClarity"
)

// Criteria lists every scored criterion in canonical order.
var Criteria = []string{
	CriterionGeneralUsefulness,
	CriterionUsefulnessToYearn,
	CriterionCreativity,
	CriterionExecutionClarity,
}

// Score bounds (inclusive)
const (
	MinScore = 1
	MaxScore = 10
)

// Domain types

// Scores holds one rater's value for each criterion.
type Scores struct {
	GeneralUsefulness int `json:"generalUsefulness"`
	UsefulnessToYearn int `json:"usefulnessToYearn"`
	Creativity        int `json:"creativity"`
	ExecutionClarity  int `json:"executionClarity"`
}

type Vote struct {
	ID string `json:"id"`
	Scores
	CreatedAt int64 `json:"createdAt"` // ms since epoch
}

// ProjectMeta is the record persisted under project:{id}. Votes live in
// their own list and are never part of this record.
type ProjectMeta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CreatedAt   int64  `json:"createdAt"` // ms since epoch
}

type Project struct {
	ProjectMeta
	Votes []Vote `json:"votes"`
}

// Averages is derived from a vote sequence on every read and never stored.
// Count == 0 means "no votes"; the zero means are a display sentinel.
type Averages struct {
	GeneralUsefulness float64 `json:"generalUsefulness"`
	UsefulnessToYearn float64 `json:"usefulnessToYearn"`
	Creativity        float64 `json:"creativity"`
	ExecutionClarity  float64 `json:"executionClarity"`
	Overall           float64 `json:"overall"`
	Count             int     `json:"count"`
}

// HasVotes reports whether the averages were computed from at least one vote.
func (a Averages) HasVotes() bool {
	return a.Count > 0
}

// Request types

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Fields are left untyped so that a missing, non-numeric or fractional
// value can be reported against the field that carried it.
type SubmitVoteRequest struct {
	GeneralUsefulness any `json:"generalUsefulness"`
	UsefulnessToYearn any `json:"usefulnessToYearn"`
	Creativity        any `json:"creativity"`
	ExecutionClarity  any `json:"executionClarity"`
}

// Response types

type ProjectSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	CreatedAt   int64    `json:"createdAt"`
	Averages    Averages `json:"averages"`
}

type ProjectDetail struct {
	Project
	Averages Averages `json:"averages"`
}

type LeaderboardEntry struct {
	Rank     int      `json:"rank"` // 1-indexed
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Averages Averages `json:"averages"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - ProjectMeta: the persisted project record (id, name, description, imageUrl, createdAt)
  - Project: ProjectMeta plus its votes in submission order
  - Scores: one integer per criterion, each in [1, 10]
  - Vote: a Scores submission with id and createdAt
  - Averages: per-criterion means, overall mean-of-means and vote count

Timestamps are milliseconds since the Unix epoch, matching the JSON the
frontend already consumes.

# Request Types

  - CreateProjectRequest: name, description, imageUrl
  - SubmitVoteRequest: the four criterion scores

# Response Types

  - ProjectSummary: list item with averages
  - ProjectDetail: full project with votes and averages
  - LeaderboardEntry: ranked row
  - ErrorResponse: error, message, field

# Criteria

	generalUsefulness  usefulness in general
	usefulnessToYearn  usefulness to the organisation
	creativity
	executionClarity   execution and clarity

The Criteria slice fixes the canonical order used for validation and display.
*/
package models

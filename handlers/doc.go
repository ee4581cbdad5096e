// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the project voting API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ProjectHandler: create, list and fetch projects
  - VotingHandler: vote submission
  - LeaderboardHandler: ranked projects

Handlers are created via constructor functions that accept *store.Store and Config:

	projectHandler := handlers.NewProjectHandler(st, cfg)

# Routes

	GET  /api/projects            → ListProjects (?all=true, ?limit=N)
	POST /api/projects            → CreateProject
	GET  /api/projects/{id}       → GetProject (votes and averages)
	POST /api/projects/{id}/vote  → SubmitVote
	GET  /api/leaderboard         → GetLeaderboard

# Validation

Request bodies are checked before the store is called. ValidateScores
walks the four criteria in order and reports the first bad one:

	{"error":"Bad Request","message":"creativity must be an integer between 1 and 10","field":"creativity"}

Storage failures are logged and answered with 500 "Storage error".
*/
package handlers

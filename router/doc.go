// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the project voting API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	handler := router.NewRouter(st, cfg)

Request bodies are capped at cfg.MaxBodyBytes; larger bodies get 413.

# Endpoints

Operational:

	GET /health  - 200 "OK" when the store answers, 503 otherwise
	GET /metrics - Prometheus exposition

Projects:

	GET  /api/projects           - Newest projects with averages (?all=true, ?limit=N)
	POST /api/projects           - Create project
	GET  /api/projects/{id}      - Project with votes and averages
	POST /api/projects/{id}/vote - Submit vote

Ranking:

	GET /api/leaderboard - All projects ranked by overall average

# Handler Initialization

The router creates handler instances with dependency injection:

	projectHandler := handlers.NewProjectHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(st, cfg)

All handlers share one *store.Store.
*/
package router

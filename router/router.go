// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/handlers"
	"github.com/danielhkuo/project-votes/metrics"
	"github.com/danielhkuo/project-votes/middleware"
	"github.com/danielhkuo/project-votes/store"
)

// NewRouter registers every endpoint and caps request bodies at
// cfg.MaxBodyBytes.
func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(st, cfg)
	votingHandler := handlers.NewVotingHandler(st, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "store unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Projects
	mux.HandleFunc("GET /api/projects", middleware.WithLogging(projectHandler.ListProjects))
	mux.HandleFunc("POST /api/projects", middleware.WithLogging(projectHandler.CreateProject))
	mux.HandleFunc("GET /api/projects/{id}", middleware.WithLogging(projectHandler.GetProject))

	// Voting
	mux.HandleFunc("POST /api/projects/{id}/vote", middleware.WithLogging(votingHandler.SubmitVote))

	// Ranking
	mux.HandleFunc("GET /api/leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("project-votes API v1"))
	})

	return middleware.WithBodyLimit(cfg.MaxBodyBytes, mux)
}

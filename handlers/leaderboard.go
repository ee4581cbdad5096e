// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/middleware"
	"github.com/danielhkuo/project-votes/store"
)

type LeaderboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(st *store.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: st, cfg: cfg}
}

// GetLeaderboard handles GET /api/leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.Leaderboard(r.Context())
	if err != nil {
		storageError(w, "leaderboard", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

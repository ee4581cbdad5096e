// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/metrics"
	"github.com/danielhkuo/project-votes/middleware"
	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
)

type VotingHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVotingHandler(st *store.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: st, cfg: cfg}
}

// SubmitVote handles POST /api/projects/{id}/vote
// Scores are validated before the project is looked up.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	scores, err := ValidateScores(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			middleware.FieldErrorResponse(w, verr.Field, verr.Message)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	vote, ok, err := h.store.AddVote(r.Context(), projectID, scores)
	if err != nil {
		storageError(w, "add_vote", err)
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	metrics.VotesSubmitted.Inc()
	slog.Info("vote submitted", "project_id", projectID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

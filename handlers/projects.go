// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/metrics"
	"github.com/danielhkuo/project-votes/middleware"
	"github.com/danielhkuo/project-votes/models"
	"github.com/danielhkuo/project-votes/store"
)

type ProjectHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewProjectHandler(st *store.Store, cfg cliparse.Config) *ProjectHandler {
	return &ProjectHandler{store: st, cfg: cfg}
}

// ListProjects handles GET /api/projects
// ?all=true lists every project, ?limit=N overrides the configured cap
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	limit, ok := h.listLimit(w, r)
	if !ok {
		return
	}

	projects, err := h.store.GetProjects(r.Context(), limit)
	if err != nil {
		storageError(w, "list_projects", err)
		return
	}

	summaries := make([]models.ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = store.Summarize(p)
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

func (h *ProjectHandler) listLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	query := r.URL.Query()
	if query.Get("all") == "true" {
		return 0, true
	}

	raw := query.Get("limit")
	if raw == "" {
		return h.cfg.ListLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		middleware.FieldErrorResponse(w, "limit", "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")

	project, ok, err := h.store.GetProject(r.Context(), projectID)
	if err != nil {
		storageError(w, "get_project", err)
		return
	}
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProjectDetail{
		Project:  project,
		Averages: store.ComputeAverages(project.Votes),
	})
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.FieldErrorResponse(w, "name", "name is required")
		return
	}

	project, err := h.store.CreateProject(r.Context(), store.NewProject{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		storageError(w, "create_project", err)
		return
	}

	metrics.ProjectsCreated.Inc()
	slog.Info("project created", "project_id", project.ID, "name", project.Name)

	middleware.JSONResponse(w, http.StatusCreated, project)
}

// storageError logs a substrate failure and answers 500 without leaking it
func storageError(w http.ResponseWriter, operation string, err error) {
	slog.Error("storage operation failed", "operation", operation, "error", err)
	metrics.StoreErrors.WithLabelValues(operation).Inc()
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
}

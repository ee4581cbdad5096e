// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/leaderboard", middleware.WithLogging(handler))

Logs request start (method, path, client_ip) and completion (status,
duration_ms), and records the request in the metrics package under its
route pattern.

# Body Limits

	handler := middleware.WithBodyLimit(cfg.MaxBodyBytes, mux)

BodyErrorResponse turns an oversized body into 413 and anything else
ParseJSONBody rejects into 400.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with the Content-Type header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
	middleware.FieldErrorResponse(w, "name", "name is required")

Parse JSON request bodies:

	var req models.CreateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the project-votes API server.

project-votes collects 1-10 ratings for projects on four criteria
(general usefulness, usefulness to Yearn, creativity, execution clarity)
and serves per-project averages and a leaderboard.

# Starting the Server

With no configuration the server keeps everything in memory:

	go run .

Persistent backends are chosen with -b or STORE_BACKEND:

	STORE_BACKEND=redis REDIS_URL=redis://localhost:6379/0 go run .
	go run . -b postgres -d "postgres://..."
	go run . -b sqlite -d ./votes.db

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORE_BACKEND (-b): memory, redis, postgres or sqlite (default: memory)
  - REDIS_URL (-r): Redis URL, required for the redis backend
  - DATABASE_URL (-d): DSN, required for postgres and sqlite
  - LIST_LIMIT (-limit): Projects returned by default listing (default: 10)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - MAX_BODY_BYTES (-max-body): Request body cap (default: 4 MiB)

Variables are also read from a .env file when one exists (-env-file).

# Architecture

  - kv: key-value substrate and its backends
  - store: projects, votes, averages and ranking over kv
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, body limits, JSON helpers
  - models: Request/response and record types
  - idgen: Project and vote identifiers
  - db: SQL schema for the postgres and sqlite backends
  - metrics: Prometheus collectors
  - logging: slog handler setup
  - cliparse: Configuration parsing
  - cmd/votectl: Operator CLI over the same store

See package documentation for each component.
*/
package main

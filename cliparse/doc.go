// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - Backend: memory, redis, postgres or sqlite (default: memory)
  - RedisURL: required for the redis backend
  - DatabaseURL: required for the postgres and sqlite backends
  - ListLimit: projects returned by a plain listing (default: 10)
  - LogLevel: debug, info, warn or error (default: info)
  - MaxBodyBytes: request body cap (default: 4 MiB)

# CLI Flags

	-p          Server port
	-b          Store backend
	-r          Redis URL
	-d          Database URL
	-limit      Default listing size
	-log-level  Log level
	-max-body   Request body cap in bytes
	-env-file   Env file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_BACKEND  → -b
	REDIS_URL      → -r (KV_URL is read when REDIS_URL is unset)
	DATABASE_URL   → -d
	LIST_LIMIT     → -limit
	LOG_LEVEL      → -log-level
	MAX_BODY_BYTES → -max-body

CLI flags take precedence over environment variables. Variables in the env
file (loaded with github.com/joho/godotenv) never override ones already set
in the process environment.

# Validation

ParseFlags returns an error if:

  - the backend is not one of kv.Backends
  - the backend needs a URL that was not provided
  - a numeric value does not parse or is negative

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	kvStore, err := kv.Open(ctx, cfg.StoreOptions())
	// ...
	mux := router.NewRouter(store.New(kvStore), cfg)
*/
package cliparse

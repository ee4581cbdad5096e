// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/project-votes/db"
)

// Backend names accepted by Open
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Backends lists every name Open accepts.
var Backends = []string{BackendMemory, BackendRedis, BackendPostgres, BackendSQLite}

// Options selects and configures a backend.
type Options struct {
	Backend     string
	RedisURL    string // redis
	DatabaseURL string // postgres, sqlite
}

// Open constructs the Store named by opts.Backend. It is the only place
// that knows about concrete backends.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendMemory:
		return NewMemory(), nil

	case BackendRedis:
		if opts.RedisURL == "" {
			return nil, errors.New("redis backend requires a redis URL")
		}
		r, err := OpenRedis(opts.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := r.Ping(ctx); err != nil {
			r.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return r, nil

	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, errors.New("postgres backend requires a database URL")
		}
		return openSQL(ctx, db.DialectPostgres, opts.DatabaseURL)

	case BackendSQLite:
		if opts.DatabaseURL == "" {
			return nil, errors.New("sqlite backend requires a database URL")
		}
		return openSQL(ctx, db.DialectSQLite, opts.DatabaseURL)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// openSQL avoids handing back a typed nil *SQL inside a non-nil Store.
func openSQL(ctx context.Context, dialect, dsn string) (Store, error) {
	s, err := OpenSQL(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}

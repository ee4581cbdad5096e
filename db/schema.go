// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported SQL dialects
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// CreateSchema creates the key-value tables for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case DialectPostgres:
		schema = postgresSchema
	case DialectSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Plain records
CREATE TABLE IF NOT EXISTS kv_value (
    key TEXT PRIMARY KEY,
    value BYTEA NOT NULL
);

-- Sorted sets
CREATE TABLE IF NOT EXISTS kv_zset (
    key TEXT NOT NULL,
    member TEXT NOT NULL,
    score DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (key, member)
);

CREATE INDEX IF NOT EXISTS idx_kv_zset_score ON kv_zset(key, score DESC, member DESC);

-- Append-only lists; id gives insertion order
CREATE TABLE IF NOT EXISTS kv_list (
    id BIGSERIAL PRIMARY KEY,
    key TEXT NOT NULL,
    value BYTEA NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_kv_list_key ON kv_list(key, id);
`

const sqliteSchema = `
-- Plain records
CREATE TABLE IF NOT EXISTS kv_value (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL
);

-- Sorted sets
CREATE TABLE IF NOT EXISTS kv_zset (
    key TEXT NOT NULL,
    member TEXT NOT NULL,
    score REAL NOT NULL,
    PRIMARY KEY (key, member)
);

CREATE INDEX IF NOT EXISTS idx_kv_zset_score ON kv_zset(key, score DESC, member DESC);

-- Append-only lists; id gives insertion order
CREATE TABLE IF NOT EXISTS kv_list (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    key TEXT NOT NULL,
    value BLOB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_kv_list_key ON kv_list(key, id);
`

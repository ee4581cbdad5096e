// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/project-votes/db"
)

// SQL is a Store emulated over relational tables (see package db).
// Queries are written with $N placeholders and rebound for SQLite.
type SQL struct {
	conn    *sql.DB
	dialect string
}

// OpenSQL connects to dsn using the driver for dialect, verifies the
// connection and creates the schema.
func OpenSQL(ctx context.Context, dialect, dsn string) (*SQL, error) {
	var driver string
	switch dialect {
	case db.DialectPostgres:
		driver = "postgres"
	case db.DialectSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("%w: sql dialect %q", ErrUnknownBackend, dialect)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite allows one writer; serialising connections avoids SQLITE_BUSY
	// under concurrent appends.
	if dialect == db.DialectSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQL{conn: conn, dialect: dialect}, nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// q adapts a query to the dialect's placeholder syntax.
func (s *SQL) q(query string) string {
	if s.dialect == db.DialectSQLite {
		return placeholder.ReplaceAllString(query, "?")
	}
	return query
}

func (s *SQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.conn.QueryRowContext(ctx, s.q(`
		SELECT value FROM kv_value WHERE key = $1
	`), key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

func (s *SQL) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO kv_value (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (s *SQL) MGet(ctx context.Context, keys ...string) ([][]byte, error) {
	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	var (
		rows *sql.Rows
		err  error
	)
	if s.dialect == db.DialectPostgres {
		rows, err = s.conn.QueryContext(ctx, `
			SELECT key, value FROM kv_value WHERE key = ANY($1)
		`, pq.Array(keys))
	} else {
		marks := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
		args := make([]any, len(keys))
		for i, k := range keys {
			args[i] = k
		}
		rows, err = s.conn.QueryContext(ctx, `
			SELECT key, value FROM kv_value WHERE key IN (`+marks+`)
		`, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to multi-get: %w", err)
	}
	defer rows.Close()

	found := make(map[string][]byte, len(keys))
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		found[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to multi-get: %w", err)
	}

	out := make([][]byte, len(keys))
	for i, key := range keys {
		out[i] = found[key]
	}
	return out, nil
}

func (s *SQL) ZAdd(ctx context.Context, key string, score float64, member string) error {
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO kv_zset (key, member, score)
		VALUES ($1, $2, $3)
		ON CONFLICT (key, member) DO UPDATE SET score = excluded.score
	`), key, member, score)
	if err != nil {
		return fmt.Errorf("failed to add %s to %s: %w", member, key, err)
	}
	return nil
}

func (s *SQL) ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	// Byte-wise member order on ties, whatever the database's default
	// collation is.
	memberOrder := "member DESC"
	if s.dialect == db.DialectPostgres {
		memberOrder = `member COLLATE "C" DESC`
	}

	query := `
		SELECT member FROM kv_zset
		WHERE key = $1
		ORDER BY score DESC, ` + memberOrder
	args := []any{key}

	// Non-negative ranks map straight onto LIMIT/OFFSET; anything relative
	// to the end is sliced after reading the whole set.
	bounded := start >= 0 && stop >= 0
	if bounded {
		if start > stop {
			return []string{}, nil
		}
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, stop-start+1, start)
	}

	rows, err := s.conn.QueryContext(ctx, s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to range %s: %w", key, err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to range %s: %w", key, err)
	}

	if bounded {
		return members, nil
	}
	lo, hi, ok := rankBounds(start, stop, int64(len(members)))
	if !ok {
		return []string{}, nil
	}
	return members[lo:hi], nil
}

func (s *SQL) RPush(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx, s.q(`
		INSERT INTO kv_list (key, value) VALUES ($1, $2)
	`), key, value)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", key, err)
	}
	return nil
}

func (s *SQL) LRange(ctx context.Context, key string) ([][]byte, error) {
	rows, err := s.conn.QueryContext(ctx, s.q(`
		SELECT value FROM kv_list WHERE key = $1 ORDER BY id
	`), key)
	if err != nil {
		return nil, fmt.Errorf("failed to read list %s: %w", key, err)
	}
	defer rows.Close()

	out := [][]byte{}
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan list element: %w", err)
		}
		out = append(out, value)
	}
	return out, rows.Err()
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *SQL) Close() error {
	return s.conn.Close()
}

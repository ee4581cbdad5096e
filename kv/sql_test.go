// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/project-votes/db"
)

func newTestSQLite(t *testing.T) *SQL {
	t.Helper()

	s, err := OpenSQL(context.Background(), db.DialectSQLite, filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQL failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite(t *testing.T) {
	testStoreBehavior(t, func(t *testing.T) Store {
		return newTestSQLite(t)
	})
}

// Postgres runs only when TEST_DATABASE_URL points at a disposable database.
func TestPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testStoreBehavior(t, func(t *testing.T) Store {
		s, err := OpenSQL(context.Background(), db.DialectPostgres, dsn)
		if err != nil {
			t.Fatalf("OpenSQL failed: %v", err)
		}
		if _, err := s.conn.Exec(`TRUNCATE kv_value, kv_zset, kv_list`); err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestSQL_Rebind(t *testing.T) {
	sqlite := &SQL{dialect: db.DialectSQLite}
	postgres := &SQL{dialect: db.DialectPostgres}

	query := `SELECT member FROM kv_zset WHERE key = $1 LIMIT $2 OFFSET $3`

	if got := sqlite.q(query); got != `SELECT member FROM kv_zset WHERE key = ? LIMIT ? OFFSET ?` {
		t.Errorf("Unexpected sqlite query: %s", got)
	}
	if got := postgres.q(query); got != query {
		t.Errorf("Postgres query should be unchanged, got: %s", got)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := OpenSQL(ctx, db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("OpenSQL failed: %v", err)
	}
	s.Set(ctx, "k", []byte("v"))
	s.RPush(ctx, "l", []byte("1"))
	s.Close()

	s, err = OpenSQL(ctx, db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer s.Close()

	if got, err := s.Get(ctx, "k"); err != nil || string(got) != "v" {
		t.Errorf("Expected persisted value %q, got %q (%v)", "v", got, err)
	}
	if list, err := s.LRange(ctx, "l"); err != nil || len(list) != 1 {
		t.Errorf("Expected persisted list of 1, got %d (%v)", len(list), err)
	}
}

func TestOpenSQL_UnknownDialect(t *testing.T) {
	if _, err := OpenSQL(context.Background(), "oracle", "x"); err == nil {
		t.Error("Expected error for unknown dialect")
	}
}

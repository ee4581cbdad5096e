// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation for the SQL-backed key-value store.

# Schema Creation

CreateSchema initializes all required tables for a dialect:

	if err := db.CreateSchema(conn, db.DialectPostgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Dialects

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, no cgo)

# Tables

The schema mirrors the three key-value structures the store needs:

  - kv_value: one opaque record per key
  - kv_zset: (key, member) -> score
  - kv_list: append-only elements; the auto-increment id is the list order

There are no foreign keys; keys are application-defined strings such as
project:{id}, projects and votes:{id}.
*/
package db

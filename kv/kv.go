// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"errors"
)

var (
	// ErrNil is returned by Get when the key does not exist.
	ErrNil = errors.New("kv: key does not exist")
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("kv: unknown backend")
)

// Store is the capability the aggregation layer needs from a key-value
// backend: opaque records, a sorted set, and append-only lists.
//
// Implementations must make every successful write visible to subsequent
// reads on the same Store. No operation spans more than one key atomically.
type Store interface {
	// Get returns the value stored at key, or ErrNil.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// MGet returns one entry per key, in order; absent keys yield nil.
	MGet(ctx context.Context, keys ...string) ([][]byte, error)

	// ZAdd inserts member into the sorted set at key, or updates its score.
	ZAdd(ctx context.Context, key string, score float64, member string) error
	// ZRevRange returns members ordered by score, highest first, between
	// the inclusive ranks start and stop. Negative ranks count from the
	// end (-1 is the last member). Members with equal scores are ordered
	// by member, descending.
	ZRevRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// RPush appends value to the tail of the list at key.
	RPush(ctx context.Context, key string, value []byte) error
	// LRange returns every element of the list at key, head first.
	LRange(ctx context.Context, key string) ([][]byte, error)

	Close() error
}

// Pinger is implemented by backends that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks s if it supports it; backends without a remote side are
// always reachable.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

// rankBounds converts Redis-style inclusive ranks into a half-open slice
// range over n elements. ok is false when the range is empty.
func rankBounds(start, stop, n int64) (lo, hi int64, ok bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return 0, 0, false
	}
	return start, stop + 1, true
}

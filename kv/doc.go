// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kv provides the key-value substrate the aggregation store runs on.

# Capability

Store exposes exactly what the store package needs:

  - Get / Set / MGet: opaque records by key
  - ZAdd / ZRevRange: a sorted set read highest score first
  - RPush / LRange: append-only lists read in full

There is no delete, transaction or compare-and-swap. Each call is atomic on
its own key and nothing more.

# Backends

	memory    in-process maps, one instance per Store (tests, single node)
	redis     github.com/redis/go-redis/v9
	postgres  tables over github.com/lib/pq
	sqlite    tables over modernc.org/sqlite

Open picks one from Options at startup:

	st, err := kv.Open(ctx, kv.Options{Backend: kv.BackendRedis, RedisURL: url})

Missing keys are reported by Get as ErrNil and by MGet as nil entries.
Range reads on missing keys return empty slices.
*/
package kv

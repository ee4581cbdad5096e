// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kv

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process Store. Each instance owns its data; nothing is
// shared between instances or persisted across restarts.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	zsets  map[string]map[string]float64
	lists  map[string][][]byte
}

func NewMemory() *Memory {
	return &Memory{
		values: make(map[string][]byte),
		zsets:  make(map[string]map[string]float64),
		lists:  make(map[string][][]byte),
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNil
	}
	return slices.Clone(v), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = slices.Clone(value)
	return nil
}

func (m *Memory) MGet(_ context.Context, keys ...string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([][]byte, len(keys))
	for i, key := range keys {
		if v, ok := m.values[key]; ok {
			out[i] = slices.Clone(v)
		}
	}
	return out, nil
}

func (m *Memory) ZAdd(_ context.Context, key string, score float64, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.zsets[key]
	if !ok {
		set = make(map[string]float64)
		m.zsets[key] = set
	}
	set[member] = score
	return nil
}

func (m *Memory) ZRevRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.RLock()
	set := m.zsets[key]
	type entry struct {
		member string
		score  float64
	}
	entries := make([]entry, 0, len(set))
	for member, score := range set {
		entries = append(entries, entry{member, score})
	}
	m.mu.RUnlock()

	slices.SortFunc(entries, func(a, b entry) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		// Same tie-break as Redis ZREVRANGE
		if a.member > b.member {
			return -1
		}
		if a.member < b.member {
			return 1
		}
		return 0
	})

	lo, hi, ok := rankBounds(start, stop, int64(len(entries)))
	if !ok {
		return []string{}, nil
	}

	members := make([]string, 0, hi-lo)
	for _, e := range entries[lo:hi] {
		members = append(members, e.member)
	}
	return members, nil
}

func (m *Memory) RPush(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[key] = append(m.lists[key], slices.Clone(value))
	return nil
}

func (m *Memory) LRange(_ context.Context, key string) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.lists[key]
	out := make([][]byte, len(list))
	for i, v := range list {
		out[i] = slices.Clone(v)
	}
	return out, nil
}

// Close is a no-op; the data is released with the instance.
func (m *Memory) Close() error {
	return nil
}

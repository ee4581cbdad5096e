// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"

	"github.com/danielhkuo/project-votes/kv"
)

var errSubstrateDown = errors.New("substrate down")

// brokenKV fails every read and write while still answering Close
type brokenKV struct {
	*kv.Memory
}

func newBrokenKV() brokenKV {
	return brokenKV{Memory: kv.NewMemory()}
}

func (brokenKV) Get(context.Context, string) ([]byte, error) { return nil, errSubstrateDown }
func (brokenKV) Set(context.Context, string, []byte) error   { return errSubstrateDown }
func (brokenKV) MGet(context.Context, ...string) ([][]byte, error) {
	return nil, errSubstrateDown
}
func (brokenKV) ZAdd(context.Context, string, float64, string) error { return errSubstrateDown }
func (brokenKV) ZRevRange(context.Context, string, int64, int64) ([]string, error) {
	return nil, errSubstrateDown
}
func (brokenKV) RPush(context.Context, string, []byte) error     { return errSubstrateDown }
func (brokenKV) LRange(context.Context, string) ([][]byte, error) { return nil, errSubstrateDown }

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package store persists small amounts of application state between runs:
// window geometry, user toggles, counters. Values are strings; callers
// encode anything richer themselves.
//
// Mutations accumulate in memory until Flush writes them out, so per-frame
// writes stay cheap. Stores are not safe for concurrent use; runtimes
// drive all access from their event loop.
package store

// Store is a string key-value store with explicit flushing.
type Store interface {
	// GetString returns the value for key, or "" when key is absent.
	GetString(key string) string

	// SetString records a value in memory. Flush makes it durable.
	SetString(key, value string)

	// Flush writes pending changes out. It is a no-op when nothing
	// changed since the last flush.
	Flush() error
}

// Null returns a Store that holds values in memory for the lifetime of
// the process and never writes anything. It stands in for a real store
// when opening one fails, so applications keep a working store either
// way.
func Null() Store {
	return &nullStore{values: make(map[string]string)}
}

type nullStore struct {
	values map[string]string
}

func (s *nullStore) GetString(key string) string { return s.values[key] }

func (s *nullStore) SetString(key, value string) { s.values[key] = value }

func (s *nullStore) Flush() error { return nil }

// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"sync"
	"sync/atomic"

	"github.com/gogama/rtree"
)

// Store publishes the current snapshot of a tree.
//
// Readers load the current snapshot without locking and may keep using
// it for as long as they like. Writers are serialized, so each update
// is applied to the snapshot published by the previous one and the
// tree's RandomSource is only ever used by one goroutine at a time.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[rtree.Tree]
}

// NewStore creates a Store publishing t.
func NewStore(t rtree.Tree) *Store {
	s := &Store{}
	s.current.Store(&t)
	return s
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() rtree.Tree {
	return *s.current.Load()
}

// Update publishes the tree returned by fn, which is given the current
// snapshot, and returns both.
func (s *Store) Update(fn func(rtree.Tree) rtree.Tree) (old, updated rtree.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old = *s.current.Load()
	updated = fn(old)
	s.current.Store(&updated)
	return
}

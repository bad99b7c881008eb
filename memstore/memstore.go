// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package memstore - an arena backed node store for the avl engine
//
// Node references are indexes into a slice of records; index zero is
// reserved as the null sentinel.  Reclaimed records wait on a free
// list threaded through their less reference.  Accesses cannot fail,
// so ReadError is constantly false.
//
// Note: a store is not thread safe, the same restriction as the tree
//       engine itself.
package memstore

type node[K any] struct {
	less    uint32
	greater uint32
	balance int8
	key     K
}

// Store - in-memory node records ordered by a comparison function
type Store[K any] struct {
	cmp   func(K, K) int
	nodes []node[K]
	free  uint32 // head of the reclaimed record list
}

// New - create an empty store; cmp must be a strict three-way
// ordering of keys
func New[K any](cmp func(K, K) int) *Store[K] {
	return &Store[K]{
		cmp:   cmp,
		nodes: make([]node[K], 1), // reserve index zero as null
	}
}

// NewNode - allocate a record carrying key, reusing reclaimed records
// if any are available
func (s *Store[K]) NewNode(key K) uint32 {
	if 0 != s.free {
		h := s.free
		s.free = s.nodes[h].less
		s.nodes[h] = node[K]{key: key}
		return h
	}
	s.nodes = append(s.nodes, node[K]{key: key})
	return uint32(len(s.nodes) - 1)
}

// Release - reclaim a record; the reference must already be detached
// from any tree
func (s *Store[K]) Release(h uint32) {
	s.nodes[h] = node[K]{less: s.free}
	s.free = h
}

// Key - the key stored in a record
func (s *Store[K]) Key(h uint32) K {
	return s.nodes[h].key
}

// Null - the reserved zero reference
func (s *Store[K]) Null() uint32 {
	return 0
}

// Less - stored less child reference
func (s *Store[K]) Less(h uint32, access bool) uint32 {
	return s.nodes[h].less
}

// Greater - stored greater child reference
func (s *Store[K]) Greater(h uint32, access bool) uint32 {
	return s.nodes[h].greater
}

// SetLess - store the less child reference
func (s *Store[K]) SetLess(h uint32, child uint32) {
	s.nodes[h].less = child
}

// SetGreater - store the greater child reference
func (s *Store[K]) SetGreater(h uint32, child uint32) {
	s.nodes[h].greater = child
}

// BalanceFactor - stored balance factor
func (s *Store[K]) BalanceFactor(h uint32) int {
	return int(s.nodes[h].balance)
}

// SetBalanceFactor - store a balance factor
func (s *Store[K]) SetBalanceFactor(h uint32, balance int) {
	s.nodes[h].balance = int8(balance)
}

// CompareKeyNode - three-way comparison of a key with a node's key
func (s *Store[K]) CompareKeyNode(key K, h uint32) int {
	return s.cmp(key, s.nodes[h].key)
}

// CompareNodeNode - three-way comparison of two nodes' keys
func (s *Store[K]) CompareNodeNode(a uint32, b uint32) int {
	return s.cmp(s.nodes[a].key, s.nodes[b].key)
}

// ReadError - memory access cannot fail
func (s *Store[K]) ReadError() bool {
	return false
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Mode - bitmask selecting exact and/or nearest-neighbour matching
// for Search and Iterator.Seek
type Mode int

// search modes
const (
	Equal   Mode = 1
	Less    Mode = 2
	Greater Mode = 4

	LessEqual    = Equal | Less
	GreaterEqual = Equal | Greater
)

// Search - find a node by key
//
// with Equal set an exact match is returned when present; otherwise
// with Less (resp. Greater) set the node with the greatest key less
// than (resp. least key greater than) the search key is returned.
// Returns null when no node qualifies or on storage fault.
func (tree *Tree[K, H]) Search(key K, mode Mode) H {
	s := tree.store
	null := s.Null()

	// sign a comparison must have for a node to be a candidate
	targetCmp := 0
	if 0 != mode&Less {
		targetCmp = 1
	} else if 0 != mode&Greater {
		targetCmp = -1
	}

	match := null
	h := tree.root

	for h != null {
		cmp := s.CompareKeyNode(key, h)
		if 0 == cmp {
			if 0 != mode&Equal {
				match = h
				break
			}
			cmp = -targetCmp
		} else if 0 != targetCmp && (cmp < 0) == (targetCmp < 0) {
			// best candidate seen so far in the requested direction
			match = h
		}
		if cmp < 0 {
			h = s.Less(h, true)
		} else {
			h = s.Greater(h, true)
		}
		if s.ReadError() {
			match = null
			break
		}
	}

	return match
}

// SearchLeast - the node with the lowest key, null on empty tree or
// storage fault
func (tree *Tree[K, H]) SearchLeast() H {
	s := tree.store
	null := s.Null()

	h := tree.root
	parent := null

	for h != null {
		parent = h
		h = s.Less(h, true)
		if s.ReadError() {
			parent = null
			break
		}
	}
	return parent
}

// SearchGreatest - the node with the highest key, null on empty tree
// or storage fault
func (tree *Tree[K, H]) SearchGreatest() H {
	s := tree.store
	null := s.Null()

	h := tree.root
	parent := null

	for h != null {
		parent = h
		h = s.Greater(h, true)
		if s.ReadError() {
			parent = null
			break
		}
	}
	return parent
}

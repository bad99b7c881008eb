// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Subst - substitute a new node for the node carrying an equal key
//
// The tree's housekeeping fields (children, balance factor) are
// copied onto the new node and the new node is linked into the old
// one's position, so the tree shape is untouched.  Returns the
// displaced node with its content intact, or null when no equal-keyed
// node exists or on storage fault.
func (tree *Tree[K, H]) Subst(newNode H) H {
	s := tree.store
	null := s.Null()

	h := tree.root
	parent := null
	lastCmp := 0

	for {
		if h == null {
			// no node in tree with same key as new node
			return null
		}
		cmp := s.CompareNodeNode(newNode, h)
		if 0 == cmp {
			break
		}
		lastCmp = cmp
		parent = h
		if cmp < 0 {
			h = s.Less(h, true)
		} else {
			h = s.Greater(h, true)
		}
		if s.ReadError() {
			return null
		}
	}

	// copy tree housekeeping fields onto the new node
	s.SetLess(newNode, s.Less(h, false))
	s.SetGreater(newNode, s.Greater(h, false))
	s.SetBalanceFactor(newNode, s.BalanceFactor(h))

	if parent == null {
		tree.root = newNode
	} else if lastCmp < 0 {
		s.SetLess(parent, newNode)
	} else {
		s.SetGreater(parent, newNode)
	}

	return h
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - attach a node whose key has already been set in the store
//
// The node's child references and balance factor are initialised
// here.  On an exact key match the tree is left unchanged and the
// already present node is returned instead; duplicates are rejected,
// not merged.  Returns null on storage fault.
func (tree *Tree[K, H]) Insert(h H) H {
	s := tree.store
	null := s.Null()

	s.SetLess(h, null)
	s.SetGreater(h, null)
	s.SetBalanceFactor(h, 0)

	if tree.root == null {
		tree.root = h
		return h
	}

	// deepest node on the descent whose balance factor is non-zero
	// before the insert: the only node that can need a rotation
	unbal := null
	unbalParent := null
	unbalDepth := uint(0)

	var branch branches
	depth := uint(0)

	hh := tree.root
	parent := null
	cmp := 0

	for {
		if 0 != s.BalanceFactor(hh) {
			unbal = hh
			unbalParent = parent
			unbalDepth = depth
		}
		cmp = s.CompareNodeNode(h, hh)
		if 0 == cmp {
			// duplicate key
			return hh
		}
		parent = hh
		if cmp < 0 {
			hh = s.Less(hh, true)
		} else {
			hh = s.Greater(hh, true)
		}
		if s.ReadError() {
			return null
		}
		branch.set(depth, cmp > 0)
		depth++
		if hh == null {
			break
		}
	}

	// attach the new node as a leaf
	if cmp < 0 {
		s.SetLess(parent, h)
	} else {
		s.SetGreater(parent, h)
	}

	// update balance factors from the unbalanced node down to the new
	// leaf; above it nothing changes
	depth = unbalDepth
	if unbal == null {
		hh = tree.root
	} else {
		if branch.is(depth) {
			cmp = 1
		} else {
			cmp = -1
		}
		depth++

		bf := s.BalanceFactor(unbal)
		if cmp < 0 {
			bf--
			hh = s.Less(unbal, true)
		} else {
			bf++
			hh = s.Greater(unbal, true)
		}
		if s.ReadError() {
			return null
		}
		if -2 != bf && 2 != bf {
			// the height change is absorbed at this node
			s.SetBalanceFactor(unbal, bf)
			unbal = null
		}
	}

	if hh != null {
		for h != hh {
			if branch.is(depth) {
				s.SetBalanceFactor(hh, 1)
				hh = s.Greater(hh, true)
			} else {
				s.SetBalanceFactor(hh, -1)
				hh = s.Less(hh, true)
			}
			depth++
			if s.ReadError() {
				return null
			}
		}
	}

	if unbal != null {
		unbal = tree.balance(unbal)
		if s.ReadError() {
			return null
		}
		if unbalParent == null {
			tree.root = unbal
		} else if branch.is(unbalDepth - 1) {
			s.SetGreater(unbalParent, unbal)
		} else {
			s.SetLess(unbalParent, unbal)
		}
	}

	return h
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - verify the ordering and balance invariants
//
// every node's children must order correctly against it and every
// stored balance factor must equal the true height difference of its
// subtrees; walks the whole tree, intended for tests and offline
// verification
func (tree *Tree[K, H]) CheckBalance() bool {
	ok := true
	tree.checkSubtree(tree.root, &ok)
	return ok
}

// Height - the height of the tree, zero when empty
func (tree *Tree[K, H]) Height() int {
	ok := true
	return tree.checkSubtree(tree.root, &ok)
}

// internal: consistency checker, returns subtree height
func (tree *Tree[K, H]) checkSubtree(h H, ok *bool) int {
	s := tree.store
	null := s.Null()

	if h == null {
		return 0
	}

	less := s.Less(h, true)
	greater := s.Greater(h, true)
	if s.ReadError() {
		*ok = false
		return 0
	}

	if less != null && s.CompareNodeNode(less, h) >= 0 {
		*ok = false
	}
	if greater != null && s.CompareNodeNode(greater, h) <= 0 {
		*ok = false
	}

	lh := tree.checkSubtree(less, ok)
	gh := tree.checkSubtree(greater, ok)

	bf := gh - lh
	if bf < -1 || bf > 1 || s.BalanceFactor(h) != bf {
		*ok = false
	}

	if gh > lh {
		return 1 + gh
	}
	return 1 + lh
}

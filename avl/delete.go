// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - detach and return the node with a matching key
//
// A node with two children is replaced in place by the extremal node
// of its deeper subtree (ties, by stored balance factor sign, go to
// the greater subtree).  The recorded descent path is then retraced
// bottom-up, rebalancing while the local subtree height has actually
// decreased.  Returns the detached node, or null when the key is
// absent or on storage fault.
func (tree *Tree[K, H]) Remove(key K) H {
	s := tree.store
	null := s.Null()

	var branch branches
	var nodes [MaxDepth]H // nodes[d] is the node at depth d on the descent
	depth := uint(0)

	h := tree.root
	parent := null
	cmp := 0
	shortened := 0 // side of the shortened subtree relative to its parent

	for {
		if h == null {
			// no node in tree with given key
			return null
		}
		nodes[depth] = h
		cmp = s.CompareKeyNode(key, h)
		if 0 == cmp {
			break
		}
		parent = h
		if cmp < 0 {
			h = s.Less(h, true)
		} else {
			h = s.Greater(h, true)
		}
		if s.ReadError() {
			return null
		}
		branch.set(depth, cmp > 0)
		depth++
		shortened = cmp
	}

	rm := h
	rmParent := parent
	rmDepth := depth

	// Choose the side the replacement comes from: the deeper subtree
	// per the stored balance factor.  For a node with fewer than two
	// children this selects the only child, or null for a leaf.
	var child H
	if s.BalanceFactor(h) < 0 {
		child = s.Less(h, true)
		branch.set(depth, false)
		cmp = -1
	} else {
		child = s.Greater(h, true)
		branch.set(depth, true)
		cmp = 1
	}
	if s.ReadError() {
		return null
	}
	depth++

	if child != null {
		// descend to the extremal node of the chosen subtree
		cmp = -cmp
		for {
			parent = h
			h = child
			nodes[depth] = h
			if cmp < 0 {
				child = s.Less(h, true)
				branch.set(depth, false)
			} else {
				child = s.Greater(h, true)
				branch.set(depth, true)
			}
			if s.ReadError() {
				return null
			}
			depth++
			if child == null {
				break
			}
		}

		if parent == rm {
			// replacement is an immediate child of the removed node
			shortened = -cmp
		} else {
			shortened = cmp
		}

		// the replacement may itself have one child on the far side
		if cmp > 0 {
			child = s.Less(h, false)
		} else {
			child = s.Greater(h, false)
		}
	}

	// unlink the subtree being eliminated or reduced from depth 2 to 1
	if parent == null {
		// there were only one or two nodes in this tree
		tree.root = child
	} else if shortened < 0 {
		s.SetLess(parent, child)
	} else {
		s.SetGreater(parent, child)
	}

	// parent of the subtree whose height has dropped; when that
	// parent is the node being removed the replacement is about to be
	// poked into its position
	var path H
	if parent == rm {
		path = h
	} else {
		path = parent
	}

	if h != rm {
		// poke the replacement into the removed node's position,
		// taking over its children and balance factor
		s.SetLess(h, s.Less(rm, false))
		s.SetGreater(h, s.Greater(rm, false))
		s.SetBalanceFactor(h, s.BalanceFactor(rm))
		if rmParent == null {
			tree.root = h
		} else if branch.is(rmDepth - 1) {
			s.SetGreater(rmParent, h)
		} else {
			s.SetLess(rmParent, h)
		}
		nodes[rmDepth] = h
	}

	if path != null {
		// climb the recorded path back toward the root, rebalancing
		// while the local subtree height has actually decreased
		cmp = shortened
		for d := depth - 2; ; d-- {
			p := nodes[d]
			bf := s.BalanceFactor(p)
			if cmp < 0 {
				bf++
			} else {
				bf--
			}
			if -2 == bf || 2 == bf {
				p = tree.balance(p)
				if s.ReadError() {
					return null
				}
				if 0 == d {
					tree.root = p
				} else if branch.is(d - 1) {
					s.SetGreater(nodes[d-1], p)
				} else {
					s.SetLess(nodes[d-1], p)
				}
				bf = s.BalanceFactor(p)
			} else {
				s.SetBalanceFactor(p, bf)
			}
			if 0 != bf {
				// height unchanged from here up
				break
			}
			if 0 == d {
				break
			}
			if branch.is(d - 1) {
				cmp = 1
			} else {
				cmp = -1
			}
		}
	}

	return rm
}

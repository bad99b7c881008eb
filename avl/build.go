// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Build - construct a balanced tree from count nodes supplied in
// strictly ascending key order
//
// next must yield one node reference per call; when the source reads
// through a fallible store, its faults surface through the store's
// fault flag, which is checked after every read.  Any existing tree
// content is discarded.  The whole construction is a single forward
// pass needing only a path of branch decisions and remainder bits:
// the count is halved downwards per level (an odd node always goes to
// the greater half), one or two node subtrees are built at the
// bottom, and completed less subtrees wait on a stack threaded
// through the greater reference of their unfinished parents.
//
// Returns false on storage fault, true otherwise.
func (tree *Tree[K, H]) Build(next func() H, count uint) bool {
	s := tree.store
	null := s.Null()

	if 0 == count {
		tree.root = null
		return true
	}

	// branch path to the subtree under construction, and a flag per
	// depth noting that the greater half received the odd node
	var branch branches
	var rem branches

	depth := uint(0)
	numSub := count // number of nodes in the current subtree

	// stack of nodes whose less subtree is complete but whose greater
	// subtree is not, linked through their greater references
	lessParent := null

	var h, child H

	for {
		for numSub > 2 {
			// subtract one for the root of the subtree
			numSub--
			rem.set(depth, 0 != numSub&1)
			branch.set(depth, false)
			depth++
			numSub >>= 1
		}

		if 2 == numSub {
			// two node subtree, slanting to greater
			h = next()
			if s.ReadError() {
				return false
			}
			child = next()
			if s.ReadError() {
				return false
			}
			s.SetLess(child, null)
			s.SetGreater(child, null)
			s.SetBalanceFactor(child, 0)
			s.SetGreater(h, child)
			s.SetLess(h, null)
			s.SetBalanceFactor(h, 1)
		} else {
			// single node subtree
			h = next()
			if s.ReadError() {
				return false
			}
			s.SetLess(h, null)
			s.SetGreater(h, null)
			s.SetBalanceFactor(h, 0)
		}

		for 0 != depth {
			depth--
			if !branch.is(depth) {
				// completed a less subtree
				break
			}

			// completed a greater subtree: pop its parent off the
			// stack and attach
			child = h
			h = lessParent
			lessParent = s.Greater(h, true)
			if s.ReadError() {
				return false
			}
			s.SetGreater(h, child)

			// numSub = 2·(numSub − rem) + rem + 1
			numSub <<= 1
			if !rem.is(depth) {
				numSub++
			}
			if 0 != numSub&(numSub-1) {
				s.SetBalanceFactor(h, 0)
			} else {
				// a power of two leans greater by one level
				s.SetBalanceFactor(h, 1)
			}
		}

		if numSub == count {
			// the full tree is complete
			break
		}

		// the completed subtree is the less subtree of the next node
		// in the sequence
		child = h
		h = next()
		if s.ReadError() {
			return false
		}
		s.SetLess(h, child)

		// push onto the stack and proceed to the greater subtree
		s.SetGreater(h, lessParent)
		lessParent = h

		branch.set(depth, true)
		if rem.is(depth) {
			numSub++
		}
		depth++
	}

	tree.root = h
	return true
}

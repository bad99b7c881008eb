// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rebalance a subtree whose root is exactly two levels out of
// balance, returning the new subtree root with corrected balance
// factors, or null on storage fault
//
// only the subtree root and one or two nodes below it are touched;
// whether a single or a double rotation is needed follows from the
// lean of the deeper child
func (tree *Tree[K, H]) balance(p H) H {
	s := tree.store
	null := s.Null()

	if s.BalanceFactor(p) > 0 {
		// greater subtree is deeper
		p1 := s.Greater(p, true)
		if s.ReadError() {
			return null
		}

		if s.BalanceFactor(p1) < 0 {
			// double RL rotation
			p2 := s.Less(p1, true)
			if s.ReadError() {
				return null
			}
			s.SetGreater(p, s.Less(p2, false))
			s.SetLess(p1, s.Greater(p2, false))
			s.SetLess(p2, p)
			s.SetGreater(p2, p1)

			switch bf := s.BalanceFactor(p2); {
			case bf > 0:
				s.SetBalanceFactor(p, -1)
				s.SetBalanceFactor(p1, 0)
				s.SetBalanceFactor(p2, 0)
			case bf < 0:
				s.SetBalanceFactor(p1, 1)
				s.SetBalanceFactor(p, 0)
				s.SetBalanceFactor(p2, 0)
			default:
				s.SetBalanceFactor(p, 0)
				s.SetBalanceFactor(p1, 0)
			}
			return p2
		}

		// single RR rotation
		s.SetGreater(p, s.Less(p1, false))
		s.SetLess(p1, p)
		if 0 == s.BalanceFactor(p1) {
			s.SetBalanceFactor(p1, -1)
			s.SetBalanceFactor(p, 1)
		} else {
			s.SetBalanceFactor(p1, 0)
			s.SetBalanceFactor(p, 0)
		}
		return p1
	}

	// less subtree is deeper
	p1 := s.Less(p, true)
	if s.ReadError() {
		return null
	}

	if s.BalanceFactor(p1) > 0 {
		// double LR rotation
		p2 := s.Greater(p1, true)
		if s.ReadError() {
			return null
		}
		s.SetLess(p, s.Greater(p2, false))
		s.SetGreater(p1, s.Less(p2, false))
		s.SetGreater(p2, p)
		s.SetLess(p2, p1)

		switch bf := s.BalanceFactor(p2); {
		case bf < 0:
			s.SetBalanceFactor(p, 1)
			s.SetBalanceFactor(p1, 0)
			s.SetBalanceFactor(p2, 0)
		case bf > 0:
			s.SetBalanceFactor(p1, -1)
			s.SetBalanceFactor(p, 0)
			s.SetBalanceFactor(p2, 0)
		default:
			s.SetBalanceFactor(p, 0)
			s.SetBalanceFactor(p1, 0)
		}
		return p2
	}

	// single LL rotation
	s.SetLess(p, s.Greater(p1, false))
	s.SetGreater(p1, p)
	if 0 == s.BalanceFactor(p1) {
		s.SetBalanceFactor(p1, 1)
		s.SetBalanceFactor(p, -1)
	} else {
		s.SetBalanceFactor(p1, 0)
		s.SetBalanceFactor(p, 0)
	}
	return p1
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - bidirectional ordered cursor over a tree
//
// The zero value is invalid; one of the seek calls positions it.  The
// iterator records the root-to-node path itself so nodes need no
// parent references.  A storage fault during any access invalidates
// the iterator.
//
// Stepping an iterator while the underlying tree is mutated is
// undefined: callers must serialize access.
type Iterator[K any, H comparable] struct {
	tree   *Tree[K, H]
	branch branches
	depth  uint
	path   [MaxDepth]H // path[d] is the node entered at depth d+1
}

// Seek - position at a node selected by key and mode, recording the
// full descent path so that stepping is possible
//
// mode semantics are those of Search; the iterator is left invalid
// when no node qualifies or on storage fault
func (it *Iterator[K, H]) Seek(tree *Tree[K, H], key K, mode Mode) {
	s := tree.store
	null := s.Null()

	it.tree = tree
	it.depth = noDepth

	targetCmp := 0
	if 0 != mode&Less {
		targetCmp = 1
	} else if 0 != mode&Greater {
		targetCmp = -1
	}

	h := tree.root
	if h == null {
		return
	}

	d := uint(0)
	for {
		cmp := s.CompareKeyNode(key, h)
		if 0 == cmp {
			if 0 != mode&Equal {
				it.depth = d
				break
			}
			cmp = -targetCmp
		} else if 0 != targetCmp && (cmp < 0) == (targetCmp < 0) {
			it.depth = d
		}
		if cmp < 0 {
			h = s.Less(h, true)
		} else {
			h = s.Greater(h, true)
		}
		if s.ReadError() {
			it.depth = noDepth
			break
		}
		if h == null {
			break
		}
		it.branch.set(d, cmp > 0)
		it.path[d] = h
		d++
	}
}

// SeekLeast - position at the node with the lowest key
func (it *Iterator[K, H]) SeekLeast(tree *Tree[K, H]) {
	s := tree.store
	null := s.Null()

	it.tree = tree
	it.depth = noDepth
	it.branch.none()

	h := tree.root
	for h != null {
		if noDepth != it.depth {
			it.path[it.depth] = h
		}
		it.depth++ // wraps from the invalid marker to zero at the root
		h = s.Less(h, true)
		if s.ReadError() {
			it.depth = noDepth
			break
		}
	}
}

// SeekGreatest - position at the node with the highest key
func (it *Iterator[K, H]) SeekGreatest(tree *Tree[K, H]) {
	s := tree.store
	null := s.Null()

	it.tree = tree
	it.depth = noDepth
	it.branch.all()

	h := tree.root
	for h != null {
		if noDepth != it.depth {
			it.path[it.depth] = h
		}
		it.depth++ // wraps from the invalid marker to zero at the root
		h = s.Greater(h, true)
		if s.ReadError() {
			it.depth = noDepth
			break
		}
	}
}

// Node - the current node reference, null when the iterator is
// invalid
func (it *Iterator[K, H]) Node() H {
	if nil == it.tree {
		var zero H
		return zero
	}
	if noDepth == it.depth {
		return it.tree.store.Null()
	}
	if 0 == it.depth {
		return it.tree.root
	}
	return it.path[it.depth-1]
}

// Next - advance to the in-order successor, becoming invalid past the
// greatest node
func (it *Iterator[K, H]) Next() {
	if nil == it.tree || noDepth == it.depth {
		return
	}
	s := it.tree.store
	null := s.Null()

	h := s.Greater(it.Node(), true)
	if s.ReadError() {
		it.depth = noDepth
		return
	}

	if h == null {
		// climb while the recorded branch was a greater one
		for {
			if 0 == it.depth {
				it.depth = noDepth
				return
			}
			it.depth--
			if !it.branch.is(it.depth) {
				return
			}
		}
	}

	// descend to the least node of the greater subtree
	it.branch.set(it.depth, true)
	it.path[it.depth] = h
	it.depth++
	for {
		h = s.Less(h, true)
		if s.ReadError() {
			it.depth = noDepth
			return
		}
		if h == null {
			return
		}
		it.branch.set(it.depth, false)
		it.path[it.depth] = h
		it.depth++
	}
}

// Prev - retreat to the in-order predecessor, becoming invalid before
// the least node
func (it *Iterator[K, H]) Prev() {
	if nil == it.tree || noDepth == it.depth {
		return
	}
	s := it.tree.store
	null := s.Null()

	h := s.Less(it.Node(), true)
	if s.ReadError() {
		it.depth = noDepth
		return
	}

	if h == null {
		// climb while the recorded branch was a less one
		for {
			if 0 == it.depth {
				it.depth = noDepth
				return
			}
			it.depth--
			if it.branch.is(it.depth) {
				return
			}
		}
	}

	// descend to the greatest node of the less subtree
	it.branch.set(it.depth, false)
	it.path[it.depth] = h
	it.depth++
	for {
		h = s.Greater(h, true)
		if s.ReadError() {
			it.depth = noDepth
			return
		}
		if h == null {
			return
		}
		it.branch.set(it.depth, true)
		it.path[it.depth] = h
		it.depth++
	}
}

// ReadError - the fault flag of the underlying store
func (it *Iterator[K, H]) ReadError() bool {
	if nil == it.tree {
		return false
	}
	return it.tree.store.ReadError()
}

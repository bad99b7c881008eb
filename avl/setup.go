// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root reference of a tree kept in a Store
type Tree[K any, H comparable] struct {
	store Store[K, H]
	root  H
}

// New - create an initially empty tree over the given store
func New[K any, H comparable](store Store[K, H]) *Tree[K, H] {
	return &Tree[K, H]{
		store: store,
		root:  store.Null(),
	}
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree[K, H]) IsEmpty() bool {
	return tree.root == tree.store.Null()
}

// Root - the current root reference, null when the tree is empty
func (tree *Tree[K, H]) Root() H {
	return tree.root
}

// SetRoot - adopt a root reference, e.g. one reloaded from a
// persistent store; the referenced subtree must already satisfy the
// tree invariants
func (tree *Tree[K, H]) SetRoot(root H) {
	tree.root = root
}

// Purge - reset to an empty tree without visiting any node
//
// disposal of the detached nodes is the caller's responsibility
func (tree *Tree[K, H]) Purge() {
	tree.root = tree.store.Null()
}

// ReadError - the fault flag forwarded from the store
func (tree *Tree[K, H]) ReadError() bool {
	return tree.store.ReadError()
}

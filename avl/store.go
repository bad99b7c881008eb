// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Store - access to node records held by external storage
//
// K is the key type, H the opaque node reference type.  The engine
// never dereferences a node itself, it only rewires references
// through these calls.
//
// The access flag on the child getters is false when the engine
// re-reads a field it has just written during the current operation;
// such a read must still return correct data, but a fallible store
// need not count it as a fresh read.
//
// ReadError reports a storage fault.  Once set it must stay set until
// the store itself is reset, and all data returned while it is set is
// unreliable.
type Store[K any, H comparable] interface {

	// Null - the sentinel "no node" reference, stable across calls
	Null() H

	// Less / Greater - stored child references
	Less(h H, access bool) H
	Greater(h H, access bool) H

	// SetLess / SetGreater - store child references
	SetLess(h H, child H)
	SetGreater(h H, child H)

	// BalanceFactor - height of greater subtree minus height of less
	// subtree, held to {-1, 0, +1}
	BalanceFactor(h H) int
	SetBalanceFactor(h H, balance int)

	// three-way comparators: negative, zero or positive
	CompareKeyNode(key K, h H) int
	CompareNodeNode(a H, b H) int

	// ReadError - true if any access has failed
	ReadError() bool
}

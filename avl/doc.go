// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a storage-agnostic AVL balanced tree engine
//
// The tree owns no node memory and no keys: every node access goes
// through a Store adapter that supplies the two child references, a
// balance factor slot and key comparison.  Node references are opaque
// handles, so the same engine runs over an in-memory arena or an
// external paged/database backing store.
//
// All algorithms are iterative and keep an explicit bounded path of
// branch decisions instead of recursing or requiring parent
// references in nodes.  Insertion performs at most one single or
// double rotation; removal retraces the recorded path bottom-up and
// stops as soon as the local subtree height is unchanged.
//
// Stores may be fallible: every dereferencing access is followed by a
// check of the store's fault flag and any operation that sees the
// flag set unwinds immediately with a null/invalid result.  Partial
// mutation before the fault may remain, recovery is the store's
// concern.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
package avl

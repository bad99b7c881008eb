// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ldbstore - a LevelDB backed node store for the avl engine
//
// Every node lives in its own database record addressed by a 64 bit
// reference; the zero reference is the null sentinel.  Records carry
// a truncated SHA3 digest so that corruption is detected on read.
// The tree root and the reference sequence are persisted alongside
// the nodes, so a tree survives process restarts.
//
// Database errors and digest mismatches do not surface as return
// values: they set a sticky fault flag which the tree engine checks
// after every access, and the failed access yields a zeroed record.
// The caller inspects ReadError / Err once the operation has unwound.
//
// Note: a store is not thread safe, the same restriction as the tree
//       engine itself.
package ldbstore

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// MaxDepth - bound on the depth of any path through a tree
//
// AVL balancing bounds the height to ceil(1.44·log2(n+2)), so 32
// covers any node count representable in 32 bits
const MaxDepth = 32

// marker for an empty or exhausted path; depths are zero-based so the
// all-ones value can never be reached
const noDepth = ^uint(0)

// branches - fixed capacity vector of branch decisions along a path,
// bit n is true when the traversal took the greater branch at depth n
type branches uint64

func (b branches) is(i uint) bool {
	return 0 != b&(1<<i)
}

func (b *branches) set(i uint, greater bool) {
	if greater {
		*b |= 1 << i
	} else {
		*b &^= 1 << i
	}
}

// all / none - bulk set and clear
func (b *branches) all()  { *b = ^branches(0) }
func (b *branches) none() { *b = 0 }

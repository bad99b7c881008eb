// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branchKind int

const (
	atRoot branchKind = iota
	atLess branchKind = iota
	atGreater
)

// Print - display an ASCII graphic representation of the tree
//
// format renders the key of a node; returns the maximum depth of the
// tree
func (tree *Tree[K, H]) Print(format func(H) string) int {
	return tree.printSubtree(tree.root, "", atRoot, format)
}

// internal print - returns the maximum depth of the subtree
func (tree *Tree[K, H]) printSubtree(h H, prefix string, br branchKind, format func(H) string) int {
	s := tree.store
	null := s.Null()

	if h == null {
		return 0
	}

	gd := 0
	ld := 0
	if greater := s.Greater(h, true); greater != null {
		t := "       "
		if atLess == br {
			t = "|      "
		}
		gd = tree.printSubtree(greater, prefix+t, atGreater, format)
	}
	switch br {
	case atRoot:
		fmt.Printf("%s|------+ ", prefix)
	case atLess:
		fmt.Printf("%s\\------+ ", prefix)
	case atGreater:
		fmt.Printf("%s/------+ ", prefix)
	}
	fmt.Printf("%q %+2d\n", format(h), s.BalanceFactor(h))
	if less := s.Less(h, true); less != null {
		t := "       "
		if atGreater == br {
			t = "|      "
		}
		ld = tree.printSubtree(less, prefix+t, atLess, format)
	}
	if gd > ld {
		return 1 + gd
	}
	return 1 + ld
}

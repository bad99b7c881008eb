// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memstore_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/treestore/memstore"
)

func TestAllocate(t *testing.T) {
	store := memstore.New(strings.Compare)

	if 0 != store.Null() {
		t.Fatalf("null is not zero")
	}

	a := store.NewNode("alpha")
	b := store.NewNode("beta")
	if 0 == a || 0 == b || a == b {
		t.Fatalf("allocation returned: %d and %d", a, b)
	}

	if store.Key(a) != "alpha" {
		t.Fatalf("key: %q  expected: %q", store.Key(a), "alpha")
	}
	if store.Key(b) != "beta" {
		t.Fatalf("key: %q  expected: %q", store.Key(b), "beta")
	}

	if store.ReadError() {
		t.Fatalf("memory store reports a fault")
	}
}

func TestNewNodeFields(t *testing.T) {
	store := memstore.New(strings.Compare)

	h := store.NewNode("x")
	if 0 != store.Less(h, true) || 0 != store.Greater(h, true) {
		t.Fatalf("fresh node has children")
	}
	if 0 != store.BalanceFactor(h) {
		t.Fatalf("fresh node has balance: %d", store.BalanceFactor(h))
	}

	store.SetLess(h, 7)
	store.SetGreater(h, 9)
	store.SetBalanceFactor(h, -1)
	if 7 != store.Less(h, false) || 9 != store.Greater(h, false) {
		t.Fatalf("stored children lost")
	}
	if -1 != store.BalanceFactor(h) {
		t.Fatalf("stored balance lost")
	}
}

func TestRelease(t *testing.T) {
	store := memstore.New(strings.Compare)

	a := store.NewNode("a")
	b := store.NewNode("b")
	c := store.NewNode("c")

	store.Release(b)
	store.Release(a)

	// reclaimed records are reused most recently released first
	if r := store.NewNode("d"); r != a {
		t.Fatalf("reuse returned: %d  expected: %d", r, a)
	}
	if r := store.NewNode("e"); r != b {
		t.Fatalf("reuse returned: %d  expected: %d", r, b)
	}

	// free list exhausted, back to appending
	if r := store.NewNode("f"); r <= c {
		t.Fatalf("fresh allocation returned: %d", r)
	}
}

func TestCompare(t *testing.T) {
	store := memstore.New(strings.Compare)

	a := store.NewNode("apple")
	b := store.NewNode("berry")

	if store.CompareKeyNode("apple", a) != 0 {
		t.Fatalf("equal keys compare non-zero")
	}
	if store.CompareKeyNode("apple", b) >= 0 {
		t.Fatalf("lesser key compares non-negative")
	}
	if store.CompareNodeNode(b, a) <= 0 {
		t.Fatalf("greater node compares non-positive")
	}
	if store.CompareNodeNode(a, a) != 0 {
		t.Fatalf("node compares unequal to itself")
	}
}

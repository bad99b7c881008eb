// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/memstore"
)

// flakyStore wraps the memory store with a fault that fires after a
// set number of fresh child accesses, to exercise the error unwinding
// of every operation
type flakyStore struct {
	*memstore.Store[string]
	remaining int // fresh accesses until the fault fires
	failed    bool
}

func (f *flakyStore) count() {
	if f.failed {
		return
	}
	f.remaining -= 1
	if f.remaining < 0 {
		f.failed = true
	}
}

func (f *flakyStore) Less(h uint32, access bool) uint32 {
	if access {
		f.count()
	}
	return f.Store.Less(h, access)
}

func (f *flakyStore) Greater(h uint32, access bool) uint32 {
	if access {
		f.count()
	}
	return f.Store.Greater(h, access)
}

func (f *flakyStore) ReadError() bool {
	return f.failed
}

func makeFlakyTree(t *testing.T, keys []string) (*flakyStore, *avl.Tree[string, uint32]) {
	store := &flakyStore{
		Store:     memstore.New(strings.Compare),
		remaining: 1 << 30,
	}
	tree := avl.New[string, uint32](store)
	for _, key := range keys {
		h := store.NewNode(key)
		if tree.Insert(h) != h {
			t.Fatalf("insert: %q failed", key)
		}
	}
	return store, tree
}

func TestSearchFault(t *testing.T) {
	store, tree := makeFlakyTree(t, []string{"5", "3", "8", "1", "4", "7", "9"})

	store.remaining = 0
	if h := tree.Search("1", avl.Equal); 0 != h {
		t.Fatalf("search under fault returned: %d", h)
	}
	if !tree.ReadError() {
		t.Fatalf("fault flag not raised")
	}

	if h := tree.SearchLeast(); 0 != h {
		t.Fatalf("search least under fault returned: %d", h)
	}
	if h := tree.SearchGreatest(); 0 != h {
		t.Fatalf("search greatest under fault returned: %d", h)
	}
}

func TestInsertFault(t *testing.T) {
	store, tree := makeFlakyTree(t, []string{"5", "3", "8"})

	store.remaining = 0
	h := store.NewNode("1")
	if r := tree.Insert(h); 0 != r {
		t.Fatalf("insert under fault returned: %d", r)
	}
	if !tree.ReadError() {
		t.Fatalf("fault flag not raised")
	}
}

func TestRemoveFault(t *testing.T) {
	store, tree := makeFlakyTree(t, []string{"5", "3", "8", "1", "4", "7", "9"})

	store.remaining = 0
	if h := tree.Remove("5"); 0 != h {
		t.Fatalf("remove under fault returned: %d", h)
	}
	if !tree.ReadError() {
		t.Fatalf("fault flag not raised")
	}
}

func TestIteratorFault(t *testing.T) {
	store, tree := makeFlakyTree(t, []string{"5", "3", "8", "1", "4", "7", "9"})

	it := avl.Iterator[string, uint32]{}

	// a fault during the seek leaves the iterator invalid
	store.remaining = 0
	it.SeekLeast(tree)
	if 0 != it.Node() {
		t.Fatalf("seek least under fault positioned the iterator")
	}
	if !it.ReadError() {
		t.Fatalf("fault flag not raised")
	}

	// a fault mid-scan invalidates an already positioned iterator
	store.failed = false
	store.remaining = 1 << 30
	it.SeekLeast(tree)
	if 0 == it.Node() {
		t.Fatalf("seek least failed")
	}
	store.remaining = 0
	it.Next()
	if 0 != it.Node() {
		t.Fatalf("next under fault kept the iterator positioned")
	}
	if !it.ReadError() {
		t.Fatalf("fault flag not raised")
	}
}

func TestBuildFault(t *testing.T) {
	store := &flakyStore{
		Store:     memstore.New(strings.Compare),
		remaining: 1 << 30,
	}
	tree := avl.New[string, uint32](store)

	handles := []uint32{
		store.NewNode("1"),
		store.NewNode("2"),
	}

	// the fault surfaces through the flag after a node is delivered
	i := 0
	ok := tree.Build(func() uint32 {
		h := handles[i]
		i += 1
		if 2 == i {
			store.failed = true
		}
		return h
	}, 2)
	if ok {
		t.Fatalf("build under fault succeeded")
	}
	if !tree.ReadError() {
		t.Fatalf("fault flag not raised")
	}
}

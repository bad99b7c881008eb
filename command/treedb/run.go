// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/fault"
	"github.com/bitmark-inc/treestore/ldbstore"
)

// command line search modes
var searchModes = map[string]avl.Mode{
	"equal":         avl.Equal,
	"less":          avl.Less,
	"greater":       avl.Greater,
	"less-equal":    avl.LessEqual,
	"greater-equal": avl.GreaterEqual,
}

// read configuration, start logging and open the database
func openStore(c *cli.Context, readOnly bool) (*ldbstore.Store, error) {
	configFile := c.GlobalString("config")
	if "" == configFile {
		return nil, fault.ErrNotFoundConfigFile
	}

	cfg, err := getConfiguration(configFile)
	if nil != err {
		return nil, err
	}

	cfg.Logging.Console = c.GlobalBool("verbose")
	if err := logger.Initialise(cfg.Logging); nil != err {
		return nil, err
	}

	store, err := ldbstore.Open(cfg.Database, readOnly)
	if nil != err {
		logger.Finalise()
		return nil, err
	}
	return store, nil
}

func runInsert(c *cli.Context) error {
	if 0 == len(c.Args()) {
		return fault.ErrKeyIsEmpty
	}

	store, err := openStore(c, ldbstore.ReadWrite)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	for _, arg := range c.Args() {
		h := store.NewNode([]byte(arg))
		if 0 == h {
			return store.Err()
		}
		r := tree.Insert(h)
		if 0 == r {
			return store.Err()
		}
		if r != h {
			// duplicate key: the tree is unchanged, drop the new node
			store.Release(h)
			fmt.Fprintf(c.App.Writer, "duplicate: %q\n", arg)
			continue
		}
		if c.GlobalBool("verbose") {
			fmt.Fprintf(c.App.Writer, "inserted: %q -> %#x\n", arg, h)
		}
	}
	store.SetRoot(tree.Root())
	if store.ReadError() {
		return store.Err()
	}
	return nil
}

func runRemove(c *cli.Context) error {
	if 0 == len(c.Args()) {
		return fault.ErrKeyIsEmpty
	}

	store, err := openStore(c, ldbstore.ReadWrite)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	for _, arg := range c.Args() {
		h := tree.Remove([]byte(arg))
		if 0 == h {
			if store.ReadError() {
				return store.Err()
			}
			fmt.Fprintf(c.App.Writer, "not found: %q\n", arg)
			continue
		}
		store.Release(h)
		if c.GlobalBool("verbose") {
			fmt.Fprintf(c.App.Writer, "removed: %q\n", arg)
		}
	}
	store.SetRoot(tree.Root())
	if store.ReadError() {
		return store.Err()
	}
	return nil
}

func runSearch(c *cli.Context) error {
	key := c.Args().First()
	if "" == key {
		return fault.ErrKeyIsEmpty
	}
	mode, ok := searchModes[c.String("mode")]
	if !ok {
		return fault.ErrInvalidSearchMode
	}

	store, err := openStore(c, ldbstore.ReadOnly)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	h := tree.Search([]byte(key), mode)
	if 0 == h {
		if store.ReadError() {
			return store.Err()
		}
		return fault.ErrKeyNotFound
	}
	fmt.Fprintf(c.App.Writer, "%s\n", store.Key(h))
	if store.ReadError() {
		return store.Err()
	}
	return nil
}

func runDump(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fault.ErrInvalidCount
	}
	reverse := c.Bool("reverse")

	store, err := openStore(c, ldbstore.ReadOnly)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()

	it := avl.Iterator[[]byte, uint64]{}
	if start := c.Args().First(); "" != start {
		if reverse {
			it.Seek(tree, []byte(start), avl.LessEqual)
		} else {
			it.Seek(tree, []byte(start), avl.GreaterEqual)
		}
	} else if reverse {
		it.SeekGreatest(tree)
	} else {
		it.SeekLeast(tree)
	}

	for i := 0; i < count; i += 1 {
		h := it.Node()
		if 0 == h {
			break
		}
		fmt.Fprintf(c.App.Writer, "%d: %s\n", i, store.Key(h))
		if reverse {
			it.Prev()
		} else {
			it.Next()
		}
	}

	if store.ReadError() {
		return store.Err()
	}
	return nil
}

func runBuild(c *cli.Context) error {
	store, err := openStore(c, ldbstore.ReadWrite)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	if !tree.IsEmpty() {
		return fault.ErrTreeNotEmpty
	}

	handles := make([]uint64, 0, 1024)
	prev := []byte(nil)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		key := append([]byte{}, scanner.Bytes()...)
		if 0 == len(key) {
			return fault.ErrKeyIsEmpty
		}
		if nil != prev && bytes.Compare(key, prev) <= 0 {
			return fault.ErrUnorderedInput
		}
		prev = key
		h := store.NewNode(key)
		if 0 == h {
			return store.Err()
		}
		handles = append(handles, h)
	}
	if err := scanner.Err(); nil != err {
		return err
	}

	i := 0
	ok := tree.Build(func() uint64 {
		h := handles[i]
		i += 1
		return h
	}, uint(len(handles)))
	if !ok {
		return store.Err()
	}

	store.SetRoot(tree.Root())
	if store.ReadError() {
		return store.Err()
	}
	fmt.Fprintf(c.App.Writer, "built tree with %d keys\n", len(handles))
	return nil
}

func runCheck(c *cli.Context) error {
	store, err := openStore(c, ldbstore.ReadOnly)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	ok := tree.CheckBalance()
	if store.ReadError() {
		return store.Err()
	}
	if !ok {
		return fault.ErrCorruptedTree
	}
	fmt.Fprintf(c.App.Writer, "ok  height: %d\n", tree.Height())
	return nil
}

func runPrint(c *cli.Context) error {
	store, err := openStore(c, ldbstore.ReadOnly)
	if nil != err {
		return err
	}
	defer logger.Finalise()
	defer store.Close()

	tree := store.Tree()
	depth := tree.Print(func(h uint64) string {
		return string(store.Key(h))
	})
	if store.ReadError() {
		return store.Err()
	}
	fmt.Fprintf(c.App.Writer, "depth: %d\n", depth)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treestore/avl"
	"github.com/bitmark-inc/treestore/ldbstore"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'r'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--reverse] [--count=N] --file=FILE [start-key]", program)
	}

	verbose := len(options["verbose"]) > 0
	reverse := len(options["reverse"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]

	logging := logger.Configuration{
		Directory: ".",
		File:      "treedump.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: "error",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup error: %s", program, err)
	}
	defer logger.Finalise()

	store, err := ldbstore.Open(filename, ldbstore.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: open %q error: %s", program, filename, err)
	}
	defer store.Close()

	tree := store.Tree()
	if verbose {
		fmt.Printf("database: %q  root: %#x\n", filename, tree.Root())
	}

	it := avl.Iterator[[]byte, uint64]{}
	if len(arguments) > 0 {
		start := []byte(arguments[0])
		if reverse {
			it.Seek(tree, start, avl.LessEqual)
		} else {
			it.Seek(tree, start, avl.GreaterEqual)
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
		fmt.Printf("%d: %x\n", i, store.Key(h))
		if reverse {
			it.Prev()
		} else {
			it.Next()
		}
	}

	if store.ReadError() {
		exitwithstatus.Message("%s: storage fault: %s", program, store.Err())
	}
}

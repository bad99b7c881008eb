// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "treedb"
	app.Usage = "maintain an ordered key index in a LevelDB database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "insert keys, duplicates are reported and skipped",
			ArgsUsage: "KEY...",
			Action:    runInsert,
		},
		{
			Name:      "remove",
			Usage:     "remove keys, absent keys are reported",
			ArgsUsage: "KEY...",
			Action:    runRemove,
		},
		{
			Name:      "search",
			Usage:     "locate a key",
			ArgsUsage: "KEY",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: "equal",
					Usage: " one of: equal, less, greater, less-equal, greater-equal",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "dump",
			Usage:     "list keys in order",
			ArgsUsage: "[start-key]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " list in descending order",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 10,
					Usage: " maximum keys to list `N`",
				},
			},
			Action: runDump,
		},
		{
			Name:   "build",
			Usage:  "bulk build an empty tree from sorted keys on stdin",
			Action: runBuild,
		},
		{
			Name:   "check",
			Usage:  "verify ordering and balance of the whole tree",
			Action: runCheck,
		},
		{
			Name:   "print",
			Usage:  "display an ASCII representation of the tree",
			Action: runPrint,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

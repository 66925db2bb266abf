// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "treemap-cli"
	app.Usage = "sort, inspect and script ordered trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sort",
			Usage:     "sort input lines into ascending order",
			ArgsUsage: "[FILE…]   (stdin when no files)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "unique, u",
					Usage: " output each distinct line once",
				},
				cli.BoolFlag{
					Name:  "count, c",
					Usage: " prefix each distinct line with its occurrence count",
				},
			},
			Action: runSort,
		},
		{
			Name:      "dump",
			Usage:     "print the tree built from the input, sideways",
			ArgsUsage: "[FILE…]   (stdin when no files)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "detail, d",
					Usage: " include balance, height and node counts",
				},
			},
			Action: runDump,
		},
		{
			Name:      "check",
			Usage:     "verify tree invariants over the input",
			ArgsUsage: "[FILE…]   (stdin when no files)",
			Action:    runCheck,
		},
		{
			Name:      "script",
			Usage:     "run a Lua script against a fresh tree",
			ArgsUsage: "SCRIPT.lua",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: " rerun the script whenever the file changes",
				},
			},
			Action: runScript,
		},
		{
			Name:  "version",
			Usage: "display treemap-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

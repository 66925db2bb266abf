// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	withDetail := c.Bool("detail")

	tree, lines, err := buildTree(c.Args(), os.Stdin)
	if nil != err {
		return err
	}

	depth := tree.Print(m.w, withDetail)

	fmt.Fprintf(m.w, "lines: %d  keys: %d  height: %d  printed depth: %d\n",
		lines, tree.Count(), tree.Height(), depth)

	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treemap/avl"
	"github.com/bitmark-inc/treemap/fault"
)

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, lines, err := buildTree(c.Args(), os.Stdin)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "read: %d lines  distinct: %d\n", lines, tree.Count())
	}

	if err := tree.Check(); nil != err {
		return err
	}

	n := tree.Count()
	height := tree.Height()
	bound := avl.HeightBound(n)
	if height > bound {
		if m.verbose {
			fmt.Fprintf(m.e, "height: %d  bound: %d\n", height, bound)
		}
		return fault.HeightBoundExceeded
	}

	fmt.Fprintf(m.w, "ok: %d keys  height: %d  bound: %d\n", n, height, bound)

	return nil
}

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

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	unique := c.Bool("unique")
	counts := c.Bool("count")

	tree, lines, err := buildTree(c.Args(), os.Stdin)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "read: %d lines  distinct: %d\n", lines, tree.Count())
	}

	tree.Traverse(func(key textItem, n int) bool {
		switch {
		case counts:
			fmt.Fprintf(m.w, "%7d %s\n", n, key)
		case unique:
			fmt.Fprintf(m.w, "%s\n", key)
		default:
			for i := 0; i < n; i += 1 {
				fmt.Fprintf(m.w, "%s\n", key)
			}
		}
		return true
	})

	return nil
}

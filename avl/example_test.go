// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"

	"github.com/bitmark-inc/treemap/avl"
)

type word string

func (w word) Compare(x word) int {
	switch {
	case w < x:
		return -1
	case w > x:
		return +1
	default:
		return 0
	}
}

func Example() {

	tree := avl.New[word, int]()

	for i, w := range []word{"delta", "alpha", "echo", "charlie", "bravo"} {
		tree.Insert(w, i)
	}
	tree.Delete("echo")

	tree.Traverse(func(key word, value int) bool {
		fmt.Printf("%s: %d\n", key, value)
		return true
	})
	fmt.Printf("count: %d\n", tree.Count())

	// Output:
	// alpha: 1
	// bravo: 4
	// charlie: 3
	// delta: 0
	// count: 4
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/bitmark-inc/treemap/avl"
	"github.com/bitmark-inc/treemap/fault"
)

// verify - cross-check the tree against the shadow model
//
// callers must hold at least a read lock over both structures
func verify(tree *avl.Tree[stressItem, int64], model map[stressItem]int64) error {

	if err := tree.Check(); nil != err {
		return err
	}

	n := tree.Count()
	if n != len(model) {
		return fault.KeySetMismatch
	}
	if tree.Height() > avl.HeightBound(n) {
		return fault.HeightBoundExceeded
	}

	keys := tree.Keys()
	if !slices.IsSortedFunc(keys, func(a, b stressItem) bool {
		return a.Compare(b) < 0
	}) {
		return fault.KeysOutOfOrder
	}

	expected := maps.Keys(model)
	slices.SortFunc(expected, func(a, b stressItem) bool {
		return a.Compare(b) < 0
	})
	if !slices.Equal(keys, expected) {
		return fault.KeySetMismatch
	}

	for key, value := range model {
		v, ok := tree.Search(key)
		if !ok || v != value {
			return fault.KeySetMismatch
		}
	}

	return nil
}

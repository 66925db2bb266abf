// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/treemap/fault"
)

// Check - verify every structural invariant of the whole tree
//
// returns nil when the tree is sound, or the fault naming the first
// violated invariant: key order, node height, node count or balance
func (tree *Tree[K, V]) Check() error {
	if err := check(tree.root); nil != err {
		return err
	}
	if nodeCount(tree.root) != tree.count {
		return fault.InvalidCount
	}
	return checkOrder(tree)
}

// internal: validate height, node count and balance, children first
func check[K Item[K], V any](p *node[K, V]) error {
	if nil == p {
		return nil
	}
	if err := check(p.left); nil != err {
		return err
	}
	if err := check(p.right); nil != err {
		return err
	}
	if p.height != 1+max(height(p.left), height(p.right)) {
		return fault.WrongNodeHeight
	}
	if p.nodes != 1+nodeCount(p.left)+nodeCount(p.right) {
		return fault.WrongNodeCount
	}
	if b := balance(p); b < -1 || b > 1 {
		return fault.UnbalancedNode
	}
	return nil
}

// internal: keys must be strictly ascending
func checkOrder[K Item[K], V any](tree *Tree[K, V]) error {
	ordered := true
	var previous *K
	tree.Traverse(func(key K, _ V) bool {
		if nil != previous && (*previous).Compare(key) >= 0 {
			ordered = false
			return false
		}
		k := key
		previous = &k
		return true
	})
	if !ordered {
		return fault.KeysOutOfOrder
	}
	return nil
}

// HeightBound - the maximum height an AVL tree holding n keys can
// reach: ceil(1.4405·log2(n+2) − 0.3277)
func HeightBound(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[K Item[K], V any] struct {
	left   *node[K, V] // left sub-tree
	right  *node[K, V] // right sub-tree, doubles as the free list link
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // longest path to a leaf, counted in nodes
	nodes  int         // nodes in this sub-tree including this one
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// the pool belongs to one tree and shares its single goroutine
// contract, so no locking is needed
func (tree *Tree[K, V]) newNode(key K, value V) *node[K, V] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("avl: node pool corrupt")
		}
		return &node[K, V]{
			key:    key,
			value:  value,
			height: 1,
			nodes:  1,
		}
	}
	p := tree.pool
	tree.pool = p.right
	tree.freeNodes -= 1
	p.key = key
	p.value = value
	p.height = 1
	p.nodes = 1
	p.left = nil
	p.right = nil // ensure free list pointer is cleared
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K, V]) freeNode(p *node[K, V]) {
	var zeroKey K
	var zeroValue V

	p.right = tree.pool // use as free list pointer

	p.left = nil
	p.key = zeroKey
	p.value = zeroValue
	p.height = 0
	p.nodes = 0

	tree.pool = p
	tree.freeNodes += 1
}

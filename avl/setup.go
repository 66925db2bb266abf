// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - the ordering constraint for tree keys
//
// Compare returns the sign of receiver minus argument:
//
//	-1  receiver is lower
//	 0  keys are equal
//	+1  receiver is higher
//
// the supplied order must be total or the tree behaviour is undefined
type Item[K any] interface {
	Compare(K) int
}

// Tree - type to hold the root node of a tree
type Tree[K Item[K], V any] struct {
	root      *node[K, V]
	count     int
	pool      *node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// New - create an initially empty tree
func New[K Item[K], V any]() *Tree[K, V] {
	return &Tree[K, V]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Clear - remove all nodes and reclaim them for later reuse
func (tree *Tree[K, V]) Clear() {
	tree.release(tree.root)
	tree.root = nil
	tree.count = 0
}

// internal: post-order release, children before parent
func (tree *Tree[K, V]) release(p *node[K, V]) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)
	tree.freeNode(p)
}

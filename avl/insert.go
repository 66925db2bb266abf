// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a key and its associated value into the tree
//
// returns true if a new node was added, or false if the key was
// already present, in which case only the stored value is overwritten
// and the tree structure is left untouched
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	added := false
	tree.root, added = tree.insert(tree.root, key, value)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
//
// returns the possibly new sub-tree root; maintenance runs only on
// frames below which a node was actually added, so a duplicate key
// leaves every node on the path untouched
func (tree *Tree[K, V]) insert(p *node[K, V], key K, value V) (*node[K, V], bool) {
	if nil == p { // insert new node
		return tree.newNode(key, value), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = tree.insert(p.left, key, value)
	case -1: // p.key < key
		p.right, added = tree.insert(p.right, key, value)
	default: // key already present
		p.value = value
		return p, false
	}
	if !added {
		return p, false
	}
	p.update()
	return rebalance(p), true
}

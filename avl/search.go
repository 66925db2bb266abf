// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the value stored for a specific key
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	p, _ := search(key, tree.root, 0)
	if nil == p {
		var zeroValue V
		return zeroValue, false
	}
	return p.value, true
}

// Has - true if the key is present
func (tree *Tree[K, V]) Has(key K) bool {
	p, _ := search(key, tree.root, 0)
	return nil != p
}

// Index - the rank of a key in ascending order, zero based
func (tree *Tree[K, V]) Index(key K) (int, bool) {
	p, index := search(key, tree.root, 0)
	if nil == p {
		return -1, false
	}
	return index, true
}

// internal search, accumulating the in-order rank on the way down
func search[K Item[K], V any](key K, p *node[K, V], index int) (*node[K, V], int) {
	if nil == p {
		return nil, -1
	}

	switch p.key.Compare(key) {
	case +1: // p.key > key
		return search(key, p.left, index)
	case -1: // p.key < key
		return search(key, p.right, index+nodeCount(p.left)+1)
	default:
		return p, index + nodeCount(p.left)
	}
}

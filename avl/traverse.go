// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Traverse - in-order walk over the tree in ascending key order
//
// the walk stops early when fn returns false; each call restarts
// from the lowest key
func (tree *Tree[K, V]) Traverse(fn func(key K, value V) bool) {
	traverse(tree.root, fn)
}

// internal: recursive in-order walk, false to stop
func traverse[K Item[K], V any](p *node[K, V], fn func(key K, value V) bool) bool {
	if nil == p {
		return true
	}
	if !traverse(p.left, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return traverse(p.right, fn)
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Traverse(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// First - the lowest key and its value
func (tree *Tree[K, V]) First() (K, V, bool) {
	return pick(tree.root.first())
}

// Last - the highest key and its value
func (tree *Tree[K, V]) Last() (K, V, bool) {
	return pick(tree.root.last())
}

func pick[K Item[K], V any](p *node[K, V]) (K, V, bool) {
	if nil == p {
		var zeroKey K
		var zeroValue V
		return zeroKey, zeroValue, false
	}
	return p.key, p.value, true
}

// internal: lowest node in a sub-tree
func (p *node[K, V]) first() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[K, V]) last() *node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

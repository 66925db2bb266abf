// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - the key and value at a specific index in the ordered
// sequence, zero based
func (tree *Tree[K, V]) Get(index int) (K, V, bool) {
	if index >= 0 && index < tree.count {
		if p := get(index, tree.root); nil != p {
			return p.key, p.value, true
		}
	}
	var zeroKey K
	var zeroValue V
	return zeroKey, zeroValue, false
}

func get[K Item[K], V any](index int, p *node[K, V]) *node[K, V] {
	if nil == p {
		return nil
	}

	nl := nodeCount(p.left)

	if index < nl {
		return get(index, p.left)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return get(index-nl-1, p.right)
	}
	return p
}

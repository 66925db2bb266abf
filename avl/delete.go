// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove a key from the tree
//
// returns true if the key was present and its node reclaimed, or
// false if the key was not in the tree, in which case nothing on the
// search path is touched
func (tree *Tree[K, V]) Delete(key K) bool {
	removed := false
	tree.root, removed = tree.delete(tree.root, key)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
//
// returns the possibly new sub-tree root; a two child match copies
// the in-order successor into place and the successor's original
// node is the one reclaimed
func (tree *Tree[K, V]) delete(p *node[K, V], key K) (*node[K, V], bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, removed = tree.delete(p.left, key)
	case -1: // p.key < key
		p.right, removed = tree.delete(p.right, key)
	default: // found: remove p
		if nil == p.left || nil == p.right {
			// leaf or single child: splice the child into place
			q := p
			if nil == q.left {
				p = q.right
			} else {
				p = q.left
			}
			tree.freeNode(q)
			return p, true // spliced sub-tree is already consistent
		}
		// two children: lowest key of the right sub-tree replaces p
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _ = tree.delete(p.right, p.key)
		removed = true
	}
	if !removed {
		return p, false
	}
	p.update()
	return rebalance(p), true
}

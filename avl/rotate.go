// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func height[K Item[K], V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// number of nodes in a possibly absent sub-tree
func nodeCount[K Item[K], V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// balance factor: positive = left heavy, negative = right heavy
func balance[K Item[K], V any](p *node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute height and node count from already correct children
func (p *node[K, V]) update() {
	p.height = 1 + max(height(p.left), height(p.right))
	p.nodes = 1 + nodeCount(p.left) + nodeCount(p.right)
}

// single LL rotation: lift the left child over p
func rotateRight[K Item[K], V any](p *node[K, V]) *node[K, V] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	p.update() // child before parent
	p1.update()
	return p1
}

// single RR rotation: lift the right child over p
func rotateLeft[K Item[K], V any](p *node[K, V]) *node[K, V] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	p.update() // child before parent
	p1.update()
	return p1
}

// double LR rotation: left child is right heavy
func rotateLeftRight[K Item[K], V any](p *node[K, V]) *node[K, V] {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double RL rotation: right child is left heavy
func rotateRightLeft[K Item[K], V any](p *node[K, V]) *node[K, V] {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}

// restore the balance invariant after a child of p changed height
// returns the possibly different sub-tree root
//
// the double rotations are selected by the heavier child's own
// balance sign, which is correct on both the insert and delete
// unwind paths
func rebalance[K Item[K], V any](p *node[K, V]) *node[K, V] {
	switch b := balance(p); {
	case b > 1: // left branch too high
		if balance(p.left) < 0 {
			return rotateLeftRight(p)
		}
		return rotateRight(p)
	case b < -1: // right branch too high
		if balance(p.right) > 0 {
			return rotateRightLeft(p)
		}
		return rotateLeft(p)
	default:
		return p
	}
}

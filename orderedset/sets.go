// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedset - a set of unique keys kept in ascending order
//
// this is a thin adapter over the avl tree, adding mutex protection
// so a set can be shared between goroutines
package orderedset

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bitmark-inc/treemap/avl"
)

// Set - an ordered collection of unique keys
type Set[K avl.Item[K]] struct {
	sync.Mutex
	tree *avl.Tree[K, struct{}]
}

// New - create an empty set
func New[K avl.Item[K]]() *Set[K] {
	return &Set[K]{
		tree: avl.New[K, struct{}](),
	}
}

// Add - insert an item into the set
//
// returns false if the item was already present; the set is unchanged
// in that case
func (set *Set[K]) Add(item K) bool {
	set.Lock()
	defer set.Unlock()
	return set.tree.Insert(item, struct{}{})
}

// Remove - delete an item from the set
//
// returns false if the item was not present
func (set *Set[K]) Remove(item K) bool {
	set.Lock()
	defer set.Unlock()
	return set.tree.Delete(item)
}

// Has - check if an item is in the set
func (set *Set[K]) Has(item K) bool {
	set.Lock()
	defer set.Unlock()
	return set.tree.Has(item)
}

// Count - number of items in the set
func (set *Set[K]) Count() int {
	set.Lock()
	defer set.Unlock()
	return set.tree.Count()
}

// IsEmpty - check for an empty set
func (set *Set[K]) IsEmpty() bool {
	set.Lock()
	defer set.Unlock()
	return set.tree.IsEmpty()
}

// Keys - all items in ascending order
func (set *Set[K]) Keys() []K {
	set.Lock()
	defer set.Unlock()
	return set.tree.Keys()
}

// Traverse - visit all items in ascending order
//
// traversal stops early if fn returns false; fn must not call back
// into the set as the lock is held for the whole walk
func (set *Set[K]) Traverse(fn func(item K) bool) {
	set.Lock()
	defer set.Unlock()
	set.tree.Traverse(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// First - the lowest item
func (set *Set[K]) First() (K, bool) {
	set.Lock()
	defer set.Unlock()
	key, _, ok := set.tree.First()
	return key, ok
}

// Last - the highest item
func (set *Set[K]) Last() (K, bool) {
	set.Lock()
	defer set.Unlock()
	key, _, ok := set.tree.Last()
	return key, ok
}

// Clear - remove all items
func (set *Set[K]) Clear() {
	set.Lock()
	defer set.Unlock()
	set.tree.Clear()
}

// String - the membership in ascending order as: {a b c}
func (set *Set[K]) String() string {
	set.Lock()
	defer set.Unlock()

	sb := &strings.Builder{}
	sb.WriteByte('{')
	set.tree.Traverse(func(key K, _ struct{}) bool {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%v", key)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

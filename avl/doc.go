// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree holding key/value pairs
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node stores the height and the node count of its own
// sub-tree.  Insert and delete recompute both on the unwind of the
// recursion and apply one of the four classic rotations whenever a
// balance factor leaves the range -1…+1.  Child links are reassigned
// from recursive return values, so no parent pointers are kept
// anywhere in the structure and no interior node ever escapes.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Keys need a total
// order supplied by their Compare method.
package avl
